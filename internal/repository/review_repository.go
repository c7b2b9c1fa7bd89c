package repository

import (
	"github.com/EatRateLove/eatratelove_backend/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository レビューに関するデータベース操作を行うインターフェース
type ReviewRepository interface {
	Create(review *models.Review) error
	List(limit, offset int) ([]models.Review, error)
	Count() (int64, error)
}

// reviewRepository ReviewRepositoryの実装
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository ReviewRepositoryを作成
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create 新しいレビューを保存
func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// List レビュー一覧を取得 (新しい順)
func (r *reviewRepository) List(limit, offset int) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Count レビュー総数を取得
func (r *reviewRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Review{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
