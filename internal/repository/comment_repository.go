package repository

import (
	"github.com/EatRateLove/eatratelove_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository コメントに関するデータベース操作を行うインターフェース
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID uint) ([]models.CommentView, error)
	CountByPost(postID uint) (int64, error)
}

// commentRepository CommentRepositoryの実装
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository CommentRepositoryを作成
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create 新しいコメントを作成
func (r *commentRepository) Create(comment *models.Comment) error {
	return translateError(r.db.Omit(clause.Associations).Create(comment).Error)
}

// ListByPost 投稿のコメント一覧を取得 (新しい順)
func (r *commentRepository) ListByPost(postID uint) ([]models.CommentView, error) {
	comments := make([]models.CommentView, 0)
	err := r.db.Table("comments AS c").
		Select("c.id AS id, c.user_id AS user_id, u.username AS username, c.text AS text, c.created_at AS created_at").
		Joins("JOIN users u ON u.id = c.user_id").
		Where("c.post_id = ?", postID).
		Order("c.id DESC").
		Scan(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByPost 投稿のコメント数を取得
func (r *commentRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
