package repository

import (
	"github.com/EatRateLove/eatratelove_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository 投稿といいねに関するデータベース操作を行うインターフェース
type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	Exists(id uint) (bool, error)
	Delete(id uint) error
	AddLike(userID, postID uint) error
	RemoveLike(userID, postID uint) error
	CountLikes(postID uint) (int64, error)
	HasLiked(userID, postID uint) (bool, error)
}

// postRepository PostRepositoryの実装
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository PostRepositoryを作成
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create 新しい投稿を作成
func (r *postRepository) Create(post *models.Post) error {
	return translateError(r.db.Omit(clause.Associations).Create(post).Error)
}

// FindByID IDで投稿を検索
func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// Exists 投稿が存在するか確認
func (r *postRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete 投稿を削除
// いいねとコメントも同一トランザクションで削除する
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}

// AddLike いいねを追加 (既にいいね済みなら何もしない)
func (r *postRepository) AddLike(userID, postID uint) error {
	like := models.Like{
		UserID: userID,
		PostID: postID,
	}
	return translateError(r.db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error)
}

// RemoveLike いいねを削除 (存在しなくてもエラーにしない)
func (r *postRepository) RemoveLike(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{}).Error
}

// CountLikes いいね数を取得
func (r *postRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasLiked ユーザーがいいねしているか確認
func (r *postRepository) HasLiked(userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
