package repository

import (
	"github.com/EatRateLove/eatratelove_backend/internal/models"

	"gorm.io/gorm"
)

// FeedRepository フィードに関するデータベース操作を行うインターフェース
type FeedRepository interface {
	List(userID uint, limit, offset int) ([]models.FeedItem, error)
}

// feedRepository FeedRepositoryの実装
type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository FeedRepositoryを作成
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// feedColumns 投稿・投稿者名・いいね数・コメント数
const feedColumns = `p.id AS id, p.user_id AS user_id, u.username AS username,
	p.caption AS caption, p.image_url AS image_url, p.created_at AS created_at,
	(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS likes,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments`

// List フォロー中ユーザーの投稿を新しい順に取得
func (r *feedRepository) List(userID uint, limit, offset int) ([]models.FeedItem, error) {
	items := make([]models.FeedItem, 0)
	err := r.db.Table("posts AS p").
		Select(feedColumns).
		Joins("JOIN follows f ON f.followee_id = p.user_id").
		Joins("JOIN users u ON u.id = p.user_id").
		Where("f.follower_id = ?", userID).
		Order("p.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
