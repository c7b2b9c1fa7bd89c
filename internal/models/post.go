package models

import (
	"time"
)

// Post 投稿モデル
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Caption   string    `json:"caption" gorm:"size:2200;default:''"`
	ImageURL  string    `json:"image_url" gorm:"size:512;not null"`
	CreatedAt time.Time `json:"created_at"`

	// リレーション
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// PostDetail 単一投稿の表示用 (いいね数とコメント一覧付き)
type PostDetail struct {
	ID        uint          `json:"id"`
	UserID    uint          `json:"user_id"`
	Caption   string        `json:"caption"`
	ImageURL  string        `json:"image_url"`
	CreatedAt time.Time     `json:"created_at"`
	Likes     int64         `json:"likes"`
	Comments  []CommentView `json:"comments"`
}

// FeedItem フィードの要素 (件数のみ)
type FeedItem struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int64     `json:"likes"`
	Comments  int64     `json:"comments"`
}
