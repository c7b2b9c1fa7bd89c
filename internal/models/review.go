package models

import (
	"time"
)

// Review レビューと感情分析結果
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Review    string    `json:"review" gorm:"type:text;not null"`
	Sentiment string    `json:"sentiment" gorm:"size:16;not null"`
	Keywords  []string  `json:"keywords" gorm:"column:keywords_json;type:text;serializer:json"`
	CreatedAt time.Time `json:"created_at"`
}
