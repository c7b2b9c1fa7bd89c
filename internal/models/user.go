package models

import (
	"time"
)

// User ユーザーモデル
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:64;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Bio          string    `json:"bio" gorm:"size:500;default:''"`
	AvatarURL    string    `json:"avatar_url" gorm:"size:512;default:''"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserProfile プロフィール表示用
type UserProfile struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	Followers int64  `json:"followers"`
	Following int64  `json:"following"`
}
