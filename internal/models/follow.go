package models

import (
	"time"
)

// Follow フォロー関係 (FollowerがFolloweeをフォロー)
// 自分自身へのフォローはCHECK制約で拒否する
type Follow struct {
	FollowerID uint      `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	FolloweeID uint      `json:"followee_id" gorm:"primaryKey;autoIncrement:false;index;check:chk_no_self_follow,follower_id <> followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	// リレーション
	Follower User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee User `json:"-" gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
}

// FollowEntry フォロワー/フォロー中一覧の要素
type FollowEntry struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}
