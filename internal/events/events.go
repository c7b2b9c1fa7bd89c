// Package events ソーシャル操作のアクティビティイベントを配信する
package events

import (
	"context"
	"time"
)

// Type イベント種別
type Type string

const (
	TypeFollowed    Type = "user.followed"
	TypeUnfollowed  Type = "user.unfollowed"
	TypePostCreated Type = "post.created"
	TypePostDeleted Type = "post.deleted"
	TypeLiked       Type = "post.liked"
	TypeUnliked     Type = "post.unliked"
	TypeCommented   Type = "post.commented"
)

// Event アクティビティイベント
type Event struct {
	Type     Type      `json:"type"`
	ActorID  uint      `json:"actor_id"`
	TargetID uint      `json:"target_id,omitempty"`
	PostID   uint      `json:"post_id,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher イベントの配信先
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher 何もしないPublisher (Kafka無効時)
type NopPublisher struct{}

// Publish 何もしない
func (NopPublisher) Publish(context.Context, Event) error { return nil }

// Close 何もしない
func (NopPublisher) Close() error { return nil }
