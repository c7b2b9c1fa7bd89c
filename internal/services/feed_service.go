package services

import (
	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/repository"
)

const (
	// DefaultPageLimit 件数指定がない場合の取得件数
	DefaultPageLimit = 25
	// MaxPageLimit 一度に取得できる最大件数
	MaxPageLimit = 100
)

// ClampLimit 取得件数を1から100の範囲に収める
// 既定値の補完は呼び出し側で行う
func ClampLimit(limit int) int {
	switch {
	case limit < 1:
		return 1
	case limit > MaxPageLimit:
		return MaxPageLimit
	default:
		return limit
	}
}

// FeedService フィードに関するサービスインターフェース
type FeedService interface {
	List(userID uint, limit, offset int) ([]models.FeedItem, int, error)
}

// feedService FeedServiceの実装
type feedService struct {
	feedRepo repository.FeedRepository
}

// NewFeedService FeedServiceを作成
func NewFeedService(feedRepo repository.FeedRepository) FeedService {
	return &feedService{feedRepo: feedRepo}
}

// List フォロー中ユーザーの投稿を新しい順に取得
// 実際に使った件数を合わせて返す
func (s *feedService) List(userID uint, limit, offset int) ([]models.FeedItem, int, error) {
	if offset < 0 {
		return nil, 0, newValidationError("offset", "offsetは0以上で指定してください")
	}
	limit = ClampLimit(limit)

	items, err := s.feedRepo.List(userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []models.FeedItem{}
	}
	return items, limit, nil
}
