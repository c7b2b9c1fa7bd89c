package services

import (
	"github.com/EatRateLove/eatratelove_backend/internal/events"
	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/repository"
)

// FollowService フォロー関係に関するサービスインターフェース
type FollowService interface {
	Follow(followerID, followeeID uint) error
	Unfollow(followerID, followeeID uint) error
	FollowByUsername(followerID uint, username string) error
	UnfollowByUsername(followerID uint, username string) error
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
	ListFollowers(username string, limit, offset int) ([]models.FollowEntry, error)
	ListFollowing(username string, limit, offset int) ([]models.FollowEntry, error)
}

// followService FollowServiceの実装
type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	publisher  events.Publisher
}

// NewFollowService FollowServiceを作成
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository, publisher events.Publisher) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
		publisher:  publisher,
	}
}

// Follow フォローする
// 自分自身へのフォローは何もしない。既にフォロー済みでもエラーにしない
func (s *followService) Follow(followerID, followeeID uint) error {
	if followerID == followeeID {
		return nil
	}
	if err := s.followRepo.Create(followerID, followeeID); err != nil {
		return mapRepoError(err)
	}
	publish(s.publisher, events.Event{Type: events.TypeFollowed, ActorID: followerID, TargetID: followeeID})
	return nil
}

// Unfollow フォローを解除する (フォローしていなくてもエラーにしない)
func (s *followService) Unfollow(followerID, followeeID uint) error {
	if err := s.followRepo.Delete(followerID, followeeID); err != nil {
		return err
	}
	publish(s.publisher, events.Event{Type: events.TypeUnfollowed, ActorID: followerID, TargetID: followeeID})
	return nil
}

// FollowByUsername ユーザー名を解決してフォローする
func (s *followService) FollowByUsername(followerID uint, username string) error {
	target, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return mapRepoError(err)
	}
	return s.Follow(followerID, target.ID)
}

// UnfollowByUsername ユーザー名を解決してフォローを解除する
func (s *followService) UnfollowByUsername(followerID uint, username string) error {
	target, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return mapRepoError(err)
	}
	return s.Unfollow(followerID, target.ID)
}

// CountFollowers フォロワー数を取得
func (s *followService) CountFollowers(userID uint) (int64, error) {
	return s.followRepo.CountFollowers(userID)
}

// CountFollowing フォロー中の数を取得
func (s *followService) CountFollowing(userID uint) (int64, error) {
	return s.followRepo.CountFollowing(userID)
}

// ListFollowers フォロワー一覧を取得
func (s *followService) ListFollowers(username string, limit, offset int) ([]models.FollowEntry, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return s.followRepo.ListFollowers(user.ID, limit, offset)
}

// ListFollowing フォロー中一覧を取得
func (s *followService) ListFollowing(username string, limit, offset int) ([]models.FollowEntry, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return s.followRepo.ListFollowing(user.ID, limit, offset)
}
