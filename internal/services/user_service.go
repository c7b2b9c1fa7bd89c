package services

import (
	"strings"

	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/repository"
)

const maxBioLength = 500

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	GetByID(id uint) (*models.User, error)
	GetProfile(username string) (*models.UserProfile, error)
	UpdateProfile(userID uint, bio, avatarURL *string) (*models.User, error)
	DeleteAccount(userID uint) error
}

// userService UserServiceの実装
type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewUserService UserServiceを作成
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// GetByID IDでユーザーを取得
func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return user, nil
}

// GetProfile プロフィールとフォロー数を取得
func (s *userService) GetProfile(username string) (*models.UserProfile, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, mapRepoError(err)
	}

	// 件数は呼び出し時点の関係から毎回数える
	followers, err := s.followRepo.CountFollowers(user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		Followers: followers,
		Following: following,
	}, nil
}

// UpdateProfile プロフィールを更新 (nilの項目は変更しない)
func (s *userService) UpdateProfile(userID uint, bio, avatarURL *string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if bio != nil {
		b := strings.TrimSpace(*bio)
		if len([]rune(b)) > maxBioLength {
			return nil, newValidationError("bio", "自己紹介が長すぎます")
		}
		user.Bio = b
	}
	if avatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*avatarURL)
	}

	if err := s.userRepo.UpdateProfile(user.ID, user.Bio, user.AvatarURL); err != nil {
		return nil, mapRepoError(err)
	}

	return user, nil
}

// DeleteAccount ユーザーと関連データを削除
func (s *userService) DeleteAccount(userID uint) error {
	return mapRepoError(s.userRepo.Delete(userID))
}
