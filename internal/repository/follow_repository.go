package repository

import (
	"github.com/EatRateLove/eatratelove_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository フォロー関係に関するデータベース操作を行うインターフェース
type FollowRepository interface {
	Create(followerID, followeeID uint) error
	Delete(followerID, followeeID uint) error
	Exists(followerID, followeeID uint) (bool, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
	ListFollowers(userID uint, limit, offset int) ([]models.FollowEntry, error)
	ListFollowing(userID uint, limit, offset int) ([]models.FollowEntry, error)
}

// followRepository FollowRepositoryの実装
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository FollowRepositoryを作成
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create フォロー関係を作成
// 既に存在する場合は何もしない (INSERT ... ON CONFLICT DO NOTHING)
func (r *followRepository) Create(followerID, followeeID uint) error {
	follow := models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	return translateError(r.db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error)
}

// Delete フォロー関係を削除 (存在しなくてもエラーにしない)
func (r *followRepository) Delete(followerID, followeeID uint) error {
	return r.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

// Exists フォローしているか確認
func (r *followRepository) Exists(followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountFollowers フォロワー数を取得
func (r *followRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountFollowing フォロー中の数を取得
func (r *followRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListFollowers フォロワー一覧を取得 (新しいフォロー順)
func (r *followRepository) ListFollowers(userID uint, limit, offset int) ([]models.FollowEntry, error) {
	return r.list("f.follower_id", "f.followee_id", userID, limit, offset)
}

// ListFollowing フォロー中一覧を取得 (新しいフォロー順)
func (r *followRepository) ListFollowing(userID uint, limit, offset int) ([]models.FollowEntry, error) {
	return r.list("f.followee_id", "f.follower_id", userID, limit, offset)
}

func (r *followRepository) list(joinColumn, filterColumn string, userID uint, limit, offset int) ([]models.FollowEntry, error) {
	entries := make([]models.FollowEntry, 0)
	err := r.db.Table("follows AS f").
		Select("u.id AS user_id, u.username AS username, u.avatar_url AS avatar_url, f.created_at AS created_at").
		Joins("JOIN users u ON u.id = "+joinColumn).
		Where(filterColumn+" = ?", userID).
		Order("f.created_at DESC").
		Order("u.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
