// Package testutil テスト用のデータベースとフィクスチャ
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/EatRateLove/eatratelove_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB テストごとに一時ファイルのSQLiteを作成しマイグレーションする
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			SQLitePath:   filepath.Join(t.TempDir(), "test.db"),
			MaxIdleConns: 2,
			MaxOpenConns: 4,
			LogLevel:     "silent",
		},
	}

	db, err := config.InitDB(cfg)
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser ユーザーを直接作成
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreatePost 投稿を直接作成
func CreatePost(t *testing.T, db *gorm.DB, userID uint, imageURL string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:   userID,
		ImageURL: imageURL,
	}
	require.NoError(t, db.Omit("User").Create(post).Error)
	return post
}
