package repository

import (
	"errors"
	"testing"

	"github.com/EatRateLove/eatratelove_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMySQLMock 本番と同じMySQLダイアレクトでSQLの形を検証する
func newMySQLMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestFollowRepository_MySQLUsesUpsertIgnore(t *testing.T) {
	db, mock := newMySQLMock(t)
	repo := NewFollowRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `follows` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_MySQLLikeUsesUpsertIgnore(t *testing.T) {
	db, mock := newMySQLMock(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `likes` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.AddLike(3, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_MySQLDuplicateEntry(t *testing.T) {
	db, mock := newMySQLMock(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'users.idx_users_username'"))
	mock.ExpectRollback()

	err := repo.Create(&models.User{Username: "alice", Email: "a@example.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_MySQLDeleteRollsBack(t *testing.T) {
	db, mock := newMySQLMock(t)
	repo := NewUserRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `likes`").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `comments`").WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.Delete(7)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_MySQLCountErrorPropagates(t *testing.T) {
	db, mock := newMySQLMock(t)
	repo := NewFollowRepository(db)
	boom := errors.New("server has gone away")

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `follows`").WillReturnError(boom)

	_, err := repo.CountFollowers(1)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
