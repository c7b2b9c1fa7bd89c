package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrRecordNotFound 対象のレコードが存在しない
	ErrRecordNotFound = errors.New("レコードが見つかりません")
	// ErrDuplicate 一意制約違反
	ErrDuplicate = errors.New("既に存在します")
	// ErrCheckViolation CHECK制約違反
	ErrCheckViolation = errors.New("制約に違反しています")
)

// translateError GORM/ドライバーのエラーをリポジトリのエラーに変換
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "Duplicate entry") {
		return ErrDuplicate
	}
	// SQLite: "CHECK constraint failed", MySQL: "Check constraint ... is violated"
	if strings.Contains(strings.ToLower(msg), "check constraint") {
		return ErrCheckViolation
	}
	return err
}
