package services

import (
	"errors"
	"fmt"

	"github.com/EatRateLove/eatratelove_backend/internal/repository"
)

var (
	// ErrNotFound 参照先のユーザーや投稿が存在しない
	ErrNotFound = errors.New("見つかりません")
	// ErrConflict ユーザー名またはメールアドレスが既に使用されている
	ErrConflict = errors.New("既に使用されています")
	// ErrUnauthorized 認証情報がない、または無効
	ErrUnauthorized = errors.New("認証に失敗しました")
	// ErrForbidden 操作する権限がない
	ErrForbidden = errors.New("権限がありません")
	// ErrValidation 必須項目の不足など
	ErrValidation = errors.New("入力が不正です")
)

// ValidationError 項目単位のバリデーションエラー
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is errors.Is(err, ErrValidation) を満たす
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// mapRepoError リポジトリのエラーをサービスのエラーに変換
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	default:
		return err
	}
}
