package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/EatRateLove/eatratelove_backend/internal/storage"
)

var (
	// ErrUnsupportedMediaType 許可されていないファイル形式
	ErrUnsupportedMediaType = errors.New("サポートされていないファイル形式です")
	// ErrFileTooLarge ファイルサイズが上限を超えている
	ErrFileTooLarge = errors.New("ファイルサイズが大きすぎます")
)

// MediaService 画像アップロードに関するサービスインターフェース
type MediaService interface {
	Upload(ctx context.Context, contentType string, size int64, r io.Reader) (string, error)
}

// mediaService MediaServiceの実装
type mediaService struct {
	store storage.Store
	cfg   config.MediaConfig
}

// NewMediaService MediaServiceを作成
func NewMediaService(store storage.Store, cfg config.MediaConfig) MediaService {
	return &mediaService{
		store: store,
		cfg:   cfg,
	}
}

// Upload 形式とサイズを確認して保存し、公開URLを返す
func (s *mediaService) Upload(ctx context.Context, contentType string, size int64, r io.Reader) (string, error) {
	// パラメータ付きの Content-Type (image/png; charset=...) も受け付ける
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))

	ext, ok := s.cfg.AllowedTypes[contentType]
	if !ok {
		return "", ErrUnsupportedMediaType
	}
	if s.cfg.MaxSize > 0 && size > s.cfg.MaxSize {
		return "", ErrFileTooLarge
	}

	url, err := s.store.Save(ctx, storage.NewObjectName(ext), contentType, r, size)
	if err != nil {
		return "", fmt.Errorf("画像の保存に失敗しました: %w", err)
	}
	return url, nil
}
