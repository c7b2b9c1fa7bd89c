package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/google/uuid"
)

// Store アップロードされた画像の保存先
type Store interface {
	// Save 画像を保存し、公開URLを返す
	Save(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error)
}

// NewObjectName 拡張子付きの一意なファイル名を生成
func NewObjectName(ext string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + ext
}

// NewStore 設定に応じた保存先を作成
func NewStore(ctx context.Context, cfg config.MediaConfig) (Store, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStore(cfg.UploadDir, cfg.PublicPath)
	case "cloudinary":
		return NewCloudinaryStore(cfg.Cloudinary)
	case "s3":
		return NewS3Store(cfg.S3)
	case "minio":
		return NewMinioStore(ctx, cfg.Minio)
	default:
		return nil, fmt.Errorf("不明な保存先です: %s", cfg.Backend)
	}
}

// joinURL ベースURLとファイル名を連結
func joinURL(base, name string) string {
	return strings.TrimRight(base, "/") + "/" + name
}
