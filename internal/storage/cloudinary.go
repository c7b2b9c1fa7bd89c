package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore Cloudinaryへの保存
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore CloudinaryStoreを作成
func NewCloudinaryStore(cfg config.CloudinaryConfig) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("Cloudinaryの初期化に失敗しました: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: cfg.Folder}, nil
}

// Save 画像をアップロード
func (s *CloudinaryStore) Save(ctx context.Context, name, _ string, r io.Reader, _ int64) (string, error) {
	params := uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     strings.TrimSuffix(name, filepath.Ext(name)),
		ResourceType: "image",
	}

	result, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("Cloudinaryへのアップロードに失敗しました: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("Cloudinaryへのアップロードに失敗しました: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}
