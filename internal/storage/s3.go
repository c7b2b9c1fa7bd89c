package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Store AWS S3 (または互換ストレージ) への保存
type S3Store struct {
	uploader  *s3manager.Uploader
	bucket    string
	publicURL string
}

// NewS3Store S3Storeを作成
// 認証情報は AWS SDK の既定の方法 (環境変数など) で解決する
func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET が設定されていません")
	}

	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("AWSセッションの作成に失敗しました: %w", err)
	}

	return &S3Store{
		uploader:  s3manager.NewUploader(sess),
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
	}, nil
}

// Save オブジェクトをアップロード
func (s *S3Store) Save(ctx context.Context, name, contentType string, r io.Reader, _ int64) (string, error) {
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("S3へのアップロードに失敗しました: %w", err)
	}

	if s.publicURL != "" {
		return joinURL(s.publicURL, name), nil
	}
	return out.Location, nil
}
