package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/EatRateLove/eatratelove_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore メモリ上に保存するStore
type memoryStore struct {
	files map[string]string
	err   error
}

func (s *memoryStore) Save(_ context.Context, name, _ string, r io.Reader, _ int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.files[name] = string(data)
	return "/media/" + name, nil
}

func testMediaConfig() config.MediaConfig {
	return config.MediaConfig{
		MaxSize: 16,
		AllowedTypes: map[string]string{
			"image/jpeg": ".jpg",
			"image/png":  ".png",
		},
	}
}

func TestMediaService_Upload(t *testing.T) {
	store := &memoryStore{files: map[string]string{}}
	svc := NewMediaService(store, testMediaConfig())

	url, err := svc.Upload(context.Background(), "image/png", 3, strings.NewReader("png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	require.Len(t, store.files, 1)

	url, err = svc.Upload(context.Background(), "IMAGE/JPEG; q=1", 3, strings.NewReader("jpg"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestMediaService_Rejects(t *testing.T) {
	store := &memoryStore{files: map[string]string{}}
	svc := NewMediaService(store, testMediaConfig())

	_, err := svc.Upload(context.Background(), "application/pdf", 3, strings.NewReader("pdf"))
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)

	_, err = svc.Upload(context.Background(), "image/png", 17, strings.NewReader(strings.Repeat("x", 17)))
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, store.files)

	store.err = errors.New("disk full")
	_, err = svc.Upload(context.Background(), "image/png", 3, strings.NewReader("png"))
	assert.ErrorIs(t, err, store.err)
}
