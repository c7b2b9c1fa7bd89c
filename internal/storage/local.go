package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore ローカルディスクへの保存
type LocalStore struct {
	dir        string
	publicPath string
}

// NewLocalStore 保存ディレクトリを作成して LocalStore を返す
func NewLocalStore(dir, publicPath string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("アップロードディレクトリの作成に失敗しました: %w", err)
	}
	return &LocalStore{dir: dir, publicPath: publicPath}, nil
}

// Dir 保存ディレクトリ
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save ファイルを書き込む
func (s *LocalStore) Save(_ context.Context, name, _ string, r io.Reader, _ int64) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("ファイルの作成に失敗しました: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("ファイルの書き込みに失敗しました: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("ファイルの書き込みに失敗しました: %w", err)
	}

	return joinURL(s.publicPath, filepath.Base(name)), nil
}
