package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrBlobNotFound 檔案不存在
var ErrBlobNotFound = errors.New("blob not found")

type FileInfo struct {
	FileID string `json:"file_id"`
	Name   string `json:"name"`
	Size   int64  `json:"size"`
}

// IBlobStore 商品檔案儲存的對外合約
// 實際provider視部署環境抽換，核心流程只依賴file id
type IBlobStore interface {
	Upload(ctx context.Context, name string, data []byte) (*FileInfo, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
	GetDownloadLink(ctx context.Context, fileID string) (string, error)
}

// LocalBlobStore 本機磁碟實作，file id為uuid
type LocalBlobStore struct {
	baseDir string
	baseURL string
}

func NewLocalBlobStore(baseDir, baseURL string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob dir: %w", err)
	}
	return &LocalBlobStore{baseDir: baseDir, baseURL: baseURL}, nil
}

func (s *LocalBlobStore) Upload(ctx context.Context, name string, data []byte) (*FileInfo, error) {
	fileID := uuid.NewString()
	if err := os.WriteFile(s.path(fileID), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write blob: %w", err)
	}
	return &FileInfo{
		FileID: fileID,
		Name:   name,
		Size:   int64(len(data)),
	}, nil
}

func (s *LocalBlobStore) Download(ctx context.Context, fileID string) ([]byte, error) {
	data, err := os.ReadFile(s.path(fileID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *LocalBlobStore) GetDownloadLink(ctx context.Context, fileID string) (string, error) {
	if _, err := os.Stat(s.path(fileID)); err != nil {
		if os.IsNotExist(err) {
			return "", ErrBlobNotFound
		}
		return "", err
	}
	return fmt.Sprintf("%s/files/%s", s.baseURL, fileID), nil
}

func (s *LocalBlobStore) path(fileID string) string {
	return filepath.Join(s.baseDir, fileID+".bin")
}

var _ IBlobStore = (*LocalBlobStore)(nil)
