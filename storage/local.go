package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStore keeps uploaded images on disk and addresses them by the
// public URL they are served under (see the /uploads static route).
type LocalStore struct {
	baseDir string
	baseURL string
}

func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes one image under a freshly generated unique name and returns
// its public URL.
func (s *LocalStore) Save(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	filePath := filepath.Join(s.baseDir, name)

	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Remove deletes the file behind a URL previously returned by Save.
// URLs outside the store are rejected.
func (s *LocalStore) Remove(url string) error {
	name := strings.TrimPrefix(url, s.baseURL+"/")
	filePath, err := s.safeJoin(name)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image not found")
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// BaseURL returns the public prefix images are served under.
func (s *LocalStore) BaseURL() string {
	return s.baseURL
}

// safeJoin resolves name relative to baseDir and rejects directory traversal.
func (s *LocalStore) safeJoin(name string) (string, error) {
	if name == "" || name != path.Base(name) {
		return "", fmt.Errorf("invalid image name")
	}
	absBase, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
