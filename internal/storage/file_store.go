// Package storage is the blob store behind profile picture uploads: files
// land on local disk under uuid names and are served back as static content.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type FileStore struct {
	dir     string
	baseURL string
}

// NewFileStore ensures dir exists. baseURL is the public prefix the saved
// file is reachable under (e.g. /uploads).
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir, baseURL: baseURL}, nil
}

func (s *FileStore) Dir() string { return s.dir }

// Save writes the bytes under a fresh uuid name, keeping the original
// extension, and returns the public URL.
func (s *FileStore) Save(data []byte, originalName string) (string, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("save file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
