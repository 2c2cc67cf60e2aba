package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LocalStore writes documents to a directory on local disk.
type LocalStore struct {
	dir string
}

// NewLocalStore ensures the target directory exists and returns the
// store.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Store writes the document and returns its path relative to the
// store root.
func (s *LocalStore) Store(ctx context.Context, data []byte, suggestedName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := DocumentKey(time.Now(), suggestedName)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	return path, nil
}
