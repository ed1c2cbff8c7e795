package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daryltucker/libkit/internal/output"
)

// LocalStore keeps the baseline in a file on disk.
type LocalStore struct {
	path string
}

// NewLocalStore resolves path against root unless it is absolute.
func NewLocalStore(path, root string) *LocalStore {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return &LocalStore{path: path}
}

// Get reads the baseline file.
func (s *LocalStore) Get(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read baseline %s: %w", s.path, err)
	}
	return data, nil
}

// Put atomically replaces the baseline file, creating parent directories.
func (s *LocalStore) Put(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return output.WriteFileAtomic(s.path, data)
}

// Location is the resolved file path.
func (s *LocalStore) Location() string {
	return s.path
}
