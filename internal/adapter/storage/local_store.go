package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"staffhub/internal/core/ports"
)

// LocalStore keeps task attachments on local disk under a single directory.
// Keys are random, the original filename only lives in the database.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	key := uuid.NewString()
	if ext := filepath.Ext(name); ext != "" && ext == filepath.Base(ext) {
		key += ext
	}

	f, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return key, nil
}

func (s *LocalStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	// Keys never contain path separators; anything else is not ours.
	if key == "" || key != filepath.Base(key) {
		return nil, fs.ErrNotExist
	}
	return os.Open(filepath.Join(s.root, key))
}

var _ ports.FileStore = (*LocalStore)(nil)
