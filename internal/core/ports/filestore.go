package ports

import (
	"context"
	"io"
)

// FileStore persists task attachments. Save returns the storage key the
// content was written under; Open streams it back.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
