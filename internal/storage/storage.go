package storage

import (
	"context"
	"io"
)

// Storage persists uploaded files and returns their public URL. A successful
// save followed by a failed entity write leaves an orphaned file; callers do
// not attempt cleanup.
type Storage interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
