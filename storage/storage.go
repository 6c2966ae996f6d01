package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is wrapped by Download for a missing object.
var ErrNotFound = errors.New("storage: object not found")

// FileInfo describes one stored object.
type FileInfo struct {
	Path         string
	Size         int64
	LastModified time.Time
	ContentType  string
}

// Storage is a flat object namespace holding project artifacts. Paths are
// slash separated and relative to the backend root, e.g.
// "My_Talk/transcription.txt".
type Storage interface {
	// Upload stores the reader's content at path, replacing any object there.
	Upload(ctx context.Context, path string, reader io.Reader) error
	// Download opens the object at path. The caller closes it.
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes path. Deleting a missing object is not an error.
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	// URL returns a location for path suitable for showing to a user.
	URL(ctx context.Context, path string) (string, error)
	// List returns the objects under prefix, sorted by path.
	List(ctx context.Context, prefix string) ([]FileInfo, error)
}
