// Package memory is an in-process storage backend. Contents are lost when
// the process exits; it backs tests and dry runs.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/storage"
)

func init() {
	storage.RegisterFactory(storage.ProviderMemory, func(context.Context, storage.Config, *logger.Logger) (storage.Storage, error) {
		return New(), nil
	})
}

type object struct {
	data    []byte
	modTime time.Time
}

// Storage implements storage.Storage with a map guarded by a mutex.
type Storage struct {
	mu    sync.RWMutex
	files map[string]object
}

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{files: make(map[string]object)}
}

func (s *Storage) Upload(_ context.Context, path string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("storage: read upload data: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = object{data: data, modTime: time.Now()}
	return nil
}

func (s *Storage) Download(_ context.Context, path string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, path)
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

func (s *Storage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func (s *Storage) Exists(_ context.Context, path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *Storage) URL(_ context.Context, path string) (string, error) {
	return "mem://" + path, nil
}

func (s *Storage) List(_ context.Context, prefix string) ([]storage.FileInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []storage.FileInfo{}
	for path, f := range s.files {
		if strings.HasPrefix(path, prefix) {
			result = append(result, storage.FileInfo{
				Path:         path,
				Size:         int64(len(f.data)),
				LastModified: f.modTime,
			})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result, nil
}

// Len returns the number of stored objects.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

var _ storage.Storage = (*Storage)(nil)
