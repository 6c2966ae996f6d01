package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
)

// WriteFile stores data at p.
func WriteFile(ctx context.Context, s Storage, p string, data []byte) error {
	return s.Upload(ctx, p, bytes.NewReader(data))
}

// ReadFile retrieves the object at p.
func ReadFile(ctx context.Context, s Storage, p string) ([]byte, error) {
	rc, err := s.Download(ctx, p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ReadOptional is ReadFile that reports a missing object as ok=false
// instead of an error.
func ReadOptional(ctx context.Context, s Storage, p string) (data []byte, ok bool, err error) {
	data, err = ReadFile(ctx, s, p)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
