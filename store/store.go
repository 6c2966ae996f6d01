// Package store persists transcription results per project.
//
// Each project owns <project>/transcription.txt, always written, and
// <project>/summary.txt, written only when a summary exists. Files are
// overwritten on every save.
package store

import (
	"context"
	"path"

	"github.com/kbukum/scribekit/errors"
	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/observability"
	"github.com/kbukum/scribekit/storage"
	"github.com/kbukum/scribekit/transcription"
)

// Result file names.
const (
	TranscriptFile = "transcription.txt"
	SummaryFile    = "summary.txt"
)

// Paths locates saved artifacts. Summary is empty when no summary was
// written.
type Paths struct {
	Transcript string
	Summary    string
}

// Store writes results through a storage backend.
type Store struct {
	backend storage.Storage
	log     *logger.Logger
}

// New creates a Store over backend.
func New(backend storage.Storage) *Store {
	return &Store{backend: backend, log: logger.Get("store")}
}

// Save writes the transcript and, when non-empty, the summary for project.
// An earlier summary.txt is left in place when the new summary is empty.
func (s *Store) Save(ctx context.Context, project, transcript, summary string) (paths *Paths, err error) {
	ctx, span := observability.StartPhase(ctx, observability.SpanStore,
		observability.AttrProject, project)
	defer func() { observability.EndSpan(span, err) }()

	tp := path.Join(project, TranscriptFile)
	if err := storage.WriteFile(ctx, s.backend, tp, []byte(transcript)); err != nil {
		return nil, errors.StorageFailed(tp, err)
	}
	paths = &Paths{Transcript: s.location(ctx, tp)}
	s.log.Info("transcription saved", logger.Fields(logger.FieldProject, project, logger.FieldPath, paths.Transcript))

	if summary == "" {
		return paths, nil
	}
	sp := path.Join(project, SummaryFile)
	if err := storage.WriteFile(ctx, s.backend, sp, []byte(summary)); err != nil {
		return nil, errors.StorageFailed(sp, err)
	}
	paths.Summary = s.location(ctx, sp)
	s.log.Info("summary saved", logger.Fields(logger.FieldProject, project, logger.FieldPath, paths.Summary))
	return paths, nil
}

// Load reads back the saved result for project. A missing summary yields
// an empty Summary.
func (s *Store) Load(ctx context.Context, project string) (*transcription.Result, error) {
	tp := path.Join(project, TranscriptFile)
	transcript, err := storage.ReadFile(ctx, s.backend, tp)
	if err != nil {
		return nil, errors.StorageFailed(tp, err)
	}
	sp := path.Join(project, SummaryFile)
	summary, _, err := storage.ReadOptional(ctx, s.backend, sp)
	if err != nil {
		return nil, errors.StorageFailed(sp, err)
	}
	return &transcription.Result{Transcript: string(transcript), Summary: string(summary)}, nil
}

// Export copies the result files of project to dst under the same
// relative paths and returns their locations in dst.
func (s *Store) Export(ctx context.Context, project string, dst storage.Storage) ([]string, error) {
	var out []string
	for _, name := range []string{TranscriptFile, SummaryFile} {
		p := path.Join(project, name)
		data, ok, err := storage.ReadOptional(ctx, s.backend, p)
		if err != nil {
			return out, errors.StorageFailed(p, err)
		}
		if !ok {
			if name == TranscriptFile {
				return out, errors.StorageFailed(p, storage.ErrNotFound)
			}
			continue
		}
		if err := storage.WriteFile(ctx, dst, p, data); err != nil {
			return out, errors.StorageFailed(p, err)
		}
		loc, err := dst.URL(ctx, p)
		if err != nil {
			loc = p
		}
		out = append(out, loc)
	}
	s.log.Info("results exported", logger.Fields(logger.FieldProject, project, "files", len(out)))
	return out, nil
}

// location returns a display location for p, such as a file path.
func (s *Store) location(ctx context.Context, p string) string {
	if lp, ok := s.backend.(interface{ LocalPath(string) (string, error) }); ok {
		if full, err := lp.LocalPath(p); err == nil {
			return full
		}
	}
	if u, err := s.backend.URL(ctx, p); err == nil {
		return u
	}
	return p
}
