// Package orchestrator runs one transcription end to end: acquire the
// audio, transcribe it with the selected backend, persist the result.
package orchestrator

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/scribekit/acquire"
	"github.com/kbukum/scribekit/errors"
	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/observability"
	"github.com/kbukum/scribekit/provider"
	"github.com/kbukum/scribekit/store"
	"github.com/kbukum/scribekit/transcription"
)

// Acquirer obtains the audio for a run.
type Acquirer interface {
	Acquire(ctx context.Context, src acquire.Source) (*acquire.Asset, error)
}

// ResultStore persists a run's result.
type ResultStore interface {
	Save(ctx context.Context, project, transcript, summary string) (*store.Paths, error)
}

// Request selects what to transcribe and how.
type Request struct {
	Engine string
	// Language is a code accepted by transcription.ParseLanguage.
	Language string
	Source   acquire.Source
	// Credential is the API key for engines that need one.
	Credential string
}

// Outcome describes a finished run.
type Outcome struct {
	RunID     string
	Engine    string
	Language  transcription.Language
	Project   string
	AudioPath string
	Result    *transcription.Result
	Paths     *store.Paths
	Duration  time.Duration
}

// Orchestrator wires acquisition, transcription backends and storage.
type Orchestrator struct {
	acquirer Acquirer
	backends *provider.Registry[transcription.Provider]
	store    ResultStore
	log      *logger.Logger
	newID    func() string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// WithIDGenerator overrides run id generation.
func WithIDGenerator(f func() string) Option {
	return func(o *Orchestrator) { o.newID = f }
}

// New creates an Orchestrator. backends maps engine names to providers.
func New(acq Acquirer, backends *provider.Registry[transcription.Provider], results ResultStore, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		acquirer: acq,
		backends: backends,
		store:    results,
		log:      logger.Get("orchestrator"),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate checks the engine, credential and language of req without
// touching the filesystem or network.
func (o *Orchestrator) Validate(req Request) (engine string, lang transcription.Language, err error) {
	engine, err = transcription.ParseEngine(req.Engine)
	if err != nil {
		return "", "", err
	}
	if !o.backends.Has(engine) {
		available := "none"
		if names := o.backends.List(); len(names) > 0 {
			available = strings.Join(names, ", ")
		}
		return "", "", errors.InvalidInput("engine", "engine "+engine+" is not configured (available: "+available+")")
	}
	if transcription.RequiresCredential(engine) && strings.TrimSpace(req.Credential) == "" {
		return "", "", errors.MissingField("api_key")
	}
	lang, err = transcription.ParseLanguage(req.Language)
	if err != nil {
		return "", "", err
	}
	return engine, lang, nil
}

// Run executes acquisition, transcription and persistence in order.
// Errors from each phase are returned unchanged.
func (o *Orchestrator) Run(ctx context.Context, req Request) (out *Outcome, err error) {
	engine, lang, err := o.Validate(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	runID := o.newID()
	log := o.log.WithFields(logger.Fields(logger.FieldRunID, runID, logger.FieldEngine, engine))

	ctx, span := observability.StartPhase(ctx, observability.SpanRun,
		observability.AttrRunID, runID,
		observability.AttrEngine, engine,
		observability.AttrLanguage, lang.String(),
		observability.AttrSource, string(req.Source.Kind),
	)
	defer func() { observability.EndSpan(span, err) }()

	log.Info("run started", logger.Fields(logger.FieldLanguage, lang.String(), "source", string(req.Source.Kind)))

	asset, err := o.acquirer.Acquire(ctx, req.Source)
	if err != nil {
		log.Error("run failed", logger.ErrorFields("acquire", err))
		return nil, err
	}
	span.SetAttributes(observability.String(observability.AttrProject, asset.Project))

	result, err := o.transcribe(ctx, engine, transcription.Request{AudioPath: asset.Path, Language: lang})
	if err != nil {
		log.Error("run failed", logger.ErrorFields("transcribe", err))
		return nil, err
	}

	paths, err := o.store.Save(ctx, asset.Project, result.Transcript, result.Summary)
	if err != nil {
		log.Error("run failed", logger.ErrorFields("store", err))
		return nil, err
	}

	out = &Outcome{
		RunID:     runID,
		Engine:    engine,
		Language:  lang,
		Project:   asset.Project,
		AudioPath: asset.Path,
		Result:    result,
		Paths:     paths,
		Duration:  time.Since(start),
	}
	log.Info("run complete", logger.DurationFields("run", out.Duration))
	return out, nil
}

func (o *Orchestrator) transcribe(ctx context.Context, engine string, req transcription.Request) (res *transcription.Result, err error) {
	ctx, span := observability.StartPhase(ctx, observability.SpanTranscribe,
		observability.AttrEngine, engine)
	defer func() { observability.EndSpan(span, err) }()

	backend, err := o.backends.Get(ctx, engine)
	if err != nil {
		if stderrors.Is(err, provider.ErrNotRegistered) {
			return nil, errors.InvalidInput("engine", err.Error())
		}
		if _, ok := errors.AsAppError(err); ok {
			return nil, err
		}
		return nil, errors.BackendFailed(engine, err)
	}

	res, err = backend.Transcribe(ctx, req)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = &transcription.Result{}
	}
	return res, nil
}

// Close releases backend resources such as a loaded model.
func (o *Orchestrator) Close(ctx context.Context) error {
	return o.backends.Close(ctx)
}
