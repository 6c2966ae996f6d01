package whisper

import (
	"context"
	"fmt"
	"sync"

	"github.com/kbukum/scribekit/errors"
	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/observability"
	"github.com/kbukum/scribekit/provider"
	"github.com/kbukum/scribekit/transcription"
)

// ProviderName is the registered name for the whisper backend.
const ProviderName = transcription.EngineWhisper

// Model is a loaded speech recognition model.
type Model interface {
	Transcribe(ctx context.Context, audioPath string, lang transcription.Language) (string, error)
}

// LoadOptions selects the model to load.
type LoadOptions struct {
	Size   string
	Device Device
}

// Loader loads a model. Models that hold resources implement
// provider.Closeable.
type Loader interface {
	Load(ctx context.Context, opts LoadOptions) (Model, error)
}

// Pinger is implemented by loaders that can report readiness without
// loading a model.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend implements transcription.Provider with a locally run model.
// The model is loaded on the first Transcribe call and reused afterwards.
type Backend struct {
	cfg    Config
	loader Loader
	device func() Device
	log    *logger.Logger

	mu    sync.Mutex
	model Model
}

// Option configures a Backend.
type Option func(*Backend)

// WithLoader overrides the loader selected by Config.Loader.
func WithLoader(l Loader) Option {
	return func(b *Backend) { b.loader = l }
}

// WithDeviceDetector overrides device detection.
func WithDeviceDetector(detect func() Device) Option {
	return func(b *Backend) { b.device = detect }
}

// WithLogger sets the backend logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// New creates a whisper backend. No model is loaded until first use.
func New(cfg Config, opts ...Option) (*Backend, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Backend{
		cfg:    cfg,
		device: DetectDevice,
		log:    logger.Get("whisper"),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.loader == nil {
		loader, err := newLoader(cfg)
		if err != nil {
			return nil, err
		}
		b.loader = loader
	}
	return b, nil
}

// Factory returns a provider.Factory building a Backend from cfg.
func Factory(cfg Config, opts ...Option) provider.Factory[transcription.Provider] {
	return func() (transcription.Provider, error) {
		return New(cfg, opts...)
	}
}

func newLoader(cfg Config) (Loader, error) {
	switch cfg.Loader {
	case LoaderCLI:
		return NewCLILoader(cfg, nil), nil
	case LoaderSidecar:
		return NewSidecarLoader(cfg)
	default:
		return nil, fmt.Errorf("whisper: unknown loader %q", cfg.Loader)
	}
}

// Name returns the provider name.
func (b *Backend) Name() string { return ProviderName }

// IsAvailable reports whether a model is loaded or the loader is ready.
func (b *Backend) IsAvailable(ctx context.Context) bool {
	b.mu.Lock()
	loaded := b.model != nil
	b.mu.Unlock()
	if loaded {
		return true
	}
	if p, ok := b.loader.(Pinger); ok {
		return p.Ping(ctx) == nil
	}
	return true
}

// Transcribe runs the model on req.AudioPath. The result never carries a
// summary.
func (b *Backend) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	model, err := b.loadModel(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, b.cfg.Timeout)
	defer cancel()

	ctx, span := observability.StartPhase(ctx, observability.SpanInference,
		observability.AttrLanguage, req.Language.String())
	b.log.Info("transcribing with local model", logger.Fields(
		logger.FieldPath, req.AudioPath,
		logger.FieldLanguage, req.Language.String(),
	))

	text, err := model.Transcribe(ctx, req.AudioPath, req.Language)
	observability.EndSpan(span, err)
	if err != nil {
		b.log.Error("local transcription failed", logger.ErrorFields("inference", err))
		return nil, errors.BackendFailed(ProviderName, err)
	}
	return &transcription.Result{Transcript: text}, nil
}

// loadModel returns the cached model, loading it on first use. A failed
// load is not cached, so a later call tries again.
func (b *Backend) loadModel(ctx context.Context) (Model, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.model != nil {
		return b.model, nil
	}

	device := b.device()
	opts := LoadOptions{Size: b.cfg.Model, Device: device}

	ctx, span := observability.StartPhase(ctx, observability.SpanModelLoad,
		observability.AttrDevice, string(device))
	b.log.Info("loading whisper model", logger.Fields("model", opts.Size, logger.FieldDevice, string(device)))

	model, err := b.loader.Load(ctx, opts)
	observability.EndSpan(span, err)
	if err != nil {
		b.log.Error("model load failed", logger.ErrorFields("load", err))
		return nil, errors.BackendFailed(ProviderName, fmt.Errorf("load model %s: %w", opts.Size, err))
	}
	b.model = model
	return model, nil
}

// Close releases the loaded model, if any.
func (b *Backend) Close(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.model == nil {
		return nil
	}
	var err error
	if c, ok := b.model.(provider.Closeable); ok {
		err = c.Close(ctx)
	}
	b.model = nil
	return err
}

// compile-time checks
var (
	_ transcription.Provider = (*Backend)(nil)
	_ provider.Closeable     = (*Backend)(nil)
)

// modelLanguage maps a hint to the code whisper understands.
func modelLanguage(l transcription.Language) string {
	if l == transcription.LanguageEnglishUS {
		return string(transcription.LanguageEnglish)
	}
	return string(l)
}
