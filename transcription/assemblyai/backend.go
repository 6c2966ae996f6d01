package assemblyai

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"

	"github.com/kbukum/scribekit/errors"
	"github.com/kbukum/scribekit/httpclient"
	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/observability"
	"github.com/kbukum/scribekit/provider"
	"github.com/kbukum/scribekit/resilience"
	"github.com/kbukum/scribekit/transcription"
	"github.com/kbukum/scribekit/version"
)

// ProviderName is the registered name for the AssemblyAI backend.
const ProviderName = transcription.EngineAssemblyAI

const authHeader = "authorization"

// Backend implements transcription.Provider against the AssemblyAI API.
type Backend struct {
	cfg    Config
	client *httpclient.Client
	log    *logger.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the backend logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// New creates an AssemblyAI backend. The API key is required.
func New(cfg Config, opts ...Option) (*Backend, error) {
	cfg.ApplyDefaults()
	if cfg.APIKey == "" {
		return nil, errors.MissingField("assemblyai.api_key")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.InvalidInput("assemblyai", err.Error())
	}

	client, err := httpclient.New(httpclient.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: version.UserAgent("scribe"),
		Auth:      httpclient.APIKeyAuthHeader(cfg.APIKey, authHeader),
	})
	if err != nil {
		return nil, errors.Internal(err)
	}

	b := &Backend{cfg: cfg, client: client, log: logger.Get("assemblyai")}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Factory returns a provider.Factory building a Backend from cfg.
func Factory(cfg Config, opts ...Option) provider.Factory[transcription.Provider] {
	return func() (transcription.Provider, error) {
		return New(cfg, opts...)
	}
}

// Name returns the provider name.
func (b *Backend) Name() string { return ProviderName }

// IsAvailable reports whether an API key is configured. The API has no
// unauthenticated health endpoint.
func (b *Backend) IsAvailable(context.Context) bool { return b.cfg.APIKey != "" }

// Transcribe uploads the audio, submits a job and polls it to a terminal
// state. A job the service reports as failed returns an empty Result.
func (b *Backend) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	audioURL, err := b.Upload(ctx, req.AudioPath)
	if err != nil {
		return nil, err
	}
	jobID, err := b.Submit(ctx, BuildJobRequest(audioURL, req.Language))
	if err != nil {
		return nil, err
	}
	job, err := b.Wait(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.IsFailed() {
		return &transcription.Result{}, nil
	}
	return &transcription.Result{Transcript: job.Text, Summary: job.Summary}, nil
}

// Upload streams the audio file to POST /upload and returns its upload URL.
func (b *Backend) Upload(ctx context.Context, audioPath string) (url string, err error) {
	ctx, span := observability.StartPhase(ctx, observability.SpanUpload)
	defer func() { observability.EndSpan(span, err) }()

	f, err := os.Open(audioPath)
	if err != nil {
		return "", errors.UploadFailed(0, nil, fmt.Errorf("open audio: %w", err))
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", errors.UploadFailed(0, nil, fmt.Errorf("stat audio: %w", err))
	}

	b.log.Info("uploading audio", logger.Fields(logger.FieldPath, audioPath, "bytes", info.Size()))
	resp, err := b.client.Do(ctx, httpclient.Request{
		Method:        http.MethodPost,
		Path:          "/upload",
		Body:          f,
		ContentLength: info.Size(),
	})
	if err != nil {
		b.log.Error("upload failed", logger.ErrorFields("upload", err))
		return "", errors.UploadFailed(httpclient.StatusOf(err), httpclient.BodyOf(err), err)
	}

	var out uploadResponse
	if err := resp.DecodeJSON(&out); err != nil || out.UploadURL == "" {
		return "", errors.UploadFailed(resp.StatusCode, resp.Body, orMissing(err, "upload_url"))
	}
	return out.UploadURL, nil
}

// Submit creates a transcription job and returns its id.
func (b *Backend) Submit(ctx context.Context, job JobRequest) (id string, err error) {
	ctx, span := observability.StartPhase(ctx, observability.SpanSubmit,
		observability.AttrLanguage, job.LanguageCode)
	defer func() { observability.EndSpan(span, err) }()

	resp, err := b.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/transcript",
		Body:   job,
	})
	if err != nil {
		b.log.Error("transcription request failed", logger.ErrorFields("submit", err))
		return "", errors.SubmissionFailed(httpclient.StatusOf(err), httpclient.BodyOf(err), err)
	}

	var out Job
	if err := resp.DecodeJSON(&out); err != nil || out.ID == "" {
		return "", errors.SubmissionFailed(resp.StatusCode, resp.Body, orMissing(err, "id"))
	}
	span.SetAttributes(observability.String(observability.AttrJobID, out.ID))
	b.log.Info("transcription submitted", logger.Fields(
		logger.FieldJobID, out.ID,
		"summarization", job.Summarization,
	))
	return out.ID, nil
}

// Get fetches the current state of a job once.
func (b *Backend) Get(ctx context.Context, jobID string) (*Job, error) {
	resp, err := b.client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/transcript/" + jobID,
	})
	if err != nil {
		return nil, errors.PollFailed(jobID, httpclient.StatusOf(err), httpclient.BodyOf(err), err)
	}
	var job Job
	if err := resp.DecodeJSON(&job); err != nil {
		return nil, errors.PollFailed(jobID, resp.StatusCode, resp.Body, err)
	}
	return &job, nil
}

// Wait polls a job until it completes or fails. The first query is sent
// immediately. Status query failures are not retried.
func (b *Backend) Wait(ctx context.Context, jobID string) (job *Job, err error) {
	ctx, span := observability.StartPhase(ctx, observability.SpanPoll,
		observability.AttrJobID, jobID)
	defer func() { observability.EndSpan(span, err) }()

	var last *Job
	cfg := resilience.PollConfig{
		Interval:    b.cfg.PollInterval,
		MaxAttempts: b.cfg.MaxPollAttempts,
		Timeout:     b.cfg.PollTimeout,
		OnPending: func(attempt int) {
			b.log.Info(fmt.Sprintf("Transcription status: %s. Please wait...", last.Status), logger.Fields(
				logger.FieldJobID, jobID,
				logger.FieldStatus, last.Status,
				logger.FieldAttempt, attempt,
			))
		},
	}
	job, attempts, err := resilience.Poll(ctx, cfg, func(ctx context.Context, _ int) (*Job, bool, error) {
		j, err := b.Get(ctx, jobID)
		if err != nil {
			return nil, false, err
		}
		last = j
		return j, j.IsTerminal(), nil
	})
	span.SetAttributes(observability.Int(observability.AttrPolls, attempts))

	switch {
	case stderrors.Is(err, resilience.ErrPollTimeout):
		b.log.Error("transcription did not finish", logger.Fields(logger.FieldJobID, jobID, logger.FieldAttempt, attempts))
		return nil, errors.PollTimeout(jobID, attempts, err)
	case err != nil:
		if _, ok := errors.AsAppError(err); ok {
			b.log.Error("error retrieving transcription", logger.ErrorFields("poll", err))
			return nil, err
		}
		return nil, errors.PollFailed(jobID, 0, nil, err)
	}

	if job.IsFailed() {
		b.log.Error("transcription failed", logger.Fields(
			logger.FieldJobID, jobID,
			logger.FieldStatus, job.Status,
			logger.FieldError, job.Error,
		))
		return job, nil
	}
	b.log.Info("transcription complete", logger.Fields(logger.FieldJobID, jobID, logger.FieldAttempt, attempts))
	return job, nil
}

func orMissing(err error, field string) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("response has no %s", field)
}

// compile-time check
var _ transcription.Provider = (*Backend)(nil)
