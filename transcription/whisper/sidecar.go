package whisper

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kbukum/scribekit/httpclient"
	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/resilience"
	"github.com/kbukum/scribekit/transcription"
	"github.com/kbukum/scribekit/version"
)

// SidecarLoader runs inference on a faster-whisper HTTP sidecar. Loading
// waits for the sidecar to report healthy; the sidecar itself holds the
// weights.
type SidecarLoader struct {
	client *httpclient.Client
	// ready shares the sidecar address but retries /health with backoff.
	ready *httpclient.Client
}

// NewSidecarLoader creates a loader for the sidecar at cfg.URL.
func NewSidecarLoader(cfg Config) (*SidecarLoader, error) {
	return newSidecarLoader(cfg, readinessRetry())
}

// readinessRetry waits up to roughly half a minute for a starting sidecar.
func readinessRetry() resilience.RetryConfig {
	r := *httpclient.DefaultRetryConfig()
	r.MaxAttempts = 10
	r.InitialBackoff = 500 * time.Millisecond
	r.MaxBackoff = 5 * time.Second
	return r
}

func newSidecarLoader(cfg Config, ready resilience.RetryConfig) (*SidecarLoader, error) {
	base := httpclient.Config{
		BaseURL:   cfg.URL,
		Timeout:   cfg.Timeout,
		UserAgent: version.UserAgent("scribe"),
	}
	client, err := httpclient.New(base)
	if err != nil {
		return nil, fmt.Errorf("whisper: sidecar client: %w", err)
	}

	log := logger.Get("whisper")
	ready.OnRetry = func(attempt int, err error, backoff time.Duration) {
		log.Info("waiting for whisper sidecar", logger.Fields(
			logger.FieldAttempt, attempt,
			logger.FieldError, err.Error(),
			"backoff_ms", backoff.Milliseconds(),
		))
	}
	base.Retry = &ready
	readyClient, err := httpclient.New(base)
	if err != nil {
		return nil, fmt.Errorf("whisper: sidecar client: %w", err)
	}
	return &SidecarLoader{client: client, ready: readyClient}, nil
}

// Ping checks the sidecar health endpoint once.
func (l *SidecarLoader) Ping(ctx context.Context) error {
	_, err := l.client.Do(ctx, healthRequest)
	return err
}

// Load waits for the sidecar to become healthy.
func (l *SidecarLoader) Load(ctx context.Context, opts LoadOptions) (Model, error) {
	if _, err := l.ready.Do(ctx, healthRequest); err != nil {
		return nil, fmt.Errorf("sidecar not ready at %s: %w", l.client.BaseURL(), err)
	}
	return &sidecarModel{client: l.client, opts: opts}, nil
}

var healthRequest = httpclient.Request{Method: http.MethodGet, Path: "/health"}

type sidecarModel struct {
	client *httpclient.Client
	opts   LoadOptions
}

type sidecarResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (m *sidecarModel) Transcribe(ctx context.Context, audioPath string, lang transcription.Language) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	fields := map[string]string{
		"model":        m.opts.Size,
		"device":       string(m.opts.Device),
		"compute_type": m.opts.Device.computeType(),
	}
	if code := modelLanguage(lang); code != "" {
		fields["language"] = code
	}

	resp, err := m.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/transcribe",
		Body: &httpclient.MultipartBody{
			Fields: fields,
			Files: []httpclient.FileField{{
				FieldName: "audio",
				FileName:  filepath.Base(audioPath),
				Reader:    f,
			}},
		},
	})
	if err != nil {
		if body := httpclient.BodyOf(err); len(body) > 0 {
			return "", fmt.Errorf("sidecar transcribe: %w: %s", err, body)
		}
		return "", fmt.Errorf("sidecar transcribe: %w", err)
	}

	var out sidecarResponse
	if err := resp.DecodeJSON(&out); err != nil {
		return "", err
	}
	return out.Text, nil
}
