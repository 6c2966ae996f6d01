package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kbukum/scribekit/errors"
	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/transcription"
)

// fakeAPI mimics the upload, submit and poll endpoints.
type fakeAPI struct {
	t *testing.T

	mu         sync.Mutex
	statuses   []string
	final      Job
	uploaded   []byte
	uploadLen  int64
	authSeen   string
	submitted  map[string]any
	polls      int
	uploadCode int
	submitCode int
	pollCode   int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authSeen = r.Header.Get("Authorization")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/upload":
		f.uploaded, _ = io.ReadAll(r.Body)
		f.uploadLen = r.ContentLength
		if f.uploadCode != 0 {
			w.WriteHeader(f.uploadCode)
			fmt.Fprint(w, `{"error":"bad upload"}`)
			return
		}
		fmt.Fprint(w, `{"upload_url":"https://cdn.example/u1"}`)
	case r.Method == http.MethodPost && r.URL.Path == "/transcript":
		_ = json.NewDecoder(r.Body).Decode(&f.submitted)
		if f.submitCode != 0 {
			w.WriteHeader(f.submitCode)
			fmt.Fprint(w, `{"error":"Invalid language_code"}`)
			return
		}
		fmt.Fprint(w, `{"id":"job-1","status":"queued"}`)
	case r.Method == http.MethodGet && r.URL.Path == "/transcript/job-1":
		f.polls++
		if f.pollCode != 0 {
			w.WriteHeader(f.pollCode)
			fmt.Fprint(w, `{"error":"Transcript not found"}`)
			return
		}
		job := Job{ID: "job-1", Status: StatusProcessing}
		if f.polls <= len(f.statuses) {
			job.Status = f.statuses[f.polls-1]
		}
		if job.Status == f.final.Status {
			job = f.final
		}
		_ = json.NewEncoder(w).Encode(job)
	default:
		f.t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestBackend(t *testing.T, api *fakeAPI, mutate func(*Config)) *Backend {
	t.Helper()
	api.t = t
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.APIKey = "secret-key"
	cfg.PollInterval = time.Millisecond
	if mutate != nil {
		mutate(&cfg)
	}
	b, err := New(cfg, WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func writeAudio(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "talk.wav")
	if err := os.WriteFile(p, []byte("RIFF-audio-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestTranscribeCompleted(t *testing.T) {
	api := &fakeAPI{
		statuses: []string{StatusProcessing, StatusProcessing, StatusCompleted},
		final:    Job{ID: "job-1", Status: StatusCompleted, Text: "hello", Summary: "s"},
	}
	b := newTestBackend(t, api, nil)

	res, err := b.Transcribe(context.Background(), transcription.Request{
		AudioPath: writeAudio(t),
		Language:  transcription.LanguageEnglishUS,
	})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if res.Transcript != "hello" || res.Summary != "s" {
		t.Errorf("result = %+v", res)
	}
	if api.polls != 3 {
		t.Errorf("polls = %d, want 3 (2 pending + 1 terminal)", api.polls)
	}
	if api.authSeen != "secret-key" {
		t.Errorf("authorization = %q", api.authSeen)
	}
	if string(api.uploaded) != "RIFF-audio-bytes" || api.uploadLen != int64(len("RIFF-audio-bytes")) {
		t.Errorf("upload = %q (len %d)", api.uploaded, api.uploadLen)
	}
	if api.submitted["audio_url"] != "https://cdn.example/u1" || api.submitted["language_code"] != "en_us" {
		t.Errorf("submitted = %v", api.submitted)
	}
}

func TestWaitLogsPendingStatus(t *testing.T) {
	api := &fakeAPI{
		statuses: []string{StatusQueued, StatusProcessing, StatusCompleted},
		final:    Job{ID: "job-1", Status: StatusCompleted, Text: "hello"},
	}
	b := newTestBackend(t, api, nil)
	var buf bytes.Buffer
	b.log = logger.NewWithWriter(&logger.Config{Level: "info", Format: "json"}, "test", &buf)

	if _, err := b.Wait(context.Background(), "job-1"); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	out := buf.String()
	if n := strings.Count(out, "Please wait..."); n != 2 {
		t.Errorf("pending lines = %d, want 2:\n%s", n, out)
	}
	for _, want := range []string{"Transcription status: queued.", "Transcription status: processing."} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestTranscribeJobOptionsPerLanguage(t *testing.T) {
	langs := append([]transcription.Language{transcription.LanguageAuto}, transcription.SupportedLanguages()...)
	for _, lang := range langs {
		name := string(lang)
		if lang.IsAuto() {
			name = transcription.AutoKeyword
		}
		t.Run(name, func(t *testing.T) {
			api := &fakeAPI{
				statuses: []string{StatusCompleted},
				final:    Job{ID: "job-1", Status: StatusCompleted, Text: "hello"},
			}
			b := newTestBackend(t, api, nil)

			if _, err := b.Transcribe(context.Background(), transcription.Request{
				AudioPath: writeAudio(t),
				Language:  lang,
			}); err != nil {
				t.Fatalf("Transcribe: %v", err)
			}

			got := api.submitted
			if lang.IsAuto() {
				if _, ok := got["language_code"]; ok {
					t.Errorf("auto sent language_code: %v", got)
				}
			} else if got["language_code"] != string(lang) {
				t.Errorf("language_code = %v, want %s", got["language_code"], lang)
			}

			summarized := lang.IsAuto() || lang == transcription.LanguageEnglishUS
			if summarized {
				if got["summarization"] != true || got["summary_type"] != SummaryTypeBullets || got["summary_model"] != SummaryModelInformative {
					t.Errorf("summary fields = %v", got)
				}
				if _, ok := got["language_model"]; ok {
					t.Errorf("language_model sent with summary: %v", got)
				}
				return
			}
			if got["language_model"] != LanguageModelMultilingual {
				t.Errorf("language_model = %v, want multilingual", got["language_model"])
			}
			for _, key := range []string{"summarization", "summary_type", "summary_model"} {
				if _, ok := got[key]; ok {
					t.Errorf("%s sent for %s: %v", key, lang, got)
				}
			}
		})
	}
}

func TestTranscribeFailedJobIsEmptyResult(t *testing.T) {
	for _, status := range []string{StatusFailed, StatusError} {
		t.Run(status, func(t *testing.T) {
			api := &fakeAPI{
				statuses: []string{status},
				final:    Job{ID: "job-1", Status: status, Error: "audio too short"},
			}
			b := newTestBackend(t, api, nil)

			res, err := b.Transcribe(context.Background(), transcription.Request{AudioPath: writeAudio(t)})
			if err != nil {
				t.Fatalf("Transcribe: %v", err)
			}
			if res.Transcript != "" || res.Summary != "" {
				t.Errorf("result = %+v, want empty", res)
			}
			if api.polls != 1 {
				t.Errorf("polls = %d", api.polls)
			}
		})
	}
}

func TestUploadFailedCarriesPayload(t *testing.T) {
	api := &fakeAPI{uploadCode: http.StatusUnauthorized}
	b := newTestBackend(t, api, nil)

	_, err := b.Transcribe(context.Background(), transcription.Request{AudioPath: writeAudio(t)})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeUploadFailed {
		t.Fatalf("error = %v, want UPLOAD_FAILED", err)
	}
	if appErr.Payload() != `{"error":"bad upload"}` {
		t.Errorf("payload = %q", appErr.Payload())
	}
	if appErr.Details["status"] != http.StatusUnauthorized {
		t.Errorf("status = %v", appErr.Details["status"])
	}
	if errors.ExitCode(err) != errors.ExitRemote {
		t.Errorf("exit code = %d", errors.ExitCode(err))
	}
}

func TestUploadMissingFile(t *testing.T) {
	b := newTestBackend(t, &fakeAPI{}, nil)
	_, err := b.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.wav"))
	if !errors.Is(err, errors.ErrCodeUploadFailed) {
		t.Fatalf("error = %v", err)
	}
}

func TestSubmissionFailedCarriesPayload(t *testing.T) {
	api := &fakeAPI{submitCode: http.StatusBadRequest}
	b := newTestBackend(t, api, nil)

	_, err := b.Transcribe(context.Background(), transcription.Request{
		AudioPath: writeAudio(t),
		Language:  transcription.LanguageGerman,
	})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeSubmissionFailed {
		t.Fatalf("error = %v, want SUBMISSION_FAILED", err)
	}
	if !strings.Contains(appErr.Payload(), "Invalid language_code") {
		t.Errorf("payload = %q", appErr.Payload())
	}
	if api.submitted["language_model"] != "multilingual" {
		t.Errorf("submitted = %v", api.submitted)
	}
}

func TestPollFailedIsNotRetried(t *testing.T) {
	api := &fakeAPI{pollCode: http.StatusInternalServerError}
	b := newTestBackend(t, api, nil)

	_, err := b.Transcribe(context.Background(), transcription.Request{AudioPath: writeAudio(t)})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodePollFailed {
		t.Fatalf("error = %v, want POLL_FAILED", err)
	}
	if appErr.Details["job_id"] != "job-1" {
		t.Errorf("job_id = %v", appErr.Details["job_id"])
	}
	if api.polls != 1 {
		t.Errorf("polls = %d, want 1", api.polls)
	}
}

func TestPollCeilingByAttempts(t *testing.T) {
	api := &fakeAPI{final: Job{Status: StatusCompleted}}
	b := newTestBackend(t, api, func(c *Config) { c.MaxPollAttempts = 4 })

	_, err := b.Wait(context.Background(), "job-1")
	if !errors.Is(err, errors.ErrCodePollTimeout) {
		t.Fatalf("error = %v, want POLL_TIMEOUT", err)
	}
	if api.polls != 4 {
		t.Errorf("polls = %d, want 4", api.polls)
	}
	appErr, _ := errors.AsAppError(err)
	if appErr.Details["attempts"] != 4 {
		t.Errorf("attempts = %v", appErr.Details["attempts"])
	}
}

func TestPollCeilingByTime(t *testing.T) {
	api := &fakeAPI{final: Job{Status: StatusCompleted}}
	b := newTestBackend(t, api, func(c *Config) {
		c.PollInterval = 5 * time.Millisecond
		c.PollTimeout = 30 * time.Millisecond
	})

	_, err := b.Wait(context.Background(), "job-1")
	if !errors.Is(err, errors.ErrCodePollTimeout) {
		t.Fatalf("error = %v, want POLL_TIMEOUT", err)
	}
}

func TestWaitHonoursCancellation(t *testing.T) {
	api := &fakeAPI{final: Job{Status: StatusCompleted}}
	b := newTestBackend(t, api, func(c *Config) {
		c.PollInterval = time.Hour
		c.PollTimeout = 0
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := b.Wait(ctx, "job-1")
	if err == nil {
		t.Fatal("expected error after cancel")
	}
	if errors.Is(err, errors.ErrCodePollTimeout) {
		t.Errorf("cancellation reported as timeout: %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("poll delay ignored cancellation")
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	if !errors.Is(err, errors.ErrCodeMissingField) {
		t.Fatalf("error = %v, want MISSING_FIELD", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseURL != "https://api.assemblyai.com/v2" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.PollInterval != 5*time.Second || cfg.PollTimeout != 3*time.Hour {
		t.Errorf("poll defaults = %v / %v", cfg.PollInterval, cfg.PollTimeout)
	}

	unbounded := Config{PollTimeout: 0}
	unbounded.ApplyDefaults()
	if unbounded.PollTimeout != 0 {
		t.Error("ApplyDefaults must keep a zero poll timeout")
	}
	if err := (&Config{MaxPollAttempts: -1}).Validate(); err == nil {
		t.Error("negative attempts accepted")
	}
}
