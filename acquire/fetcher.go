package acquire

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/process"
)

// MediaFetcher resolves and downloads online media.
type MediaFetcher interface {
	// Title returns the media title without downloading anything.
	Title(ctx context.Context, url string) (string, error)
	// FetchAudio downloads the best audio stream into dir as a .wav file.
	FetchAudio(ctx context.Context, url, dir string) error
}

// ToolError is a failed run of an external tool.
type ToolError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Tool, e.Err, e.Stderr)
}

func (e *ToolError) Unwrap() error { return e.Err }

const (
	defaultYTDLPBinary = "yt-dlp"
	audioFormat        = "wav"
	audioQuality       = "192K"
	outputTemplate     = "%(title)s.%(ext)s"
)

// YTDLP fetches media with the yt-dlp command line tool.
type YTDLP struct {
	binary string
	exec   process.Executor
	log    *logger.Logger
}

// NewYTDLP creates a fetcher running binary (default "yt-dlp") through
// exec (default the host).
func NewYTDLP(binary string, exec process.Executor) *YTDLP {
	if binary == "" {
		binary = defaultYTDLPBinary
	}
	if exec == nil {
		exec = process.Local
	}
	return &YTDLP{binary: binary, exec: exec, log: logger.Get("yt-dlp")}
}

// Title reads the media metadata.
func (y *YTDLP) Title(ctx context.Context, url string) (string, error) {
	res, err := y.run(ctx, "--dump-single-json", "--skip-download", "--no-warnings", url)
	if err != nil {
		return "", err
	}
	var info struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(res.Stdout, &info); err != nil {
		return "", fmt.Errorf("%s: decode metadata: %w", y.binary, err)
	}
	return info.Title, nil
}

// FetchAudio downloads best audio and transcodes it to WAV in dir.
func (y *YTDLP) FetchAudio(ctx context.Context, url, dir string) error {
	res, err := y.run(ctx,
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", audioFormat,
		"--audio-quality", audioQuality,
		"-o", filepath.Join(dir, outputTemplate),
		"--quiet", "--no-progress",
		url,
	)
	if err != nil {
		return err
	}
	y.logWarnings(res.Stderr)
	return nil
}

func (y *YTDLP) run(ctx context.Context, args ...string) (*process.Result, error) {
	cmd := process.Command{Binary: y.binary, Args: args}
	y.log.Debug("running fetch tool", logger.Fields("command", cmd.String()))

	res, err := y.exec.Run(ctx, cmd)
	if err != nil {
		return nil, &ToolError{Tool: y.binary, Stderr: res.StderrTail(), Err: err}
	}
	return res, nil
}

// logWarnings forwards the tool's warnings, which survive --quiet.
func (y *YTDLP) logWarnings(stderr []byte) {
	sc := bufio.NewScanner(bytes.NewReader(stderr))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); strings.HasPrefix(line, "WARNING:") {
			y.log.Warn(strings.TrimSpace(strings.TrimPrefix(line, "WARNING:")))
		}
	}
}

var _ MediaFetcher = (*YTDLP)(nil)
