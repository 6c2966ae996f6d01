package process_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/scribekit/process"
)

func TestRunEcho(t *testing.T) {
	result, err := process.Run(context.Background(), process.Command{
		Binary: "echo",
		Args:   []string{"hello", "world"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", result.ExitCode)
	}
	out := strings.TrimSpace(string(result.Stdout))
	if out != "hello world" {
		t.Fatalf("expected 'hello world', got %q", out)
	}
}

func TestRunExitCode(t *testing.T) {
	result, err := process.Run(context.Background(), process.Command{
		Binary: "sh",
		Args:   []string{"-c", "exit 42"},
	})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if result.ExitCode != 42 {
		t.Fatalf("expected exit code 42, got %d", result.ExitCode)
	}
}

func TestRunStderr(t *testing.T) {
	result, err := process.Run(context.Background(), process.Command{
		Binary: "sh",
		Args:   []string{"-c", "echo oops >&2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stderr := strings.TrimSpace(string(result.Stderr))
	if stderr != "oops" {
		t.Fatalf("expected 'oops' on stderr, got %q", stderr)
	}
}

func TestRunContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	result, err := process.Run(ctx, process.Command{
		Binary:      "sleep",
		Args:        []string{"10"},
		GracePeriod: 500 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected error from context cancellation")
	}
	if result.Duration > 5*time.Second {
		t.Fatalf("process took too long to kill: %v", result.Duration)
	}
}

func TestRunEmptyBinary(t *testing.T) {
	_, err := process.Run(context.Background(), process.Command{})
	if err == nil {
		t.Fatal("expected error for empty binary")
	}
}

func TestRunDuration(t *testing.T) {
	result, err := process.Run(context.Background(), process.Command{
		Binary: "sleep",
		Args:   []string{"0.1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Duration < 50*time.Millisecond {
		t.Fatalf("duration too short: %v", result.Duration)
	}
}

func TestRunMissingBinary(t *testing.T) {
	result, err := process.Run(context.Background(), process.Command{Binary: "definitely-not-installed-yt-dlp"})
	if !errors.Is(err, process.ErrBinaryNotFound) {
		t.Fatalf("expected ErrBinaryNotFound, got %v", err)
	}
	if result.ExitCode != -1 {
		t.Fatalf("expected exit code -1, got %d", result.ExitCode)
	}
}

func TestStderrTail(t *testing.T) {
	result, err := process.Run(context.Background(), process.Command{
		Binary: "sh",
		Args:   []string{"-c", "for i in $(seq 1 30); do echo line$i >&2; done; exit 3"},
	})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	tail := result.StderrTail()
	if !strings.HasPrefix(tail, "line11\n") || !strings.HasSuffix(tail, "line30") {
		t.Fatalf("unexpected tail %q", tail)
	}
	if !strings.Contains(err.Error(), "exit code 3") {
		t.Fatalf("expected exit code in error, got %v", err)
	}
}

func TestRunDir(t *testing.T) {
	dir := t.TempDir()
	result, err := process.Run(context.Background(), process.Command{Binary: "pwd", Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(string(result.Stdout)); !strings.HasSuffix(got, filepath.Base(dir)) {
		t.Fatalf("expected to run in %s, got %q", dir, got)
	}
}

func TestCommandString(t *testing.T) {
	cmd := process.Command{Binary: "yt-dlp", Args: []string{"--skip-download", "URL"}}
	if got := cmd.String(); got != "yt-dlp --skip-download URL" {
		t.Fatalf("unexpected String %q", got)
	}
	if got := (process.Command{Binary: "whisper"}).String(); got != "whisper" {
		t.Fatalf("unexpected String %q", got)
	}
}

func TestExecutorFunc(t *testing.T) {
	var seen process.Command
	exec := process.ExecutorFunc(func(ctx context.Context, cmd process.Command) (*process.Result, error) {
		seen = cmd
		return &process.Result{Stdout: []byte("ok")}, nil
	})
	res, err := exec.Run(context.Background(), process.Command{Binary: "whisper"})
	if err != nil || string(res.Stdout) != "ok" || seen.Binary != "whisper" {
		t.Fatalf("unexpected result %v %v %+v", res, err, seen)
	}
}
