package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// ErrBinaryNotFound is returned when the executable is not on PATH.
var ErrBinaryNotFound = errors.New("process: binary not found")

const defaultGracePeriod = 5 * time.Second

// Run starts cmd in its own process group and waits for it, capturing
// stdout and stderr. Cancelling ctx sends SIGTERM to the group and SIGKILL
// once the grace period is over, so helpers such as the ffmpeg that yt-dlp
// spawns go down too.
func Run(ctx context.Context, cmd Command) (*Result, error) {
	if cmd.Binary == "" {
		return nil, errors.New("process: binary is required")
	}
	if _, err := exec.LookPath(cmd.Binary); err != nil {
		return &Result{ExitCode: -1}, fmt.Errorf("%w: %s: %w", ErrBinaryNotFound, cmd.Binary, err)
	}

	grace := cmd.GracePeriod
	if grace <= 0 {
		grace = defaultGracePeriod
	}

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, cmd.Binary, cmd.Args...) //nolint:gosec // runs configured tools only
	c.Dir = cmd.Dir
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		if c.Process == nil {
			return nil
		}
		return syscall.Kill(-c.Process.Pid, syscall.SIGTERM)
	}
	c.WaitDelay = grace

	start := time.Now()
	runErr := c.Run()
	res := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: c.ProcessState.ExitCode(),
		Duration: time.Since(start),
	}
	switch {
	case runErr == nil:
		return res, nil
	case ctx.Err() != nil:
		return res, fmt.Errorf("process: %s stopped: %w", cmd.Binary, ctx.Err())
	default:
		return res, fmt.Errorf("process: %s exit code %d: %w", cmd.Binary, res.ExitCode, runErr)
	}
}
