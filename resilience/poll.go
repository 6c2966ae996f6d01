package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPollTimeout is returned when a poll loop reaches its attempt or time
// ceiling without a terminal result.
var ErrPollTimeout = errors.New("poll ceiling reached")

// PollConfig configures a fixed-interval poll loop.
type PollConfig struct {
	// Interval is the delay between consecutive checks.
	Interval time.Duration
	// MaxAttempts caps the number of checks. Zero means unbounded.
	MaxAttempts int
	// Timeout caps the total time spent polling. Zero means unbounded.
	Timeout time.Duration
	// OnPending is called after each non-terminal check.
	OnPending func(attempt int)
}

// Poll calls check until it reports done or fails. The first check runs
// immediately and later ones follow Interval apart. It returns the terminal
// value and the number of checks made.
//
// Errors from check are returned as-is. Reaching a ceiling returns an error
// wrapping ErrPollTimeout; cancellation of ctx returns ctx.Err().
func Poll[T any](ctx context.Context, cfg PollConfig, check func(ctx context.Context, attempt int) (T, bool, error)) (T, int, error) {
	var zero T

	pollCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeoutCause(ctx, cfg.Timeout, ErrPollTimeout)
		defer cancel()
	}
	timedOut := func(attempts int) (T, int, error) {
		return zero, attempts, fmt.Errorf("%w after %d attempts", ErrPollTimeout, attempts)
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, attempt - 1, err
		}
		if pollCtx.Err() != nil {
			return timedOut(attempt - 1)
		}

		value, done, err := check(pollCtx, attempt)
		if err != nil {
			if ctx.Err() == nil && errors.Is(context.Cause(pollCtx), ErrPollTimeout) {
				return timedOut(attempt)
			}
			return zero, attempt, err
		}
		if done {
			return value, attempt, nil
		}

		if cfg.OnPending != nil {
			cfg.OnPending(attempt)
		}
		if cfg.MaxAttempts > 0 && attempt >= cfg.MaxAttempts {
			return timedOut(attempt)
		}

		if err := Sleep(pollCtx, cfg.Interval); err != nil {
			if ctx.Err() != nil {
				return zero, attempt, ctx.Err()
			}
			return timedOut(attempt)
		}
	}
}
