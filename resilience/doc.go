// Package resilience provides the waiting loops used around remote calls.
//
//   - Retry: retries failed operations with exponential backoff, used while
//     waiting for a sidecar to become healthy.
//   - Poll: checks a remote job at a fixed interval until it reaches a
//     terminal state, bounded by an optional attempt and time ceiling.
//
// Polling a job:
//
//	result, polls, err := resilience.Poll(ctx, resilience.PollConfig{
//	    Interval:    5 * time.Second,
//	    MaxAttempts: 0,
//	    Timeout:     3 * time.Hour,
//	}, func(ctx context.Context, attempt int) (Result, bool, error) {
//	    return client.Check(ctx, id)
//	})
//
// Both honour context cancellation during their delays.
package resilience
