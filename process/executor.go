package process

import "context"

// Executor runs commands. Components that shell out take an Executor so
// tests can substitute canned results.
type Executor interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, cmd Command) (*Result, error)

// Run calls f.
func (f ExecutorFunc) Run(ctx context.Context, cmd Command) (*Result, error) {
	return f(ctx, cmd)
}

// Local runs commands on the host through Run.
var Local Executor = ExecutorFunc(Run)
