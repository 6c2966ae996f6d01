package provider

import "context"

// Provider is the base interface all providers must implement.
type Provider interface {
	// Name returns the provider's unique name.
	Name() string
	// IsAvailable checks if the provider is ready to handle requests.
	IsAvailable(ctx context.Context) bool
}

// Factory builds a provider. Configuration is captured by the closure.
type Factory[T Provider] func() (T, error)

// Initializable is implemented by providers that need setup before their
// first request.
type Initializable interface {
	Init(ctx context.Context) error
}

// Closeable is implemented by providers that hold resources such as a
// loaded model or a sidecar process.
type Closeable interface {
	Close(ctx context.Context) error
}
