package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotRegistered is returned for names with no registered factory.
var ErrNotRegistered = errors.New("provider not registered")

// Registry manages named provider factories and the instances built from
// them. Each name is built at most once.
type Registry[T Provider] struct {
	mu        sync.Mutex
	factories map[string]Factory[T]
	instances map[string]T
}

// NewRegistry creates a new empty Registry.
func NewRegistry[T Provider]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
		instances: make(map[string]T),
	}
}

// RegisterFactory registers a named factory, replacing any earlier one and
// dropping its cached instance.
func (r *Registry[T]) RegisterFactory(name string, factory Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
	delete(r.instances, name)
}

// Has reports whether a factory is registered under name.
func (r *Registry[T]) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.factories[name]
	return ok
}

// Get returns the instance for name, building and caching it on first use.
// Initializable providers are initialized before being cached.
func (r *Registry[T]) Get(ctx context.Context, name string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inst, ok := r.instances[name]; ok {
		return inst, nil
	}

	var zero T
	factory, ok := r.factories[name]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	inst, err := factory()
	if err != nil {
		return zero, fmt.Errorf("create provider %q: %w", name, err)
	}
	if init, ok := any(inst).(Initializable); ok {
		if err := init.Init(ctx); err != nil {
			return zero, fmt.Errorf("init provider %q: %w", name, err)
		}
	}
	r.instances[name] = inst
	return inst, nil
}

// List returns sorted names of all registered factories.
func (r *Registry[T]) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every built instance that implements Closeable and forgets
// all instances.
func (r *Registry[T]) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name, inst := range r.instances {
		if c, ok := any(inst).(Closeable); ok {
			if err := c.Close(ctx); err != nil {
				errs = append(errs, fmt.Errorf("close provider %q: %w", name, err))
			}
		}
	}
	r.instances = make(map[string]T)
	return errors.Join(errs...)
}
