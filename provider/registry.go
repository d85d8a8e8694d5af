package provider

import (
	"context"
	"sync"

	"github.com/kbukum/envkit/logger"
)

// Registry holds an ordered list of providers. Insertion order is
// priority order: the first registered provider wins.
//
// Mutations (Register, Clear) are mutually exclusive with each other and
// with snapshot-taking. Queries iterate over a snapshot, so provider I/O
// happens outside the lock and mutations mid-query never affect a lookup
// already in flight.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
	log       *logger.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a logger to the registry.
func WithLogger(log *logger.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{log: logger.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithComponent("provider.registry")
	return r
}

// Register appends p at the lowest current priority. Re-registering a
// provider of the same concrete type is permitted; typed lookup resolves
// the ambiguity as first match wins.
func (r *Registry) Register(p Provider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	r.providers = append(r.providers, p)
	n := len(r.providers)
	r.mu.Unlock()

	r.log.Debug("provider registered", map[string]interface{}{
		"provider": p.Name(),
		"priority": n,
	})
}

// Clear removes all providers. Queries that already captured a snapshot
// are unaffected.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.providers = nil
	r.mu.Unlock()

	r.log.Debug("providers cleared")
}

// HasProviders reports whether any provider is registered.
func (r *Registry) HasProviders() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers) > 0
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// Providers returns a snapshot copy of the provider list in priority order.
func (r *Registry) Providers() []Provider {
	return r.snapshot()
}

// Get queries providers in priority order and returns the first value
// found, short-circuiting on the first hit. A provider error aborts the
// lookup and is returned as-is; later providers are not consulted.
func (r *Registry) Get(ctx context.Context, key string) (string, bool, error) {
	for _, p := range r.snapshot() {
		val, ok, err := p.Get(ctx, key)
		if err != nil {
			return "", false, err
		}
		if ok {
			return val, true, nil
		}
	}
	return "", false, nil
}

// GetAll merges the full mappings of all providers. Providers are folded
// lowest priority first, so on key conflict the earliest-registered
// provider's value survives. A provider error aborts the merge.
func (r *Registry) GetAll(ctx context.Context) (map[string]string, error) {
	snap := r.snapshot()
	merged := make(map[string]string)
	for i := len(snap) - 1; i >= 0; i-- {
		values, err := snap[i].GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for k, v := range values {
			merged[k] = v
		}
	}
	return merged, nil
}

// snapshot returns a point-in-time copy of the provider list.
func (r *Registry) snapshot() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := make([]Provider, len(r.providers))
	copy(snap, r.providers)
	return snap
}

// ByType returns the first registered provider whose concrete type is T.
// It bypasses merge order for direct access to a specific provider, e.g.
// to call ClearCache on a remote provider.
func ByType[T Provider](r *Registry) (T, bool) {
	for _, p := range r.snapshot() {
		if typed, ok := p.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// Default returns the process-wide registry, constructed lazily on first
// use. Prefer explicit Registry instances; this exists for applications
// that want a single shared composition point.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)
