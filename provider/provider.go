package provider

import "context"

// Provider is a runtime source of key-value configuration.
//
// Implementations must be safe for concurrent use; the Registry does not
// serialize calls into a single provider. Implementations must not log
// secret values.
type Provider interface {
	// Name returns the provider's name for logging and diagnostics.
	Name() string

	// Get fetches a single value. The second return reports whether the
	// key is present; an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// GetAll fetches the provider's full key-value mapping.
	GetAll(ctx context.Context) (map[string]string, error)
}
