package env

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kbukum/envkit/logger"
	"github.com/kbukum/envkit/provider"
)

// Env resolves values across providers, compiled values, and the OS
// environment.
type Env struct {
	registry *provider.Registry
	log      *logger.Logger
}

// Option configures an Env.
type Option func(*Env)

// WithRegistry uses an existing provider registry instead of creating
// a fresh one.
func WithRegistry(r *provider.Registry) Option {
	return func(e *Env) { e.registry = r }
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(e *Env) { e.log = log }
}

// New creates an Env with its own empty provider registry unless one is
// supplied.
func New(opts ...Option) *Env {
	e := &Env{log: logger.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = provider.NewRegistry()
	}
	e.log = e.log.WithComponent("env")
	return e
}

// Registry returns the provider registry backing this Env.
func (e *Env) Registry() *provider.Registry {
	return e.registry
}

// Get resolves key against providers first, then compiled values, then
// the OS environment. An absent key is ("", false, nil); a provider
// error aborts the lookup without falling through to lower layers.
func (e *Env) Get(ctx context.Context, key string) (string, bool, error) {
	if e.registry.HasProviders() {
		val, ok, err := e.registry.Get(ctx, key)
		if err != nil {
			return "", false, err
		}
		if ok {
			return val, true, nil
		}
	}

	if val, ok := CompiledValue(key); ok {
		return val, true, nil
	}

	if val, ok := os.LookupEnv(key); ok {
		return val, true, nil
	}

	return "", false, nil
}

// GetAll merges all three layers into one map: the OS environment at the
// bottom, compiled values over it, and provider results on top (with
// provider priority resolved by the registry).
func (e *Env) GetAll(ctx context.Context) (map[string]string, error) {
	merged := make(map[string]string)

	for _, kv := range os.Environ() {
		k, v, found := strings.Cut(kv, "=")
		if found {
			merged[k] = v
		}
	}

	for k, v := range CompiledValues() {
		merged[k] = v
	}

	if e.registry.HasProviders() {
		fromProviders, err := e.registry.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for k, v := range fromProviders {
			merged[k] = v
		}
	}

	e.log.Debug("environment resolved", map[string]interface{}{
		"keys":      len(merged),
		"providers": e.registry.Len(),
	})
	return merged, nil
}

// Require resolves key like Get but treats absence as an error.
func (e *Env) Require(ctx context.Context, key string) (string, error) {
	val, ok, err := e.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &MissingKeyError{Key: key}
	}
	return val, nil
}

// Bool resolves key as a boolean, returning def when the key is absent,
// a provider fails, or the value does not parse.
func (e *Env) Bool(ctx context.Context, key string, def bool) bool {
	val, ok, err := e.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return parsed
}

// Int resolves key as an integer, returning def on absence or parse
// failure.
func (e *Env) Int(ctx context.Context, key string, def int) int {
	val, ok, err := e.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}

// Duration resolves key as a time.Duration, returning def on absence or
// parse failure.
func (e *Env) Duration(ctx context.Context, key string, def time.Duration) time.Duration {
	val, ok, err := e.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return def
	}
	return parsed
}

// MissingKeyError reports a required key absent from every layer.
type MissingKeyError struct {
	Key string
}

// Error implements the error interface.
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("env: required key %s not found in any source", e.Key)
}

// Default returns the process-wide Env, constructed lazily over the
// default provider registry. Prefer explicit instances in application
// composition; this is the convenience entry point.
func Default() *Env {
	defaultOnce.Do(func() {
		defaultEnv = New(WithRegistry(provider.Default()))
	})
	return defaultEnv
}

var (
	defaultOnce sync.Once
	defaultEnv  *Env
)

// Package-level convenience functions delegate to the default Env.

// Get resolves key via the default Env.
func Get(ctx context.Context, key string) (string, bool, error) {
	return Default().Get(ctx, key)
}

// GetAll merges all layers via the default Env.
func GetAll(ctx context.Context) (map[string]string, error) {
	return Default().GetAll(ctx)
}

// Require resolves key via the default Env, erroring on absence.
func Require(ctx context.Context, key string) (string, error) {
	return Default().Require(ctx, key)
}
