package provider

import (
	"context"
	"time"

	"github.com/kbukum/envkit/logger"
)

// WithLogging decorates p so every fetch is logged with provider name,
// duration, and outcome. Keys are logged, values never are.
func WithLogging(p Provider, log *logger.Logger) Provider {
	return &loggingProvider{inner: p, log: log.WithComponent("provider")}
}

type loggingProvider struct {
	inner Provider
	log   *logger.Logger
}

func (l *loggingProvider) Name() string { return l.inner.Name() }

func (l *loggingProvider) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	val, ok, err := l.inner.Get(ctx, key)

	fields := map[string]interface{}{
		"provider": l.inner.Name(),
		"key":      key,
		"duration": time.Since(start).String(),
	}
	if err != nil {
		l.log.WithError(err).Error("provider get failed", fields)
	} else {
		fields["found"] = ok
		l.log.Debug("provider get", fields)
	}

	return val, ok, err
}

func (l *loggingProvider) GetAll(ctx context.Context) (map[string]string, error) {
	start := time.Now()
	values, err := l.inner.GetAll(ctx)

	fields := map[string]interface{}{
		"provider": l.inner.Name(),
		"duration": time.Since(start).String(),
	}
	if err != nil {
		l.log.WithError(err).Error("provider get-all failed", fields)
	} else {
		fields["count"] = len(values)
		l.log.Debug("provider get-all", fields)
	}

	return values, err
}
