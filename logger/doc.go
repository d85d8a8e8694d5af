// Package logger provides structured logging for envkit components.
//
// It wraps zerolog with a small configuration surface and component
// tagging. Library packages accept a *logger.Logger and stay silent by
// default; applications opt in by passing a configured instance.
//
//	log := logger.NewDefault("myapp")
//	reg := provider.NewRegistry(provider.WithLogger(log))
package logger
