// Package env resolves configuration values across three layered
// sources: registered runtime providers (remote secret stores, .env
// files), values compiled into the binary at build time, and the OS
// environment.
//
// Resolution order is fixed: providers win over compiled values, and
// compiled values win over the OS environment. The OS environment is
// always available as the lowest-priority fallback.
//
//	e := env.New()
//	e.Registry().Register(remoteProvider)
//
//	dsn, err := e.Require(ctx, "DATABASE_URL")
//	debug := e.Bool(ctx, "DEBUG", false)
//
// Code generated from .env files at build time registers its key-value
// pairs via RegisterCompiled in an init function.
package env
