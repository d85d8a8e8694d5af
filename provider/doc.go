// Package provider defines the runtime value-source contract and the
// ordered registry that merges results across sources.
//
// A Provider is any pluggable source of key-value configuration: a remote
// secrets API, a local .env file, or anything else implementing the two
// fetch operations. Providers are registered into a Registry in priority
// order: the first registered provider wins on conflicts.
//
//	reg := provider.NewRegistry()
//	reg.Register(remote)                // highest priority
//	reg.Register(dotenv.NewFileProvider(".env.local"))
//
//	val, ok, err := reg.Get(ctx, "DATABASE_URL")
//
// Registry queries take a point-in-time snapshot of the provider list, so
// a slow provider never blocks registration or other lookups, and a
// concurrent Register/Clear never leaves a query observing a
// half-mutated list.
package provider
