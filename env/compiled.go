package env

import "sync"

// Compiled values are embedded into the binary by the build-time .env
// generator. They are registered once during init and treated as a
// static, already-resolved mapping afterwards.

var (
	compiledMu sync.RWMutex
	compiled   map[string]string
)

// RegisterCompiled merges values into the compiled value set. Intended
// to be called from generated code in an init function; later
// registrations override earlier ones on key conflict.
func RegisterCompiled(values map[string]string) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if compiled == nil {
		compiled = make(map[string]string, len(values))
	}
	for k, v := range values {
		compiled[k] = v
	}
}

// CompiledValue returns the compiled value for key.
func CompiledValue(key string) (string, bool) {
	compiledMu.RLock()
	defer compiledMu.RUnlock()
	v, ok := compiled[key]
	return v, ok
}

// CompiledValues returns a copy of all compiled values.
func CompiledValues() map[string]string {
	compiledMu.RLock()
	defer compiledMu.RUnlock()

	out := make(map[string]string, len(compiled))
	for k, v := range compiled {
		out[k] = v
	}
	return out
}

// resetCompiled clears the compiled value set. Only used by tests.
func resetCompiled() {
	compiledMu.Lock()
	compiled = nil
	compiledMu.Unlock()
}
