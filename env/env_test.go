package env

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kbukum/envkit/provider"
)

// stubProvider is a fixed in-memory provider for tests.
type stubProvider struct {
	values map[string]string
	err    error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Get(_ context.Context, key string) (string, bool, error) {
	if s.err != nil {
		return "", false, s.err
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *stubProvider) GetAll(_ context.Context) (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.values, nil
}

func TestGetPrecedence(t *testing.T) {
	ctx := context.Background()
	const key = "ENVKIT_TEST_PRECEDENCE"

	t.Setenv(key, "from-os")
	RegisterCompiled(map[string]string{key: "from-compiled"})
	t.Cleanup(resetCompiled)

	e := New()
	e.Registry().Register(&stubProvider{values: map[string]string{key: "from-provider"}})

	t.Run("provider wins", func(t *testing.T) {
		val, ok, err := e.Get(ctx, key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || val != "from-provider" {
			t.Errorf("expected from-provider, got (%s, %v)", val, ok)
		}
	})

	t.Run("compiled beats OS env", func(t *testing.T) {
		e.Registry().Clear()
		val, ok, err := e.Get(ctx, key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || val != "from-compiled" {
			t.Errorf("expected from-compiled, got (%s, %v)", val, ok)
		}
	})

	t.Run("OS env is the fallback", func(t *testing.T) {
		resetCompiled()
		val, ok, err := e.Get(ctx, key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || val != "from-os" {
			t.Errorf("expected from-os, got (%s, %v)", val, ok)
		}
	})

	t.Run("absent everywhere", func(t *testing.T) {
		val, ok, err := e.Get(ctx, "ENVKIT_TEST_NOWHERE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || val != "" {
			t.Errorf("expected absent, got (%s, %v)", val, ok)
		}
	})
}

func TestGetProviderErrorDoesNotFallThrough(t *testing.T) {
	const key = "ENVKIT_TEST_FAILFAST"
	t.Setenv(key, "from-os")

	boom := errors.New("boom")
	e := New()
	e.Registry().Register(&stubProvider{err: boom})

	_, _, err := e.Get(context.Background(), key)
	if !errors.Is(err, boom) {
		t.Fatalf("expected provider error to surface, got %v", err)
	}
}

func TestGetAllMergesLayers(t *testing.T) {
	t.Setenv("ENVKIT_TEST_OS_ONLY", "os")
	t.Setenv("ENVKIT_TEST_SHARED", "os")

	RegisterCompiled(map[string]string{
		"ENVKIT_TEST_COMPILED_ONLY": "compiled",
		"ENVKIT_TEST_SHARED":        "compiled",
	})
	t.Cleanup(resetCompiled)

	e := New()
	e.Registry().Register(&stubProvider{values: map[string]string{
		"ENVKIT_TEST_PROVIDER_ONLY": "provider",
		"ENVKIT_TEST_SHARED":        "provider",
	}})

	merged, err := e.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"ENVKIT_TEST_OS_ONLY":       "os",
		"ENVKIT_TEST_COMPILED_ONLY": "compiled",
		"ENVKIT_TEST_PROVIDER_ONLY": "provider",
		"ENVKIT_TEST_SHARED":        "provider",
	}
	for k, v := range want {
		if merged[k] != v {
			t.Errorf("key %s: expected %q, got %q", k, v, merged[k])
		}
	}
}

func TestRequire(t *testing.T) {
	ctx := context.Background()
	e := New()

	t.Run("present", func(t *testing.T) {
		t.Setenv("ENVKIT_TEST_REQUIRED", "here")
		val, err := e.Require(ctx, "ENVKIT_TEST_REQUIRED")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if val != "here" {
			t.Errorf("expected 'here', got %q", val)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := e.Require(ctx, "ENVKIT_TEST_DEFINITELY_MISSING")
		var missing *MissingKeyError
		if !errors.As(err, &missing) {
			t.Fatalf("expected *MissingKeyError, got %v", err)
		}
		if missing.Key != "ENVKIT_TEST_DEFINITELY_MISSING" {
			t.Errorf("expected key in error, got %q", missing.Key)
		}
	})
}

func TestTypedGetters(t *testing.T) {
	ctx := context.Background()
	e := New()

	t.Setenv("ENVKIT_TEST_BOOL", "true")
	t.Setenv("ENVKIT_TEST_INT", "42")
	t.Setenv("ENVKIT_TEST_DURATION", "90s")
	t.Setenv("ENVKIT_TEST_GARBAGE", "not-a-number")

	if got := e.Bool(ctx, "ENVKIT_TEST_BOOL", false); !got {
		t.Error("expected true")
	}
	if got := e.Bool(ctx, "ENVKIT_TEST_MISSING", true); !got {
		t.Error("expected default true for missing key")
	}
	if got := e.Int(ctx, "ENVKIT_TEST_INT", 0); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := e.Int(ctx, "ENVKIT_TEST_GARBAGE", 7); got != 7 {
		t.Errorf("expected default 7 for unparsable value, got %d", got)
	}
	if got := e.Duration(ctx, "ENVKIT_TEST_DURATION", 0); got != 90*time.Second {
		t.Errorf("expected 90s, got %v", got)
	}
	if got := e.Duration(ctx, "ENVKIT_TEST_MISSING", time.Minute); got != time.Minute {
		t.Errorf("expected default 1m, got %v", got)
	}
}

func TestRegisterCompiledMerges(t *testing.T) {
	t.Cleanup(resetCompiled)

	RegisterCompiled(map[string]string{"A": "1", "B": "2"})
	RegisterCompiled(map[string]string{"B": "override", "C": "3"})

	if v, _ := CompiledValue("A"); v != "1" {
		t.Errorf("expected A=1, got %q", v)
	}
	if v, _ := CompiledValue("B"); v != "override" {
		t.Errorf("expected later registration to win, got %q", v)
	}
	if v, _ := CompiledValue("C"); v != "3" {
		t.Errorf("expected C=3, got %q", v)
	}

	all := CompiledValues()
	all["A"] = "mutated"
	if v, _ := CompiledValue("A"); v != "1" {
		t.Error("expected CompiledValues to return a copy")
	}
}

func TestDefaultEnv(t *testing.T) {
	if Default() != Default() {
		t.Error("expected Default to return the same instance")
	}
	if Default().Registry() != provider.Default() {
		t.Error("expected default Env to wrap the default registry")
	}
}
