package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/kbukum/envkit/logger"
)

func TestWithLogging(t *testing.T) {
	inner := &staticProvider{name: "inner", values: map[string]string{"K": "v"}}
	p := WithLogging(inner, logger.Nop())

	if p.Name() != "inner" {
		t.Errorf("expected wrapped name, got %s", p.Name())
	}

	val, ok, err := p.Get(context.Background(), "K")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || val != "v" {
		t.Errorf("expected (v, true), got (%s, %v)", val, ok)
	}

	all, err := p.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 value, got %d", len(all))
	}
}

func TestWithLoggingPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	p := WithLogging(&staticProvider{name: "inner", err: boom}, logger.Nop())

	if _, _, err := p.Get(context.Background(), "K"); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if _, err := p.GetAll(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
