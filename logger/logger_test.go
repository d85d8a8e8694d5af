package logger

import (
	"strings"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid json", Config{Level: "debug", Format: "json"}, ""},
		{"valid console", Config{Level: "info", Format: "console"}, ""},
		{"bad level", Config{Level: "loud", Format: "json"}, "logging.level"},
		{"bad format", Config{Level: "info", Format: "xml"}, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWithComponent(t *testing.T) {
	log := Nop().WithComponent("registry")
	if log == nil {
		t.Fatal("expected non-nil logger")
	}
	// Must not panic on a nop logger.
	log.Debug("noop", map[string]interface{}{"k": "v"})
	log.Error("noop")
}
