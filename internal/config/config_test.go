package config

import (
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Columns != DefaultColumns {
		t.Errorf("expected columns %d, got %d", DefaultColumns, cfg.Columns)
	}
	if cfg.Bounces != DefaultBounces {
		t.Errorf("expected bounces %d, got %d", DefaultBounces, cfg.Bounces)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.Mute {
		t.Error("expected sound on by default")
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--data", "/tmp/bz", "--seed", "99", "--columns", "9", "--bounces", "6", "--mute"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir != "/tmp/bz" {
		t.Errorf("expected data dir '/tmp/bz', got '%s'", cfg.DataDir)
	}
	if cfg.Seed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.Seed)
	}
	if cfg.Columns != 9 {
		t.Errorf("expected columns 9, got %d", cfg.Columns)
	}
	if cfg.Bounces != 6 {
		t.Errorf("expected bounces 6, got %d", cfg.Bounces)
	}
	if !cfg.Mute {
		t.Error("expected mute to be true")
	}
}

func TestParseArgs_InvalidColumnsTooLow(t *testing.T) {
	if _, err := ParseArgs([]string{"--columns", "1"}); err == nil {
		t.Error("expected error for 1 column")
	}
}

func TestParseArgs_InvalidColumnsTooHigh(t *testing.T) {
	if _, err := ParseArgs([]string{"--columns", "13"}); err == nil {
		t.Error("expected error for 13 columns")
	}
}

func TestParseArgs_InvalidBounces(t *testing.T) {
	if _, err := ParseArgs([]string{"--bounces", "0"}); err == nil {
		t.Error("expected error for 0 bounces")
	}
	if _, err := ParseArgs([]string{"--bounces", "17"}); err == nil {
		t.Error("expected error for 17 bounces")
	}
}

func TestParseArgs_ValidBoundaries(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"minimum columns", []string{"--columns", "2"}},
		{"maximum columns", []string{"--columns", "12"}},
		{"minimum bounces", []string{"--bounces", "1"}},
		{"maximum bounces", []string{"--bounces", "16"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveDataDir_Explicit(t *testing.T) {
	cfg := &Config{DataDir: "/some/dir"}
	if got := cfg.ResolveDataDir(); got != "/some/dir" {
		t.Errorf("expected '/some/dir', got '%s'", got)
	}
}

func TestResolveDataDir_Default(t *testing.T) {
	cfg := &Config{}
	if got := cfg.ResolveDataDir(); got == "" {
		t.Error("expected a non-empty default data dir")
	}
}
