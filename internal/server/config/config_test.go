package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.HTTP.Addr != DefaultHTTPAddr {
		t.Errorf("http addr = %q, want %q", cfg.Server.HTTP.Addr, DefaultHTTPAddr)
	}
	if !cfg.Server.RateLimit.Enabled {
		t.Error("rate limiting disabled by default")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults = %q/%q, want info/json", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestVerify(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	valid := func() *ServerConfig {
		cfg := Default()
		cfg.Storage.DataDir = dataDir
		return cfg
	}

	if err := Verify(valid()); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ServerConfig)
	}{
		{"missing http addr", func(c *ServerConfig) { c.Server.HTTP.Addr = "" }},
		{"missing data dir", func(c *ServerConfig) { c.Storage.DataDir = "" }},
		{"zero rps", func(c *ServerConfig) { c.Server.RateLimit.RPS = 0 }},
		{"zero burst", func(c *ServerConfig) { c.Server.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := Verify(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestVerifyDisabledRateLimitSkipsChecks(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.Server.RateLimit.Enabled = false
	cfg.Server.RateLimit.RPS = 0
	cfg.Server.RateLimit.Burst = 0

	if err := Verify(cfg); err != nil {
		t.Errorf("disabled rate limit should skip threshold checks: %v", err)
	}
}

func TestVerifyCreatesDataDir(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "nested", "data")

	if err := Verify(cfg); err != nil {
		t.Fatalf("verify: %v", err)
	}
}
