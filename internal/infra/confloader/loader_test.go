package confloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/t1amat9409/roomstore-go/internal/server/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  http:
    addr: "0.0.0.0:9090"
log:
  level: debug
`)

	cfg := config.Default()
	loader := NewLoader(WithConfigFile(path))
	if err := loader.Load(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.HTTP.Addr != "0.0.0.0:9090" {
		t.Errorf("http addr = %q, want 0.0.0.0:9090", cfg.Server.HTTP.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Log.Format != config.DefaultLogFormat {
		t.Errorf("log format = %q, want default %q", cfg.Log.Format, config.DefaultLogFormat)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
log:
  level: warn
`)
	t.Setenv("ROOMSTORE_LOG_LEVEL", "error")

	cfg := config.Default()
	loader := NewLoader(WithConfigFile(path))
	if err := loader.Load(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Log.Level != "error" {
		t.Errorf("log level = %q, want env override error", cfg.Log.Level)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	loader := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "absent.yaml")))
	cfg := config.Default()
	if err := loader.Load(cfg); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestCustomEnvPrefix(t *testing.T) {
	t.Setenv("RS_LOG_FORMAT", "text")

	cfg := config.Default()
	loader := NewLoader(WithEnvPrefix("RS_"))
	if err := loader.Load(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Log.Format != "text" {
		t.Errorf("log format = %q, want text", cfg.Log.Format)
	}
}

func TestGetString(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  data_dir: /tmp/roomstore
`)

	loader := NewLoader(WithConfigFile(path))
	if err := loader.Load(config.Default()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := loader.GetString("storage.data_dir"); got != "/tmp/roomstore" {
		t.Errorf("GetString = %q, want /tmp/roomstore", got)
	}
}
