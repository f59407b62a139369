package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_key: abc123\ncache_file: /tmp/parkscout-test-cache.json\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv(EnvAPIKey, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "abc123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "abc123")
	}
	if cfg.CacheFile != "/tmp/parkscout-test-cache.json" {
		t.Errorf("CacheFile = %q, want %q", cfg.CacheFile, "/tmp/parkscout-test-cache.json")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: from-file\n"), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv(EnvAPIKey, "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want env value to win", cfg.APIKey)
	}
}

func TestExplicitMissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestDefaultsApplied(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: k\n"), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CacheFile == "" {
		t.Error("CacheFile should default to a non-empty path")
	}
}
