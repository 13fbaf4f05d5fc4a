// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, overrides and defaults

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
server:
  base_url: "https://api.atrium.example"
  request_timeout: "10s"

keyring:
  path: "./session.db"

auth:
  mode: "dev"
  jwt_secret: "test-secret-for-local-development"

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.BaseURL != "https://api.atrium.example" {
		t.Errorf("Server.BaseURL = %q, want %q", cfg.Server.BaseURL, "https://api.atrium.example")
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want %v", cfg.Server.RequestTimeout, 10*time.Second)
	}
	if cfg.Keyring.Path != "./session.db" {
		t.Errorf("Keyring.Path = %q, want %q", cfg.Keyring.Path, "./session.db")
	}
	if cfg.Auth.Mode != "dev" {
		t.Errorf("Auth.Mode = %q, want %q", cfg.Auth.Mode, "dev")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_Defaults(t *testing.T) {
	configPath := writeConfig(t, `
keyring:
  path: "./session.db"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.BaseURL != DefaultBaseURL {
		t.Errorf("Server.BaseURL = %q, want default %q", cfg.Server.BaseURL, DefaultBaseURL)
	}
	if cfg.Server.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("Server.RequestTimeout = %v, want default %v", cfg.Server.RequestTimeout, DefaultRequestTimeout)
	}
	if cfg.Auth.Mode != "remote" {
		t.Errorf("Auth.Mode = %q, want default %q", cfg.Auth.Mode, "remote")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_ATRIUM_SECRET", "secret-from-environment")

	configPath := writeConfig(t, `
auth:
  mode: "dev"
  jwt_secret: "${TEST_ATRIUM_SECRET}"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.JWTSecret != "secret-from-environment" {
		t.Errorf("Auth.JWTSecret = %q, want %q", cfg.Auth.JWTSecret, "secret-from-environment")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ATRIUM_API_URL", "http://override.local:9000")
	t.Setenv("ATRIUM_KEYRING", "/tmp/override.db")

	configPath := writeConfig(t, `
server:
  base_url: "http://file.local:8000"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.BaseURL != "http://override.local:9000" {
		t.Errorf("Server.BaseURL = %q, want env override", cfg.Server.BaseURL)
	}
	if cfg.Keyring.Path != "/tmp/override.db" {
		t.Errorf("Keyring.Path = %q, want env override", cfg.Keyring.Path)
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	configPath := writeConfig(t, `
server:
  base_url: "not-a-url"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() should have failed for non-http base_url")
	}
	if !strings.Contains(err.Error(), "base_url") {
		t.Errorf("error %q should mention base_url", err)
	}
}

func TestLoad_InvalidAuthMode(t *testing.T) {
	configPath := writeConfig(t, `
auth:
  mode: "ldap"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() should have failed for unknown auth mode")
	}
}

func TestLoad_DevModeRequiresSecret(t *testing.T) {
	configPath := writeConfig(t, `
auth:
  mode: "dev"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() should have failed for dev mode without jwt_secret")
	}
	if !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("error %q should mention jwt_secret", err)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	configPath := writeConfig(t, `
server:
  request_timeout: "soon"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() should have failed for invalid duration")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	// Point the config env var at a directory guaranteed to have no file
	tmpDir := t.TempDir()
	t.Setenv("ATRIUM_CONFIG", filepath.Join(tmpDir, "missing.yaml"))

	_, err := Load("")
	if err == nil {
		t.Fatal("Load() should surface a read error for an explicit missing path")
	}
}
