// ABOUTME: Configuration loading and parsing for the Atrium admin console
// ABOUTME: Supports YAML files with environment variable expansion and env overrides

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete console configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Keyring KeyringConfig `yaml:"keyring"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds backend endpoint configuration
type ServerConfig struct {
	// BaseURL is the backend root; the /api prefix is appended by the client
	BaseURL string `yaml:"base_url"`

	RequestTimeout    time.Duration `yaml:"-"`
	RequestTimeoutRaw string        `yaml:"request_timeout"`
}

// KeyringConfig holds durable session storage configuration
type KeyringConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig holds authentication configuration.
// Mode selects the authenticator: "remote" delegates credential checks to
// the backend; "dev" uses the local fixture credential and mints tokens
// with the configured secret.
type AuthConfig struct {
	Mode      string `yaml:"mode"`
	JWTSecret string `yaml:"jwt_secret"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	// DefaultBaseURL is the local development backend endpoint
	DefaultBaseURL = "http://localhost:8000"

	// DefaultRequestTimeout bounds a single backend request
	DefaultRequestTimeout = 30 * time.Second
)

// Load reads configuration from the given path, or from the default
// locations when path is empty: $ATRIUM_CONFIG, ./config.yaml,
// ~/.config/atrium/console.yaml. A missing config file is not an error;
// defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = findConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		// Expand environment variables in the raw YAML content
		expanded := expandEnvVars(string(data))

		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := parseDurations(cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// findConfigPath returns the first existing config file from the default
// locations, or empty string when none exists.
func findConfigPath() string {
	if p := os.Getenv("ATRIUM_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "atrium", "console.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyEnvOverrides lets individual environment variables override file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ATRIUM_API_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("ATRIUM_KEYRING"); v != "" {
		cfg.Keyring.Path = v
	}
	if v := os.Getenv("ATRIUM_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
}

// applyDefaults fills in unset fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = DefaultBaseURL
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Keyring.Path == "" {
		cfg.Keyring.Path = defaultKeyringPath()
	}
	if cfg.Auth.Mode == "" {
		cfg.Auth.Mode = "remote"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// defaultKeyringPath returns the default session database location.
func defaultKeyringPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.db"
	}
	return filepath.Join(home, ".local", "share", "atrium", "session.db")
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Server.BaseURL, "http://") && !strings.HasPrefix(c.Server.BaseURL, "https://") {
		return fmt.Errorf("server.base_url must be an http(s) URL, got %q", c.Server.BaseURL)
	}

	switch c.Auth.Mode {
	case "remote", "dev":
	default:
		return fmt.Errorf("auth.mode must be %q or %q, got %q", "remote", "dev", c.Auth.Mode)
	}

	if c.Auth.Mode == "dev" && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required when auth.mode is dev")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Server.RequestTimeoutRaw != "" {
		cfg.Server.RequestTimeout, err = time.ParseDuration(cfg.Server.RequestTimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing request_timeout %q: %w", cfg.Server.RequestTimeoutRaw, err)
		}
	}

	return nil
}
