// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the bearer token goes to the OS
// keychain. Environment variables override persisted values.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"

	"damafashion/cli/internal/xdg"
)

// Defaults applied when neither the config file nor the environment provides
// a value.
const (
	DefaultBaseURL  = "http://localhost:8080/api"
	DefaultLogLevel = "info"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// BaseURL is the inventory API base URL, including the /api prefix.
	BaseURL string `json:"base_url" env:"DAMA_API_URL"`
	// LogLevel controls zerolog verbosity (trace..error).
	LogLevel string `json:"log_level" env:"DAMA_LOG_LEVEL"`
	// Timeout bounds every API request. Not persisted.
	Timeout time.Duration `json:"-" env:"DAMA_HTTP_TIMEOUT, default=10s"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration from the config file, then overlays environment
// variables. A missing file yields defaults rather than an error.
func Load(ctx context.Context) (Config, error) {
	var c Config
	p, err := path()
	if err == nil {
		data, rerr := os.ReadFile(p)
		switch {
		case rerr == nil:
			if uerr := json.Unmarshal(data, &c); uerr != nil {
				return c, uerr
			}
		case errors.Is(rerr, os.ErrNotExist):
			// fall through to defaults
		default:
			return c, rerr
		}
	}

	if err := envconfig.Process(ctx, &c); err != nil {
		return c, err
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
