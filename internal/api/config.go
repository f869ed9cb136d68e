package api

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the remote service configuration.
type Config struct {
	// BaseURL is the service root, e.g. https://api.prepdeck.app.
	BaseURL string

	// Token optionally overrides the stored session token. Normally
	// the token comes from `prepdeck login`.
	Token string

	// Timeout is the per-request deadline. Default: 15s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, loading a
// .env file from the working directory first when one exists.
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if u := os.Getenv("PREPDECK_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("PREPDECK_TOKEN"); t != "" {
		cfg.Token = t
	}
	if d := os.Getenv("PREPDECK_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks that the config can reach a service at all.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("PREPDECK_API_URL is required")
	}
	return nil
}
