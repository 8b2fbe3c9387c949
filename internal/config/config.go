// Package config loads runtime configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the API server.
type Config struct {
	Addr    string `env:"TASKLANE_ADDR" envDefault:":8080"`
	Version string `env:"TASKLANE_VERSION" envDefault:"dev"`
	Commit  string `env:"TASKLANE_COMMIT" envDefault:"unknown"`

	// PGDSN empty means the in-memory stores are used (dev mode).
	PGDSN string `env:"TASKLANE_PG_DSN"`

	AuthSecret string        `env:"TASKLANE_AUTH_SECRET"`
	AccessTTL  time.Duration `env:"TASKLANE_ACCESS_TTL" envDefault:"15m"`

	RateBurst  int `env:"TASKLANE_RATE_BURST" envDefault:"20"`
	RatePerSec int `env:"TASKLANE_RATE_PER_SEC" envDefault:"10"`
}

// Load parses the environment and validates required settings.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.AuthSecret == "" {
		return errors.New("TASKLANE_AUTH_SECRET is required")
	}
	if c.AccessTTL <= 0 {
		return errors.New("TASKLANE_ACCESS_TTL must be positive")
	}
	if c.RateBurst < 1 || c.RatePerSec < 1 {
		return errors.New("rate limit settings must be at least 1")
	}
	return nil
}
