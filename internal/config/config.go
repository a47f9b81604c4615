package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// History backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development" or "production"

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	// Round history kept for the lifetime of the process
	HistoryBackend string `env:"HISTORY_BACKEND" envDefault:"memory"`
	HistoryLimit   int    `env:"HISTORY_LIMIT" envDefault:"10"`

	// Zero seeds the shuffle from the clock
	ShuffleSeed int64 `env:"SHUFFLE_SEED" envDefault:"0"`
}

// Load reads the configuration from a .env file, if any, and the environment
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that every setting holds a usable value
func (c *Config) validate() error {
	switch c.HistoryBackend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("HISTORY_BACKEND must be %q or %q, got %q", BackendMemory, BackendSQLite, c.HistoryBackend)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("HISTORY_LIMIT cannot be negative, got %d", c.HistoryLimit)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
