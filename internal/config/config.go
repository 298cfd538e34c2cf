package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the LCR sandbox backend
type Config struct {
	// Server configuration
	Port     int    `env:"PORT" envDefault:"8000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Report store configuration
	Database DatabaseConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// DatabaseConfig holds the optional report store configuration.
// URL and Name are presence-checked by the diagnostic endpoint; the
// probe only dials when both are set.
type DatabaseConfig struct {
	URL  string `env:"DATABASE_URL"`
	Name string `env:"DATABASE_NAME"`

	CheckTimeout time.Duration `env:"DATABASE_CHECK_TIMEOUT" envDefault:"3s"`
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	HTTPRead  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	HTTPWrite time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"20s"`
	Shutdown  time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"15s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.Database.CheckTimeout <= 0 {
		return fmt.Errorf("database check timeout must be positive")
	}
	if c.Timeouts.HTTPRead <= 0 || c.Timeouts.HTTPWrite <= 0 || c.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Configured reports whether the optional report store is fully configured
func (d DatabaseConfig) Configured() bool {
	return d.URL != "" && d.Name != ""
}
