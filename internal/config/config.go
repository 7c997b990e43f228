// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"twd.db"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"warn"`
	AiredEpisodes  int    `env:"AIRED_EPISODES" envDefault:"177"`
	SeasonEpisodes []int  `env:"SEASON_EPISODES" envSeparator:"," envDefault:"6,13,16,16,16,16,16,16,16,16,16"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("DATABASE_PATH cannot be empty")
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	logLevel := strings.ToLower(c.LogLevel)
	isValidLevel := false
	for _, level := range validLogLevels {
		if logLevel == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		return fmt.Errorf("invalid log level %q, must be one of: %v", c.LogLevel, validLogLevels)
	}
	c.LogLevel = logLevel

	if c.AiredEpisodes <= 0 {
		return fmt.Errorf("AIRED_EPISODES must be positive, got: %d", c.AiredEpisodes)
	}

	if len(c.SeasonEpisodes) == 0 {
		return fmt.Errorf("SEASON_EPISODES cannot be empty")
	}
	for i, count := range c.SeasonEpisodes {
		if count <= 0 {
			return fmt.Errorf("SEASON_EPISODES entry for season %d must be positive, got: %d", i+1, count)
		}
	}

	return nil
}
