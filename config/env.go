// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the ECOLYSIS_* settings read by the command-line tool.
// Flags, when given, override these values.
type Env struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"ECOLYSIS_LOG_LEVEL" envDefault:"info"`

	// Delimiter separates values on output lines.
	Delimiter string `env:"ECOLYSIS_DELIMITER" envDefault:", "`

	// Precision is the number of decimals on output; -1 is shortest.
	Precision int `env:"ECOLYSIS_PRECISION" envDefault:"-1"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns Env populated from the environment and defaults.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := ParseEnv(&cfg); err != nil {
		return Env{}, err
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = ", "
	}
	if cfg.Precision < -1 {
		return Env{}, fmt.Errorf("parse env: ECOLYSIS_PRECISION must be >= -1, got %d", cfg.Precision)
	}
	return cfg, nil
}
