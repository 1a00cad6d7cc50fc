// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and RANDSUM_* env vars.
// - External errors are wrapped and marked with this package's sentinels.
package config

import (
	"github.com/okian/randsum/internal/domain/types"
	"github.com/okian/randsum/pkg/logger"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// LogFormat selects the log encoding: auto, console, json.
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=auto console json"`

	// Addr configures the HTTP listen address, e.g. "127.0.0.1:5000".
	Addr string `koanf:"addr" validate:"required"`

	// MetricsAddr enables a separate Prometheus listener when non-empty.
	MetricsAddr string `koanf:"metrics_addr" validate:"omitempty,nefield=Addr"`

	// RandomMin and RandomMax bound the drawn operands (inclusive).
	RandomMin int `koanf:"random_min"`
	RandomMax int `koanf:"random_max" validate:"gtefield=RandomMin"`

	// RandomSeed makes draws deterministic when non-zero.
	RandomSeed int64 `koanf:"random_seed"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: logger.FormatAuto,
		Addr:      "127.0.0.1:5000",
		RandomMin: types.DefaultMin,
		RandomMax: types.DefaultMax,
	}
}

// Bounds returns the configured operand range.
func (c *Config) Bounds() types.Bounds {
	return types.Bounds{Min: c.RandomMin, Max: c.RandomMax}
}
