package config

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names understood by Load.
const (
	EnvPrefix = "RANDSUM_"
	EnvFile   = "RANDSUM_CONFIG"
)

var validate = validator.New() //nolint:gochecknoglobals // validator caches struct metadata

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RANDSUM_CONFIG is set
//  3. env (prefix RANDSUM_)
func Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "load config"), ErrLoadConfig)
	}

	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "read config file %q", path), ErrLoadConfig)
		}
	}

	// RANDSUM_RANDOM_MAX -> random_max; underscores are kept to match koanf tags.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "read environment"), ErrLoadConfig)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode config"), ErrLoadConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. Failures are marked ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Mark(errors.Wrap(err, "validate config"), ErrInvalidConfig)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.Mark(errors.Newf("%s", strings.Join(msgs, "; ")), ErrInvalidConfig)
}

func describe(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Addr":
		return "addr must not be empty"
	case "RandomMax":
		return "random_max must be >= random_min"
	case "MetricsAddr":
		return "metrics_addr must differ from addr"
	case "LogLevel":
		return "log_level must be one of debug, info, warn, error"
	case "LogFormat":
		return "log_format must be one of auto, console, json"
	default:
		return fe.Error()
	}
}
