package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/okian/randsum/internal/config"
	"github.com/okian/randsum/internal/domain/types"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, "127.0.0.1:5000")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "auto")
			convey.So(cfg.MetricsAddr, convey.ShouldEqual, "")
			convey.So(cfg.RandomMin, convey.ShouldEqual, 0)
			convey.So(cfg.RandomMax, convey.ShouldEqual, 100)
			convey.So(cfg.RandomSeed, convey.ShouldEqual, int64(0))
			convey.So(cfg.Bounds(), convey.ShouldResemble, types.Bounds{Min: 0, Max: 100})
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, "127.0.0.1:5000")
				convey.So(cfg.RandomMin, convey.ShouldEqual, 0)
				convey.So(cfg.RandomMax, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("RANDSUM_ADDR", ":8080")
			_ = os.Setenv("RANDSUM_LOG_LEVEL", "debug")
			_ = os.Setenv("RANDSUM_LOG_FORMAT", "json")
			_ = os.Setenv("RANDSUM_METRICS_ADDR", ":9100")
			_ = os.Setenv("RANDSUM_RANDOM_MIN", "10")
			_ = os.Setenv("RANDSUM_RANDOM_MAX", "20")
			_ = os.Setenv("RANDSUM_RANDOM_SEED", "42")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9100")
				convey.So(cfg.RandomMin, convey.ShouldEqual, 10)
				convey.So(cfg.RandomMax, convey.ShouldEqual, 20)
				convey.So(cfg.RandomSeed, convey.ShouldEqual, int64(42))
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
random_min: 1
random_max: 6
log_format: console
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("RANDSUM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.RandomMin, convey.ShouldEqual, 1)
				convey.So(cfg.RandomMax, convey.ShouldEqual, 6)
				convey.So(cfg.LogFormat, convey.ShouldEqual, "console")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info") // From defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
random_min: 1
random_max: 6
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("RANDSUM_CONFIG", tmpFile)
			_ = os.Setenv("RANDSUM_ADDR", ":8080")
			_ = os.Setenv("RANDSUM_RANDOM_MAX", "60")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.RandomMin, convey.ShouldEqual, 1)
				convey.So(cfg.RandomMax, convey.ShouldEqual, 60)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("RANDSUM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("RANDSUM_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("RANDSUM_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with inverted bounds", func() {
			_ = os.Setenv("RANDSUM_RANDOM_MIN", "50")
			_ = os.Setenv("RANDSUM_RANDOM_MAX", "10")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "random_max must be >= random_min")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with equal bounds", func() {
			_ = os.Setenv("RANDSUM_RANDOM_MIN", "7")
			_ = os.Setenv("RANDSUM_RANDOM_MAX", "7")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should accept a single-value range", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Bounds(), convey.ShouldResemble, types.Bounds{Min: 7, Max: 7})
			})
		})

		convey.Convey("When loading config with an unknown log format", func() {
			_ = os.Setenv("RANDSUM_LOG_FORMAT", "xml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "log_format")
			})
		})

		convey.Convey("When metrics_addr equals addr", func() {
			_ = os.Setenv("RANDSUM_ADDR", ":8080")
			_ = os.Setenv("RANDSUM_METRICS_ADDR", ":8080")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "metrics_addr must differ from addr")
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("RANDSUM_RANDOM_MAX", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the context is already canceled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			cfg, err := config.Load(cctx)

			convey.Convey("Then it should not load anything", func() {
				convey.So(errors.Is(err, context.Canceled), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"RANDSUM_CONFIG",
		"RANDSUM_ADDR",
		"RANDSUM_LOG_LEVEL",
		"RANDSUM_LOG_FORMAT",
		"RANDSUM_METRICS_ADDR",
		"RANDSUM_RANDOM_MIN",
		"RANDSUM_RANDOM_MAX",
		"RANDSUM_RANDOM_SEED",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "randsum-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
