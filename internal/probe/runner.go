// Package probe is a client that exercises a running randsum server and checks
// every response: the body format, the arithmetic, and the operand bounds.
package probe

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/okian/randsum/pkg/logger"
)

// ErrProbeFailed is returned by Run when any request failed or broke an invariant.
var ErrProbeFailed = errors.New("probe failed")

// Run executes a complete probe and returns its statistics.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting randsum probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("requests", config.Requests),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("min", config.Min),
		logger.Int("max", config.Max),
	)

	samples := fetchAll(ctx, config, stats)
	for _, s := range samples {
		if err := Check(s, config.Min, config.Max); err != nil {
			stats.Violations = append(stats.Violations, err.Error())
			if config.Verbose {
				log.Warn(ctx, "invariant violated", logger.Error(err))
			}
			continue
		}
		stats.Successful++
	}
	summarize(samples, stats)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "probe finished",
		logger.Int("requests", stats.Requests),
		logger.Int("successful", stats.Successful),
		logger.Int("failed", stats.Failed),
		logger.Int("violations", len(stats.Violations)),
		logger.Int("minSeen", stats.MinSeen),
		logger.Int("maxSeen", stats.MaxSeen),
		logger.Int("distinct", stats.Distinct),
		logger.String("duration", stats.Duration.String()),
	)

	if err := ctx.Err(); err != nil {
		return stats, errors.Wrap(err, "probe interrupted")
	}
	if len(stats.Violations) > 0 {
		return stats, errors.Wrapf(ErrProbeFailed, "%d of %d requests failed checks: first: %s",
			len(stats.Violations), stats.Requests, stats.Violations[0])
	}
	return stats, nil
}

func (c *Config) validate() error {
	switch {
	case c.BaseURL == "":
		return errors.New("base url must not be empty")
	case c.Requests <= 0:
		return errors.New("requests must be positive")
	case c.Workers <= 0:
		return errors.New("workers must be positive")
	case c.Min > c.Max:
		return errors.Newf("min %d > max %d", c.Min, c.Max)
	}
	return nil
}
