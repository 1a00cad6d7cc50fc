// Package random defines the source of operands for the sum endpoint.
package random

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/okian/randsum/internal/domain/random Source

// Source produces integers in an inclusive range.
type Source interface {
	// IntRange returns a uniformly distributed integer in [minValue, maxValue].
	IntRange(ctx context.Context, minValue, maxValue int) (int, error)
}

// MathSource implements Source on top of math/rand/v2.
type MathSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMathSource creates a MathSource. Without WithSeed it is seeded from the clock.
func NewMathSource(opts ...Option) *MathSource {
	cfg := sourceConfig{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MathSource{
		rng: rand.New(rand.NewPCG(uint64(cfg.seed), uint64(cfg.seed))), //nolint:gosec // operands are not security sensitive
	}
}

// IntRange returns a uniform integer in [minValue, maxValue].
func (s *MathSource) IntRange(ctx context.Context, minValue, maxValue int) (int, error) {
	if err := checkRange(ctx, minValue, maxValue); err != nil {
		return 0, err
	}
	// width of the range minus one, exact in two's complement
	span := uint64(maxValue) - uint64(minValue)

	s.mu.Lock()
	defer s.mu.Unlock()

	if span == math.MaxUint64 {
		return int(s.rng.Uint64()), nil
	}
	return minValue + int(s.rng.Uint64N(span+1)), nil
}

func checkRange(ctx context.Context, minValue, maxValue int) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "draw canceled")
	}
	if minValue > maxValue {
		return errors.Wrapf(ErrInvalidRange, "min %d > max %d", minValue, maxValue)
	}
	return nil
}
