package random

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// Sequence is a deterministic Source that replays fixed values in order,
// wrapping around at the end.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence creates a Sequence over values. The slice is copied.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// IntRange returns the next value. A value outside [minValue, maxValue] is an
// error rather than being clamped, so tests notice bad fixtures.
func (s *Sequence) IntRange(ctx context.Context, minValue, maxValue int) (int, error) {
	if err := checkRange(ctx, minValue, maxValue); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0, ErrExhausted
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)

	if v < minValue || v > maxValue {
		return 0, errors.Wrapf(ErrOutOfRange, "%d not in [%d, %d]", v, minValue, maxValue)
	}
	return v, nil
}
