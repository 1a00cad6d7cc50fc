// Package types contains common types used across the application
package types

import (
	"github.com/cockroachdb/errors"
)

// Default operand bounds.
const (
	DefaultMin = 0
	DefaultMax = 100
)

// ErrInvalidBounds is returned when Min exceeds Max.
var ErrInvalidBounds = errors.New("invalid bounds")

// Bounds is the inclusive range operands are drawn from.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultBounds returns [0, 100].
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMin, Max: DefaultMax}
}

// Validate reports ErrInvalidBounds when the range is empty.
func (b Bounds) Validate() error {
	if b.Min > b.Max {
		return errors.Wrapf(ErrInvalidBounds, "min %d > max %d", b.Min, b.Max)
	}
	return nil
}

// Contains reports whether v lies in [Min, Max].
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}
