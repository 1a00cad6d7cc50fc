package random

import (
	"github.com/cockroachdb/errors"
)

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrInvalidRange = errors.New("invalid range")
	ErrExhausted    = errors.New("sequence exhausted")
	ErrOutOfRange   = errors.New("value out of range")
)
