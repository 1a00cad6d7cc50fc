package api

import "github.com/cockroachdb/errors"

// ErrPanic marks a handler panic recovered by RecoverMiddleware.
var ErrPanic = errors.New("handler panic")
