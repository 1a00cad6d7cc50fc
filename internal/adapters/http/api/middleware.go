// Package api declares HTTP contracts and route registration helpers.
package api

import (
		"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/okian/randsum/pkg/logger"
	"github.com/okian/randsum/pkg/metrics"
)

// HTTP status code constants.
const (
	statusBadRequest       = 400
	statusNotFound         = 404
	statusMethodNotAllowed = 405
	statusInternalError    = 500
)

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-ID"

// MetricsMiddleware wraps HTTP handlers to record Prometheus metrics.
// A panicking handler is recorded as a 500 before the panic continues.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response writer wrapper to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		defer func() {
			rec := recover()
			status := wrapped.statusCode
			if rec != nil {
				status = http.StatusInternalServerError
			}
			record(endpoint, r.Method, status, time.Since(start))
			if rec != nil {
				panic(rec)
			}
		}()

		next.ServeHTTP(wrapped, r)
	}
}

func record(endpoint, method string, status int, elapsed time.Duration) {
	durationMs := float64(elapsed.Microseconds()) / 1000
	statusCodeStr := strconv.Itoa(status)

	metrics.RecordHTTPRequest(endpoint, method, statusCodeStr)
	metrics.RecordHTTPRequestDuration(endpoint, method, statusCodeStr, durationMs)

	if status >= statusBadRequest {
		errorType := getErrorType(status)
		metrics.RecordErrorByEndpoint(endpoint, method, errorType)
		metrics.RecordErrorByType(errorType, getErrorSeverity(status))
	}
}

// RequestIDMiddleware assigns a random id to every request, exposes it in the
// X-Request-ID response header, and stores it in the request context for logging.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

// RecoverMiddleware converts a handler panic into a generic 500 response.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func RecoverMiddleware(next http.Handler, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &trackingWriter{ResponseWriter: w}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
				panic(rec)
			}
			metrics.RecordPanicRecovered()
			err := errors.Mark(errors.Newf("%v", rec), ErrPanic)
			log.Error(r.Context(), "recovered handler panic",
				logger.Error(err),
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
			)
			if !tw.wroteHeader {
				writeInternalError(tw)
			}
		}()
		next.ServeHTTP(tw, r)
	})
}

// getErrorType returns a standardized error type based on HTTP status code.
func getErrorType(statusCode int) string {
	switch {
	case statusCode >= statusInternalError:
		return "server_error"
	case statusCode == statusNotFound:
		return "not_found"
	case statusCode == statusMethodNotAllowed:
		return "method_not_allowed"
	case statusCode >= statusBadRequest:
		return "client_error"
	default:
		return "unknown"
	}
}

// getErrorSeverity returns error severity based on HTTP status code.
func getErrorSeverity(statusCode int) string {
	switch {
	case statusCode >= statusInternalError:
		return "high"
	case statusCode >= statusBadRequest:
		return "medium"
	default:
		return "low"
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	if err != nil {
		return n, errors.Wrap(err, "write response")
	}
	return n, nil
}

// trackingWriter remembers whether the response has been started.
type trackingWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (tw *trackingWriter) WriteHeader(code int) {
	tw.wroteHeader = true
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *trackingWriter) Write(b []byte) (int, error) {
	tw.wroteHeader = true
	return tw.ResponseWriter.Write(b)
}
