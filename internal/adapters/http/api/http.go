// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/randsum/internal/domain/model"
	"github.com/okian/randsum/pkg/logger"
)

// Route patterns served by the API.
const (
	rootPattern       = "GET /{$}"
	rootAnyPattern    = "/{$}"
	fallbackPattern   = "/"
	rootEndpoint      = "root"
	unmatchedEndpoint = "unmatched"
)

// Dependencies required by HTTP handlers. Using an interface keeps the
// handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Draw produces one random pair and its sum.
	Draw(ctx context.Context) (model.Result, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	sumHandler *SumHandler
	logger     logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{
		sumHandler: NewSumHandler(deps, log),
		logger:     log,
	}
}

// Register attaches the API routes to mux. Only GET (and HEAD) on the exact
// root path is served; other methods on / get 405 and other paths 404, both
// through the same middleware so they are counted.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle(rootPattern, s.wrap(s.sumHandler.HandleSum, rootEndpoint))
	mux.Handle(rootAnyPattern, s.wrap(methodNotAllowed, rootEndpoint))
	mux.Handle(fallbackPattern, s.wrap(notFound, unmatchedEndpoint))
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	writeText(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// wrap applies the middleware chain, outermost first: recover, request id, metrics.
func (s *Server) wrap(next http.HandlerFunc, endpoint string) http.Handler {
	return RecoverMiddleware(
		RequestIDMiddleware(
			MetricsMiddleware(next, endpoint),
		),
		s.logger,
	)
}

// writeText writes a plain-text body with the given status.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// writeInternalError writes the generic 500 body without leaking error text.
func writeInternalError(w http.ResponseWriter) {
	writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
