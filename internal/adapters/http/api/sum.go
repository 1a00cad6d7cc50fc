// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/randsum/pkg/logger"
)

// SumHandler serves GET /.
type SumHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewSumHandler creates a new sum handler.
func NewSumHandler(deps Dependencies, log logger.Logger) *SumHandler {
	return &SumHandler{deps: deps, logger: log}
}

// HandleSum draws a pair and responds with "{a} + {b} = {sum}".
// The request itself is not read.
func (h *SumHandler) HandleSum(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Draw(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "draw failed", logger.Error(err))
		writeInternalError(w)
		return
	}
	writeText(w, http.StatusOK, res.String())
}
