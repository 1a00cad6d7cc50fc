// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/randsum/pkg/metrics"
)

// MetricsPath is where RegisterMetrics exposes the Prometheus registry.
const MetricsPath = "/metrics"

// RegisterMetrics attaches the Prometheus scrape handler to mux. It is meant
// for the separate metrics listener, never the business mux.
func RegisterMetrics(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("GET "+MetricsPath, promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
}
