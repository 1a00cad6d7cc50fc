package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/randsum/internal/adapters/http/api"
	service "github.com/okian/randsum/internal/app"
	"github.com/okian/randsum/internal/config"
	"github.com/okian/randsum/internal/domain/random"
	"github.com/okian/randsum/pkg/logger"
	"github.com/okian/randsum/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	serviceMetricsInterval    = 5 * time.Second
	nanosecondsPerMillisecond = 1e6
)

const startupNotice = "App is actually running!\n"

func main() {
	// Our collectors live on a custom registry; keep the default one empty.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogFormat); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := newService(cfg, loggerInstance)
	if err := svc.Start(ctx); err != nil {
		loggerInstance.Error(ctx, "failed to start service", logger.Error(err))
		return
	}
	defer svc.Stop()

	go startSystemMetricsUpdater(ctx)
	go startServiceMetricsUpdater(ctx, svc)

	servers := []*http.Server{newHTTPServer(cfg.Addr, newAPIMux(ctx, svc, loggerInstance))}
	if cfg.MetricsAddr != "" {
		servers = append(servers, newHTTPServer(cfg.MetricsAddr, newMetricsMux(ctx)))
	}

	if err := printStartupNotice(os.Stdout); err != nil {
		loggerInstance.Warn(ctx, "failed to print startup notice", logger.Error(err))
	}

	for _, srv := range servers {
		go func(srv *http.Server) {
			loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				loggerInstance.Error(ctx, "HTTP server failed", logger.String("addr", srv.Addr), logger.Error(err))
				stop()
			}
		}(srv)
	}

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			loggerInstance.Error(ctx, "server shutdown failed", logger.String("addr", srv.Addr), logger.Error(err))
		}
	}

	loggerInstance.Info(ctx, "server stopped")
}

// printStartupNotice writes the line announcing the process is up.
func printStartupNotice(w io.Writer) error {
	_, err := io.WriteString(w, startupNotice)
	return err
}

// newService builds the sum service from the loaded configuration.
func newService(cfg *config.Config, log logger.Logger) *service.Service {
	return service.New(
		service.WithLogger(log),
		service.WithBounds(cfg.Bounds()),
		service.WithSource(random.NewMathSource(random.WithSeed(cfg.RandomSeed))),
	)
}

// newAPIMux registers the business endpoint. Nothing else is served on it.
func newAPIMux(ctx context.Context, svc *service.Service, log logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(svc, log).Register(ctx, mux)
	return mux
}

func newMetricsMux(ctx context.Context) *http.ServeMux {
	mux := http.NewServeMux()
	api.RegisterMetrics(ctx, mux)
	return mux
}

func newHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// startServiceMetricsUpdater starts a background goroutine that updates service metrics.
func startServiceMetricsUpdater(ctx context.Context, svc *service.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateServiceMetrics(svc)
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)

	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		// average pause over the process lifetime
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}

// updateServiceMetrics republishes the bounds gauges from the service stats.
func updateServiceMetrics(svc *service.Service) {
	stats := svc.GetStats()

	minValue, okMin := stats["boundMin"].(int)
	maxValue, okMax := stats["boundMax"].(int)
	if okMin && okMax {
		metrics.UpdateBounds(minValue, maxValue)
	}
}
