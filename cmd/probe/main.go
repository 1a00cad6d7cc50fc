package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/randsum/internal/domain/types"
	"github.com/okian/randsum/internal/probe"
	"github.com/okian/randsum/pkg/logger"
)

// Default configuration constants.
const (
	defaultRequests     = 10000
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 5 * time.Second
	defaultProbeTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://127.0.0.1:5000", "Base URL of the service")
		requests = flag.Int("requests", defaultRequests, "Number of requests to send")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		minValue = flag.Int("min", types.DefaultMin, "Expected lower operand bound")
		maxValue = flag.Int("max", types.DefaultMax, "Expected upper operand bound")
		verbose  = flag.Bool("verbose", false, "Log every failed request")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer cancel()

	config := &probe.Config{
		BaseURL:  *baseURL,
		Requests: *requests,
		Workers:  *workers,
		Timeout:  *timeout,
		Min:      *minValue,
		Max:      *maxValue,
		Verbose:  *verbose,
	}

	if _, err := probe.Run(ctx, config); err != nil {
		logger.Get().Error(ctx, "probe failed", logger.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
