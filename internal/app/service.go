// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"

	"github.com/okian/randsum/internal/domain/calculator"
	"github.com/okian/randsum/internal/domain/model"
	"github.com/okian/randsum/internal/domain/random"
	"github.com/okian/randsum/internal/domain/types"
	"github.com/okian/randsum/pkg/logger"
	"github.com/okian/randsum/pkg/metrics"
)

// Sentinel errors returned by the service.
var (
	ErrNotStarted = errors.New("service not started")
	ErrDraw       = errors.New("draw failed")
)

// Service draws random pairs and sums them.
type Service struct {
	mu sync.RWMutex

	// Core components
	calc   calculator.Calculator
	source random.Source
	bounds types.Bounds

	// State
	started    atomic.Bool
	drawsTotal atomic.Int64
	drawErrors atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCalculator replaces the default calculator.
func WithCalculator(c calculator.Calculator) Option {
	return func(s *Service) {
		if c != nil {
			s.calc = c
		}
	}
}

// WithSource replaces the default random source.
func WithSource(src random.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithBounds sets the inclusive range operands are drawn from.
// Bounds are validated by Start.
func WithBounds(b types.Bounds) Option {
	return func(s *Service) {
		s.bounds = b
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		calc:   calculator.New(),
		source: random.NewMathSource(),
		bounds: types.DefaultBounds(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start validates the configuration and makes the service ready to draw.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started.Load() {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if err := s.bounds.Validate(); err != nil {
		metrics.RecordDrawError(metrics.ReasonBounds)
		return errors.Wrap(err, "start service")
	}

	metrics.UpdateBounds(s.bounds.Min, s.bounds.Max)
	s.started.Store(true)
	s.logger.Info(ctx, "sum service started",
		logger.Int("min", s.bounds.Min),
		logger.Int("max", s.bounds.Max),
	)

	return nil
}

// Stop marks the service as stopped. Draws after Stop return ErrNotStarted.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started.Load() {
		return
	}
	s.started.Store(false)
	s.logger.Info(context.Background(), "sum service stopped",
		logger.Any("draws", s.drawsTotal.Load()),
	)
}

// Draw generates two independent operands within the bounds and sums them.
// A failure affects only this call.
func (s *Service) Draw(ctx context.Context) (model.Result, error) {
	if !s.started.Load() {
		return model.Result{}, ErrNotStarted
	}
	done := metrics.DrawStarted()
	defer done()

	left, err := s.source.IntRange(ctx, s.bounds.Min, s.bounds.Max)
	if err != nil {
		return model.Result{}, s.drawFailed(ctx, "left", err)
	}
	right, err := s.source.IntRange(ctx, s.bounds.Min, s.bounds.Max)
	if err != nil {
		return model.Result{}, s.drawFailed(ctx, "right", err)
	}

	res := model.Result{
		Pair: model.Pair{Left: left, Right: right},
		Sum:  s.calc.Add(left, right),
	}

	s.drawsTotal.Inc()
	metrics.RecordDraw(res.Left, res.Right, res.Sum)
	s.logger.Debug(ctx, "drew pair",
		logger.Int("left", res.Left),
		logger.Int("right", res.Right),
		logger.Int("sum", res.Sum),
	)

	return res, nil
}

func (s *Service) drawFailed(ctx context.Context, position string, err error) error {
	s.drawErrors.Inc()
	reason := metrics.ReasonSource
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		reason = metrics.ReasonCanceled
	}
	metrics.RecordDrawError(reason)
	s.logger.Warn(ctx, "draw failed", logger.String("operand", position), logger.Error(err))
	return errors.Mark(errors.Wrapf(err, "draw %s operand", position), ErrDraw)
}

// Bounds returns the configured operand range.
func (s *Service) Bounds() types.Bounds {
	return s.bounds
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":    s.started.Load(),
		"drawsTotal": s.drawsTotal.Load(),
		"drawErrors": s.drawErrors.Load(),
		"boundMin":   s.bounds.Min,
		"boundMax":   s.bounds.Max,
	}
}
