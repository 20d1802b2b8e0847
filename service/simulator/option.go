package simulator

import (
	"context"
	"io"
	"log/slog"

	"github.com/viant/forktree/runtime/random"
	"github.com/viant/forktree/service/metrics"
)

// Option configures a Simulator.
type Option func(s *Simulator)

// WithOutput sets where trees and actions are printed.
func WithOutput(w io.Writer) Option {
	return func(s *Simulator) { s.out = w }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) { s.logger = logger }
}

// WithRandomSource overrides the seeded source built from Config.Seed.
func WithRandomSource(src random.Source) Option {
	return func(s *Simulator) { s.src = src }
}

// WithMetrics records action and run metrics.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *Simulator) { s.metrics = recorder }
}

// Listener is called after every action with the run id.
type Listener func(ctx context.Context, runID string, outcome *Outcome)

// WithListener registers a callback invoked after every action.
func WithListener(listener Listener) Option {
	return func(s *Simulator) { s.listener = listener }
}
