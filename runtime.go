package forktree

import (
	"context"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/viant/forktree/runtime/random"
	"github.com/viant/forktree/service/dao"
	"github.com/viant/forktree/service/dao/run"
	"github.com/viant/forktree/service/event"
	"github.com/viant/forktree/service/metrics"
	"github.com/viant/forktree/service/simulator"
)

// Runtime runs simulations and keeps their records.
type Runtime struct {
	runDAO   run.Service
	defaults *simulator.Config
	src      random.Source
	out      io.Writer
	logger   *slog.Logger
	metrics  *metrics.Recorder
	events   *event.Publisher[simulator.Outcome]
}

// Run runs one simulation and stores its result. A nil config uses the
// service default.
func (r *Runtime) Run(ctx context.Context, config *simulator.Config) (*simulator.Result, error) {
	if config == nil {
		config = r.defaults
	}
	if config == nil {
		config = simulator.DefaultConfig()
	}
	options := []simulator.Option{
		simulator.WithOutput(r.out),
		simulator.WithLogger(r.logger),
		simulator.WithMetrics(r.metrics),
	}
	if r.src != nil {
		options = append(options, simulator.WithRandomSource(r.src))
	}
	if r.events != nil {
		options = append(options, simulator.WithListener(r.publisher()))
	}
	sim, err := simulator.New(config.Clone(), options...)
	if err != nil {
		return nil, err
	}
	result, err := sim.Run(ctx)
	if err != nil {
		return nil, err
	}
	if err = r.runDAO.Save(ctx, result); err != nil {
		return nil, errors.Wrapf(err, "save run %s", result.ID)
	}
	return result, nil
}

// publisher returns a listener publishing every outcome of one run.
func (r *Runtime) publisher() simulator.Listener {
	step := 0
	return func(ctx context.Context, runID string, outcome *simulator.Outcome) {
		step++
		eventType := event.TypeApplied
		if !outcome.Applied {
			eventType = event.TypeRejected
		}
		evt := event.NewEvent(&event.Context{RunID: runID, Step: step, EventType: eventType}, *outcome)
		if err := r.events.Publish(ctx, evt); err != nil {
			r.logger.Warn("outcome not published",
				slog.String("run", runID),
				slog.Int("step", step),
				slog.String("error", err.Error()))
		}
	}
}

// Show returns a stored run.
func (r *Runtime) Show(ctx context.Context, runID string) (*simulator.Result, error) {
	return r.runDAO.Load(ctx, runID)
}

// Replay re-runs the action log of a stored run. override, when set, may
// change presentation or policy; the action log itself is always the stored
// one.
func (r *Runtime) Replay(ctx context.Context, runID string, override func(config *simulator.Config)) (*simulator.Result, error) {
	previous, err := r.runDAO.Load(ctx, runID)
	if err != nil {
		return nil, err
	}
	config := simulator.DefaultConfig()
	if previous.Config != nil {
		config = previous.Config.Clone()
	}
	if override != nil {
		override(config)
	}
	config.Actions = append([]string(nil), previous.Actions...)
	if len(config.Actions) == 0 {
		config.MaxActions = 0
	}
	r.logger.Info("replaying run", slog.String("run", runID), slog.Int("actions", len(config.Actions)))
	return r.Run(ctx, config)
}

// Runs lists stored runs, optionally filtered, for example by
// dao.NewParameter(run.FieldPolicy, "local").
func (r *Runtime) Runs(ctx context.Context, parameters ...*dao.Parameter) ([]*simulator.Result, error) {
	return r.runDAO.List(ctx, parameters...)
}
