// Package simulator drives a process tree through an action log and prints
// the tree as it evolves. With Solve unset it prints placeholders instead of
// answers, turning a run into a quiz.
package simulator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/viant/forktree/internal/clock"
	"github.com/viant/forktree/internal/idgen"
	"github.com/viant/forktree/model/action"
	"github.com/viant/forktree/model/tree"
	"github.com/viant/forktree/progress"
	"github.com/viant/forktree/runtime/random"
	"github.com/viant/forktree/service/generator"
	"github.com/viant/forktree/service/metrics"
	"github.com/viant/forktree/service/renderer"
	"github.com/viant/forktree/tracing"
)

var (
	initialHeader = strings.Repeat(" ", 27) + "Process Tree:"
	finalHeader   = strings.Repeat(" ", 24) + "Final Process Tree"
)

// Simulator runs one simulation. It is single use and not safe for
// concurrent use.
type Simulator struct {
	config   *Config
	policy   tree.Policy
	renderer *renderer.Renderer
	tree     *tree.Tree
	src      random.Source
	out      io.Writer
	logger   *slog.Logger
	metrics  *metrics.Recorder
	listener Listener
	state    State
	runID    string
	werr     error
}

// New validates config and creates a simulator. Configuration errors,
// including an unknown print style, are returned before anything is printed.
func New(config *Config, options ...Option) (*Simulator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	style, _ := renderer.ParseStyle(config.PrintStyle)
	ret := &Simulator{
		config:   config,
		policy:   config.Policy(),
		renderer: renderer.New(style),
		tree:     tree.New(tree.ID(config.Root)),
		state:    StateIdle,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.out == nil {
		ret.out = os.Stdout
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.src == nil {
		ret.src = random.New(config.Seed)
	}
	return ret, nil
}

// State returns the current lifecycle stage.
func (s *Simulator) State() State {
	return s.state
}

// Tree returns the simulated tree.
func (s *Simulator) Tree() *tree.Tree {
	return s.tree
}

// Actions returns the action log the run will apply: the explicit actions
// when configured, a generated log otherwise.
func (s *Simulator) Actions() ([]*action.Action, error) {
	if len(s.config.Actions) > 0 {
		return action.ParseAll(s.config.Actions)
	}
	return generator.New(s.src, s.tree.Root()).Generate(s.config.ForkPercentage, s.config.MaxActions), nil
}

// Run applies the action log and returns the run record. A malformed action
// aborts the run before any output; rejected actions are reported and
// skipped.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.state != StateIdle {
		return nil, ErrAlreadyRun
	}
	actions, err := s.Actions()
	if err != nil {
		return nil, err
	}
	s.runID = idgen.New()
	result := &Result{
		ID:        s.runID,
		Config:    s.config.Clone(),
		Policy:    s.policy.String(),
		Actions:   action.Strings(actions),
		StartedAt: clock.Now(),
	}
	tracker := progress.New(s.runID, s.tree.Len())
	tracker.OnChange(func(c progress.Counters) { s.metrics.SetLive(c.Live) })
	s.metrics.SetLive(s.tree.Len())
	ctx = progress.WithTracker(ctx, tracker)
	ctx, span := tracing.StartSpan(ctx, "simulation.run")
	span.Set("run.id", s.runID).
		Set("policy", result.Policy).
		Set("style", s.renderer.Style()).
		Set("actions", len(actions))

	err = s.run(ctx, actions, result)
	span.End(err)
	if err != nil {
		return nil, err
	}
	result.Counters = tracker.Snapshot()
	result.FinalTree = s.renderer.String(s.tree)
	result.FinishedAt = clock.Now()
	s.metrics.RunCompleted()
	s.logger.Info("simulation complete",
		slog.String("run", s.runID),
		slog.Int("actions", result.Counters.Actions),
		slog.Int("forked", result.Counters.Forked),
		slog.Int("exited", result.Counters.Exited),
		slog.Int("rejected", result.Counters.Rejected),
		slog.Int("live", result.Counters.Live))
	return result, nil
}

func (s *Simulator) run(ctx context.Context, actions []*action.Action, result *Result) error {
	s.state = StateInitialTree
	s.println(initialHeader)
	s.printTree()
	s.println("")

	s.state = StateApplying
	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		before := s.renderer.String(s.tree)
		outcome, err := s.apply(ctx, a)
		if err != nil {
			return err
		}
		result.Outcomes = append(result.Outcomes, outcome)
		if !s.config.JustFinal {
			s.state = StateIntermediateTree
			s.report(outcome, before)
			s.state = StateApplying
		}
	}

	s.state = StateFinalTree
	if s.config.Solve || s.config.ShowTree {
		s.println(finalHeader + ":")
		s.printTree()
	} else {
		s.println(finalHeader + "?")
	}
	s.state = StateDone
	return s.werr
}

// apply mutates the tree for one action. Rejections produce an outcome, not
// an error; the returned error is fatal.
func (s *Simulator) apply(ctx context.Context, a *action.Action) (*Outcome, error) {
	_, span := tracing.StartSpan(ctx, "simulation.action")
	span.Set("action", a.String()).Set("kind", string(a.Kind))
	outcome := &Outcome{Action: a.String(), Description: a.Description()}

	err := s.mutate(a)
	if err != nil {
		reason, ok := rejectionOf(err)
		if !ok {
			span.End(err)
			return nil, err
		}
		outcome.Error = err.Error()
		outcome.Description = fmt.Sprintf("%s (rejected: %s)", a.Description(), reason)
		outcome.Live = s.tree.Len()
		progress.UpdateCtx(ctx, progress.Delta{Actions: 1, Rejected: 1})
		s.metrics.Action(string(a.Kind), metrics.OutcomeRejected)
		s.logger.Warn("action rejected",
			slog.String("run", s.runID),
			slog.String("action", a.String()),
			slog.String("reason", err.Error()))
		span.Event("rejected")
		span.End(err)
		s.notify(ctx, outcome)
		return outcome, nil
	}

	if err := s.tree.Check(); err != nil {
		span.End(err)
		return nil, errors.Wrapf(err, "after %s", a)
	}
	outcome.Applied = true
	outcome.Live = s.tree.Len()
	delta := progress.Delta{Actions: 1, Forked: 1, Live: 1}
	if a.Kind == action.KindExit {
		delta = progress.Delta{Actions: 1, Exited: 1, Live: -1}
	}
	progress.UpdateCtx(ctx, delta)
	s.metrics.Action(string(a.Kind), metrics.OutcomeApplied)
	s.logger.Debug("action applied",
		slog.String("run", s.runID),
		slog.String("action", a.String()),
		slog.Int("live", outcome.Live))
	span.Set("live", outcome.Live).End(nil)
	s.notify(ctx, outcome)
	return outcome, nil
}

func (s *Simulator) mutate(a *action.Action) error {
	if a.Kind == action.KindFork {
		return s.tree.Spawn(a.Parent, a.Child)
	}
	if s.config.LeafOnly && a.Parent != s.tree.Root() && s.tree.HasChildren(a.Parent) {
		return errors.Wrapf(ErrRejectedLeafExit, "exit of %s", a.Parent)
	}
	return s.tree.Exit(a.Parent, s.policy)
}

// report prints one step. With ShowTree the tree is always shown and the
// action is the question; otherwise the action is shown and the tree is the
// question.
func (s *Simulator) report(outcome *Outcome, before string) {
	revealTree := s.config.ShowTree || s.config.Solve
	if s.config.ShowTree && !s.config.Solve {
		s.println("Action?")
	} else {
		s.println("Action: " + outcome.Description)
	}
	if revealTree {
		after := s.renderer.String(s.tree)
		s.print(after)
		if s.config.ShowDiff && outcome.Applied {
			diff, err := renderer.Diff(before, after, "tree")
			if err != nil {
				s.logger.Warn("diff failed", slog.String("run", s.runID), slog.String("error", err.Error()))
			}
			s.print(diff)
		}
	} else {
		s.println("Process Tree?")
	}
	s.println("")
}

func (s *Simulator) notify(ctx context.Context, outcome *Outcome) {
	if s.listener != nil {
		s.listener(ctx, s.runID, outcome)
	}
}

func (s *Simulator) printTree() {
	s.print(s.renderer.String(s.tree))
}

func (s *Simulator) println(line string) {
	s.print(line + "\n")
}

func (s *Simulator) print(text string) {
	if s.werr != nil || text == "" {
		return
	}
	_, s.werr = io.WriteString(s.out, text)
}
