// Command forktree runs process tree simulations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/viant/forktree"
	"github.com/viant/forktree/model/action"
	"github.com/viant/forktree/service/event"
	"github.com/viant/forktree/service/metrics"
	"github.com/viant/forktree/service/simulator"
	"github.com/viant/forktree/tracing"
)

var (
	configURL   string
	storeURL    string
	logLevel    string
	traceOn     bool
	traceFile   string
	dumpMetrics bool
	showEvents  bool
	actionList  string
	flagged     = simulator.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "forktree [command] (flags)",
	Short: "process tree fork/exit simulator",
	Long: `forktree prints a process tree as random or explicit fork and exit
actions are applied to it. Without -c the answers are hidden.`,
	SilenceUsage: true,
}

func init() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(runCmd, showCmd, replayCmd)

	for _, cmd := range []*cobra.Command{runCmd, showCmd, replayCmd} {
		cmd.Flags().StringVar(
			&configURL, "config", "", "yaml config location (file path or afs URL)")
		cmd.Flags().StringVar(
			&storeURL, "store", "", "run store location; runs are kept in memory when empty")
		cmd.Flags().StringVar(
			&logLevel, "log-level", "", "log level: debug, info, warn or error")
	}
	for _, cmd := range []*cobra.Command{runCmd, replayCmd} {
		cmd.Flags().BoolVarP(
			&flagged.ShowTree, "show-tree", "t", false, "show the tree after each action and ask for the action")
		cmd.Flags().BoolVarP(
			&flagged.JustFinal, "just-final", "F", false, "print only the initial and final trees")
		cmd.Flags().BoolVarP(
			&flagged.LeafOnly, "leaf-only", "l", false, "only processes without children may exit")
		cmd.Flags().BoolVarP(
			&flagged.LocalReparent, "local-reparent", "R", false, "reparent orphans to the exiting process's parent instead of the root")
		cmd.Flags().StringVarP(
			&flagged.PrintStyle, "print-style", "P", flagged.PrintStyle, "tree style: basic, line1, line2 or fancy")
		cmd.Flags().BoolVarP(
			&flagged.Solve, "solve", "c", false, "print the answers")
		cmd.Flags().BoolVar(
			&flagged.ShowDiff, "diff", false, "print a unified diff of each tree change")
		cmd.Flags().BoolVar(
			&traceOn, "trace", false, "export OpenTelemetry spans")
		cmd.Flags().StringVar(
			&traceFile, "trace-file", "", "span output file; stdout when empty")
		cmd.Flags().BoolVar(
			&dumpMetrics, "metrics", false, "print metrics to stderr when done")
		cmd.Flags().BoolVar(
			&showEvents, "events", false, "print the outcome events to stderr when done")
	}

	runCmd.Flags().Uint64VarP(
		&flagged.Seed, "seed", "s", 0, "random seed; 0 seeds from the clock")
	runCmd.Flags().Float64VarP(
		&flagged.ForkPercentage, "forks", "f", flagged.ForkPercentage, "probability in [0,1] that a generated action is a fork")
	runCmd.Flags().StringVarP(
		&actionList, "actions", "A", "", "explicit comma separated action list, e.g. a+b,b+c,b-")
	runCmd.Flags().IntVarP(
		&flagged.MaxActions, "max-actions", "a", flagged.MaxActions, "number of actions to generate")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newService builds the service from --config, then applies the command line
// flags that were set explicitly.
func newService(ctx context.Context, cmd *cobra.Command, recorder *metrics.Recorder) (*forktree.Service, *forktree.Config, error) {
	config := forktree.DefaultConfig()
	if configURL != "" {
		loaded, err := forktree.LoadConfig(ctx, configURL)
		if err != nil {
			return nil, nil, err
		}
		config = loaded
	}
	if storeURL != "" {
		config.Store.URL = storeURL
	}
	if logLevel != "" {
		config.Log.Level = logLevel
	}
	if traceOn {
		config.Tracing.Enabled = true
	}
	if showEvents {
		config.Events.Enabled = true
	}
	if traceFile != "" {
		config.Tracing.OutputFile = traceFile
	}
	overrideSimulation(cmd, config.Simulation)
	srv, err := forktree.NewFromConfig(ctx, config,
		forktree.WithOutput(cmd.OutOrStdout()),
		forktree.WithMetrics(recorder))
	if err != nil {
		return nil, nil, err
	}
	return srv, config, nil
}

// overrideSimulation copies every explicitly set simulation flag into target.
func overrideSimulation(cmd *cobra.Command, target *simulator.Config) {
	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flag := flags.Lookup(name); flag != nil && flag.Changed {
			apply()
		}
	}
	set("show-tree", func() { target.ShowTree = flagged.ShowTree })
	set("just-final", func() { target.JustFinal = flagged.JustFinal })
	set("leaf-only", func() { target.LeafOnly = flagged.LeafOnly })
	set("local-reparent", func() { target.LocalReparent = flagged.LocalReparent })
	set("print-style", func() { target.PrintStyle = flagged.PrintStyle })
	set("solve", func() { target.Solve = flagged.Solve })
	set("diff", func() { target.ShowDiff = flagged.ShowDiff })
	set("seed", func() { target.Seed = flagged.Seed })
	set("forks", func() { target.ForkPercentage = flagged.ForkPercentage })
	set("max-actions", func() { target.MaxActions = flagged.MaxActions })
	set("actions", func() { target.Actions = action.Split(actionList) })
}

// finish flushes spans, prints events and dumps metrics.
func finish(ctx context.Context, cmd *cobra.Command, srv *forktree.Service, recorder *metrics.Recorder) error {
	if err := tracing.Shutdown(ctx); err != nil {
		return err
	}
	if showEvents && srv.Events() != nil {
		publisher := srv.Events()
		_, err := publisher.Drain(ctx, func(evt *event.Event[simulator.Outcome]) error {
			_, err := fmt.Fprintf(cmd.ErrOrStderr(), "event: %d %s %s\n", evt.Context.Step, evt.Context.EventType, evt.Data.Description)
			return err
		})
		if err != nil {
			return err
		}
		if lost := publisher.DeadLetters(); lost > 0 {
			return errors.Newf("%d events could not be written", lost)
		}
	}
	if dumpMetrics {
		return recorder.Write(cmd.ErrOrStderr())
	}
	return nil
}

func printRunID(cmd *cobra.Command, runID string) {
	fmt.Fprintf(cmd.ErrOrStderr(), "run: %s\n", runID)
}
