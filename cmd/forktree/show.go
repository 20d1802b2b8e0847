package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/forktree/service/dao"
	"github.com/viant/forktree/service/dao/run"
	"github.com/viant/forktree/service/metrics"
	"github.com/viant/forktree/service/simulator"
)

var showPolicy string

var showCmd = &cobra.Command{
	Use:   "show [<run-id>]",
	Short: "show a stored run, or list stored runs",
	Long: `
Show prints the action log, outcomes and final tree of a stored run. Without a
run id it lists the stored runs, optionally only those using --policy.
Requires --store (or a config with store.url).
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(
		&showPolicy, "policy", "", "list only runs with this reparent policy (root or local)")
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	srv, _, err := newService(ctx, cmd, metrics.New())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		var parameters []*dao.Parameter
		if showPolicy != "" {
			parameters = append(parameters, dao.NewParameter(run.FieldPolicy, showPolicy))
		}
		runs, err := srv.Runtime().Runs(ctx, parameters...)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Fprintf(out, "%s %s %s %d actions\n", r.ID, r.StartedAt.Format("2006-01-02T15:04:05"), r.Policy, len(r.Actions))
		}
		return nil
	}
	result, err := srv.Runtime().Show(ctx, args[0])
	if err != nil {
		return err
	}
	printResult(cmd, result)
	return nil
}

func printResult(cmd *cobra.Command, r *simulator.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:      %s\n", r.ID)
	fmt.Fprintf(out, "started:  %s\n", r.StartedAt.Format("2006-01-02T15:04:05"))
	fmt.Fprintf(out, "policy:   %s\n", r.Policy)
	fmt.Fprintf(out, "counters: actions=%d forked=%d exited=%d rejected=%d live=%d\n",
		r.Counters.Actions, r.Counters.Forked, r.Counters.Exited, r.Counters.Rejected, r.Counters.Live)
	for i, o := range r.Outcomes {
		fmt.Fprintf(out, "%3d %-8s %s\n", i+1, o.Action, o.Description)
	}
	fmt.Fprint(out, r.FinalTree)
}
