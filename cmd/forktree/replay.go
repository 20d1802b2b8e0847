package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/viant/forktree/service/metrics"
	"github.com/viant/forktree/service/simulator"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "replay the action log of a stored run",
	Long: `
Replay re-applies the action log of a stored run. Presentation and reparent
flags override the stored settings, which makes it easy to compare policies
on the same log.
`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	recorder := metrics.New()
	srv, _, err := newService(ctx, cmd, recorder)
	if err != nil {
		return err
	}
	result, err := srv.Runtime().Replay(ctx, args[0], func(config *simulator.Config) {
		overrideSimulation(cmd, config)
	})
	if err != nil {
		return err
	}
	printRunID(cmd, result.ID)
	return finish(ctx, cmd, srv, recorder)
}
