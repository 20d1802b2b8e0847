package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/viant/forktree/service/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run a random or explicit simulation",
	Long: `
Run applies an action log to a tree rooted at "a" and prints the tree. With
-A the log is taken from the command line, otherwise -a actions are generated
with -f fork probability from seed -s.
`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	recorder := metrics.New()
	srv, config, err := newService(ctx, cmd, recorder)
	if err != nil {
		return err
	}
	result, err := srv.Runtime().Run(ctx, config.Simulation)
	if err != nil {
		return err
	}
	printRunID(cmd, result.ID)
	return finish(ctx, cmd, srv, recorder)
}
