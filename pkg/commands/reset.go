package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/reset"
	"tableflip.dev/slate/pkg/runner/sweep"
	"tableflip.dev/slate/pkg/store"
)

func addReset(topLevel *cobra.Command) {
	watch := false
	interval := reset.DefaultInterval

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear daily lists when the calendar day changes",
		Example: `
slate reset
slate reset --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sweep.Sweep{
				Watch:       watch,
				Interval:    interval,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep running and re-check once a minute.")
	cmd.Flags().DurationVar(&interval, "interval", time.Minute,
		"How often to re-check while watching.")

	topLevel.AddCommand(cmd)
}
