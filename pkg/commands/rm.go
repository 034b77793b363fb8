package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/commands/options"
	"tableflip.dev/slate/pkg/store"
)

func addRm(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <task id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Example: `
slate rm <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s, err := app.NewService(context.Background(), p)
			if err != nil {
				return err
			}
			// The CLI has no fade-out to wait for.
			s.DeleteNow(io.ID)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
