package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/commands/options"
	"tableflip.dev/slate/pkg/printers"
	"tableflip.dev/slate/pkg/store"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"done", "toggle"},
		Short:   "Toggle a task's completion",
		Example: `
slate complete <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")

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
			it, err := s.Toggle(io.ID)
			if err != nil {
				return output.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.List(it)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
