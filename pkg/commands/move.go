package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/commands/options"
	"tableflip.dev/slate/pkg/runner/move"
	"tableflip.dev/slate/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	index := 0

	cmd := &cobra.Command{
		Use:   "move <task id> <list>",
		Short: "Move a task to another list",
		Example: `
slate move 171dff69 Errands
slate move 171dff69 Errands --index 0
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a task id and a destination list")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				ID:          io.ID,
				To:          args[1],
				Index:       index,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&index, "index", 0,
		"Position in the destination list; clamped to its length.")

	topLevel.AddCommand(cmd)
}
