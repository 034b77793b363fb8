package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/commands/options"
	"tableflip.dev/slate/pkg/runner/add"
	"tableflip.dev/slate/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	no := &options.AddOptions{}
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
slate add buy milk
slate add --list Errands --priority high return library books
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			no.Message = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			priority, err := no.GetPriority()
			if err != nil {
				return err
			}
			due, err := no.GetDue()
			if err != nil {
				return err
			}

			s := add.Add{
				Persistence: p,
				Message:     no.Message,
				List:        lo.List,
				Priority:    priority,
				Due:         due,
				Tags:        no.Tags,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, no)
	options.AddListArgs(cmd, lo)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
