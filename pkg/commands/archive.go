package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/store"
)

func addArchive(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "archive [list]",
		Short: "Remove completed tasks from a list",
		Example: `
slate archive
slate archive Errands
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s, err := app.NewService(context.Background(), p)
			if err != nil {
				return err
			}
			l := s.Active()
			if len(args) > 0 {
				name := strings.Join(args, " ")
				if l = s.Resolve(name); l == nil {
					return fmt.Errorf("no list named %q", name)
				}
			}
			if l == nil {
				return nil
			}
			dropped := s.ArchiveCompleted(l.ID)
			switch dropped {
			case 1:
				fmt.Printf("archived 1 task from %s\n", l.Name)
			default:
				fmt.Printf("archived %d tasks from %s\n", dropped, l.Name)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
