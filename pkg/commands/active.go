package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/store"
)

func addActive(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "active [list]",
		Short: "Show or switch the active list",
		Example: `
slate active
slate active Errands
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
			if len(args) == 0 {
				if l := s.Active(); l != nil {
					fmt.Println(l.Name)
				}
				return nil
			}
			name := strings.Join(args, " ")
			l := s.Resolve(name)
			if l == nil {
				return fmt.Errorf("no list named %q", name)
			}
			s.SetActive(l.ID)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
