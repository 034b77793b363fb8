package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/runner/get"
	"tableflip.dev/slate/pkg/store"
)

func addLists(topLevel *cobra.Command) {
	daily := false

	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list", "ls"},
		Short:   "Show every list in the workspace",
		Example: `
slate lists
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Persistence: p,
				ListLists:   true,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	newCmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a list",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a list name")
			}
			return nil
		},
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
			name := strings.Join(args, " ")
			if s.Resolve(name) != nil {
				return fmt.Errorf("list %q already exists", name)
			}
			s.NewList(name, daily)
			return nil
		},
	}
	newCmd.Flags().BoolVar(&daily, "daily", false,
		"Clear this list automatically every day.")

	rmCmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a list and everything it holds",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a list name")
			}
			return nil
		},
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
			name := strings.Join(args, " ")
			l := s.Resolve(name)
			if l == nil {
				return fmt.Errorf("no list named %q", name)
			}
			s.RemoveList(l.ID)
			return nil
		},
	}

	cmd.AddCommand(newCmd)
	cmd.AddCommand(rmCmd)
	topLevel.AddCommand(cmd)
}
