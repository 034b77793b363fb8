package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/commands/options"
	"tableflip.dev/slate/pkg/runner/get"
	"tableflip.dev/slate/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}
	query := ""

	cmd := &cobra.Command{
		Use:   "get [list]",
		Short: "Show the tasks of a list",
		Example: `
slate get
slate get Errands
slate get --all
slate get --query "#home milk"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				lo.List = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Persistence: p,
				List:        lo.List,
				All:         lo.All,
				Query:       query,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "",
		base.Wrap80("Filter tasks: space-separated tokens, all must match; "+
			"#token matches a tag exactly, anything else matches text or tag."))

	options.AddAllListsArg(cmd, lo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
