package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "slate",
		Short: base.Wrap80("Personal task lists on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addLists(topLevel)
	addMove(topLevel)
	addComplete(topLevel)
	addRm(topLevel)
	addArchive(topLevel)
	addPaste(topLevel)
	addActive(topLevel)
	addReset(topLevel)
	addVersion(topLevel)
}
