package options

import (
	"github.com/spf13/cobra"
)

// IDOptions captures the task id argument shared by mutating commands.
type IDOptions struct {
	ID     string
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "id", "i", false,
		"Show task ids in the output.")
}
