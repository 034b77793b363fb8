// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ListOptions captures common list selection flags for commands.
type ListOptions struct {
	List string
	All  bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVarP(&o.List, "list", "l", "",
		"List to target, by name or id. Defaults to the active list.")
}

func AddAllListsArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVarP(&o.All, "all", "A", false,
		"Target every list in the workspace.")
}
