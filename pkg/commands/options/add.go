package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/task"
)

// AddOptions carries the flags for creating a task.
type AddOptions struct {
	Message        string
	PriorityString string
	DueString      string
	Tags           []string
}

func AddTaskArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.PriorityString, "priority", "p", "",
		"Task priority: low, medium, or high.")
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Due date for the task, example: --due="2026-02-28".`)
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tags to attach; repeatable.")
}

func (o *AddOptions) GetPriority() (task.Priority, error) {
	return task.ParsePriority(o.PriorityString)
}

func (o *AddOptions) GetDue() (*task.Date, error) {
	if o.DueString == "" {
		return nil, nil
	}
	return task.ParseDate(o.DueString)
}
