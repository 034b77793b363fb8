package options

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/ingest"
)

// PasteOptions carries the flags selecting how pasted text is routed.
type PasteOptions struct {
	ModeString   string
	TargetString string
}

func AddPasteArgs(cmd *cobra.Command, o *PasteOptions) {
	cmd.Flags().StringVarP(&o.ModeString, "mode", "m", "single",
		base.Wrap80("Distribution mode when the target is auto: 'single' sends every "+
			"line to the active list, 'group' splits lines under 'Heading:' "+
			"lines into lists of that name."))
	cmd.Flags().StringVar(&o.TargetString, "target", "auto",
		base.Wrap80("Routing target: 'inbox', 'today', 'active', or 'auto' to "+
			"defer to the mode."))
}

func (o *PasteOptions) GetMode() (ingest.Mode, error) {
	return ingest.ParseMode(o.ModeString)
}

func (o *PasteOptions) GetTarget() (ingest.Target, error) {
	return ingest.ParseTarget(o.TargetString)
}
