package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/slate/pkg/commands/options"
	"tableflip.dev/slate/pkg/runner/paste"
	"tableflip.dev/slate/pkg/store"
)

func addPaste(topLevel *cobra.Command) {
	po := &options.PasteOptions{}

	cmd := &cobra.Command{
		Use:     "paste [text]",
		Aliases: []string{"ingest"},
		Short:   "Turn pasted text into tasks",
		Long: base.Wrap80("Reads text from the arguments, or stdin when no " +
			"arguments are given, and turns each line into a task. In group " +
			"mode a line like 'Groceries:' routes the lines after it into a " +
			"list of that name, and leading bullet markers (-, *, •, 1.) are " +
			"stripped."),
		Example: `
pbpaste | slate paste --mode group
slate paste --target inbox "call the bank"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			text := strings.Join(args, " ")
			if text == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				text = string(data)
			}
			if strings.TrimSpace(text) == "" {
				return errors.New("nothing to paste")
			}

			mode, err := po.GetMode()
			if err != nil {
				return err
			}
			target, err := po.GetTarget()
			if err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := paste.Paste{
				Text:        text,
				Mode:        mode,
				Target:      target,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddPasteArgs(cmd, po)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
