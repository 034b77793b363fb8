package paste

import (
	"context"
	"fmt"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/board"
	"tableflip.dev/slate/pkg/ingest"
	"tableflip.dev/slate/pkg/printers"
	"tableflip.dev/slate/pkg/store"
)

type Paste struct {
	Text   string
	Mode   ingest.Mode
	Target ingest.Target

	Persistence store.Persistence
}

func (n *Paste) Do(ctx context.Context) error {
	s, err := app.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	count := s.Ingest(n.Text, n.Mode, n.Target)
	if count == 0 {
		fmt.Println("nothing to ingest")
		return nil
	}

	pp := printers.PrettyPrint{}
	switch count {
	case 1:
		fmt.Println("added 1 task")
	default:
		fmt.Printf("added %d tasks\n", count)
	}
	s.Snapshot(func(ws *board.Workspace) {
		pp.Summary(ws)
	})
	return nil
}
