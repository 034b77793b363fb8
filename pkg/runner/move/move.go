package move

import (
	"context"
	"fmt"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/printers"
	"tableflip.dev/slate/pkg/store"
)

type Move struct {
	ID    string
	To    string
	Index int

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	s, err := app.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	to := s.Resolve(n.To)
	if to == nil {
		return fmt.Errorf("no list named %q", n.To)
	}
	if err := s.Move(n.ID, to.ID, n.Index); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(to.Name)
	pp.List(to.Items...)
	return nil
}
