package get

import (
	"context"
	"fmt"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/board"
	"tableflip.dev/slate/pkg/printers"
	"tableflip.dev/slate/pkg/search"
	"tableflip.dev/slate/pkg/store"
)

type Get struct {
	ShowID    bool
	List      string
	All       bool
	Query     string
	ListLists bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	s, err := app.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.ListLists {
		s.Snapshot(func(ws *board.Workspace) {
			pp.Summary(ws)
		})
		return nil
	}

	show := func(l *board.List) {
		items := search.Filter(l.Items, n.Query)
		pp.TitleWithCount(l.Name, len(items))
		pp.List(items...)
	}

	if n.All {
		for _, l := range s.Lists() {
			show(l)
		}
		return nil
	}

	l := s.Active()
	if n.List != "" {
		if l = s.Resolve(n.List); l == nil {
			return fmt.Errorf("no list named %q", n.List)
		}
	}
	if l == nil {
		pp.Title("(no lists)")
		return nil
	}
	show(l)
	return nil
}
