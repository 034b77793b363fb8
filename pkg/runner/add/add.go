package add

import (
	"context"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/printers"
	"tableflip.dev/slate/pkg/store"
	"tableflip.dev/slate/pkg/task"
)

type Add struct {
	List     string
	Message  string
	Priority task.Priority
	Due      *task.Date
	Tags     []string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	s, err := app.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	listID := ""
	if n.List != "" {
		l := s.Resolve(n.List)
		if l == nil {
			l = s.NewList(n.List, false)
		}
		listID = l.ID
	}

	it, err := s.Add(listID, n.Message)
	if err != nil {
		return err
	}
	if _, err := s.SetPriority(it.ID, n.Priority); err != nil {
		return err
	}
	if n.Due != nil {
		if _, err := s.SetDue(it.ID, n.Due); err != nil {
			return err
		}
	}
	for _, tag := range n.Tags {
		if _, err := s.Tag(it.ID, tag); err != nil {
			return err
		}
	}

	l := s.Resolve(listID)
	if l == nil {
		l = s.Active()
	}
	if l != nil {
		pp := printers.PrettyPrint{}
		pp.Title(l.Name)
		pp.List(l.Items...)
	}
	return nil
}
