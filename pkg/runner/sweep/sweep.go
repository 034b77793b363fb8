package sweep

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/reset"
	"tableflip.dev/slate/pkg/store"
)

// Sweep runs the daily auto-reset check, once or on a loop.
type Sweep struct {
	Watch    bool
	Interval time.Duration

	Persistence store.Persistence
}

func (n *Sweep) Do(ctx context.Context) error {
	s, err := app.NewService(ctx, n.Persistence)
	if err != nil {
		return err
	}

	check := func(now time.Time) {
		if s.ResetDaily(now) {
			fmt.Printf("cleared daily lists for %s\n", now.Format("2006-01-02"))
		}
	}

	if !n.Watch {
		check(time.Now())
		return nil
	}
	reset.RunEvery(ctx, n.Interval, check)
	return nil
}
