// Package reset clears lists flagged for daily reset. The sweep is a
// date-only comparison against a persisted last-reset marker, not a
// precise midnight timer: whenever the calendar day changes, flagged
// lists drop their tasks.
package reset

import (
	"context"
	"time"

	"tableflip.dev/slate/pkg/board"
)

// DefaultInterval is how often the sweep re-checks the calendar day.
const DefaultInterval = time.Minute

// SameDay reports whether two times fall on the same calendar day in
// local time.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// Sweep clears every auto-reset list when now is a different day than
// last. Reports whether the workspace changed. A zero last counts as a
// different day, so the first sweep after bootstrap clears stale tasks.
func Sweep(ws *board.Workspace, last, now time.Time) bool {
	if !last.IsZero() && SameDay(last, now) {
		return false
	}
	changed := false
	for _, l := range ws.Lists {
		if !l.AutoReset || len(l.Items) == 0 {
			continue
		}
		l.Items = nil
		changed = true
	}
	return changed
}

// RunEvery invokes check on the interval until ctx is cancelled. The
// callback owns locking and persistence; this loop only supplies the
// clock ticks. check runs once immediately so a long-dormant workspace
// is swept at startup rather than a minute later.
func RunEvery(ctx context.Context, interval time.Duration, check func(now time.Time)) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	check(time.Now())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			check(now)
		}
	}
}
