package ingest

import (
	"tableflip.dev/slate/pkg/board"
)

// Apply routes parsed buckets into the workspace. Each bucket key is
// resolved as a list id first, then as a name, and failing both a new
// list is appended, so buckets materialize in first-appearance order.
// New tasks are prepended so fresh arrivals surface at the top of
// their list.
//
// Afterward the active list may switch: an Inbox target always
// switches (Inbox is the catch-all and is created on demand), a Today
// target switches only when a Today list already existed before the
// ingestion ran. When no Today list exists a Today-targeted ingestion
// falls back to the active list rather than fabricating one the user
// never created. Reports whether the workspace changed.
func Apply(ws *board.Workspace, res *Result, target Target) bool {
	if res == nil || res.Empty() {
		return false
	}

	hadToday := ws.FindByName("Today") != nil

	changed := false
	for _, b := range res.Buckets {
		if len(b.Items) == 0 {
			continue
		}
		l := resolve(ws, b.Key, target)
		if l == nil {
			continue
		}
		l.Prepend(b.Items)
		changed = true
	}

	if !changed {
		return false
	}

	switch target {
	case TargetInbox:
		if l := ws.FindByName("Inbox"); l != nil {
			ws.SetActive(l.ID)
		}
	case TargetToday:
		if hadToday {
			if l := ws.FindByName("Today"); l != nil {
				ws.SetActive(l.ID)
			}
		}
	}
	return true
}

func resolve(ws *board.Workspace, key string, target Target) *board.List {
	if l := ws.Find(key); l != nil {
		return l
	}
	// A Today target without a Today list lands on the active list
	// instead of creating one.
	if target == TargetToday && ws.FindByName("Today") == nil {
		if l := ws.Active(); l != nil {
			return l
		}
	}
	if key == "" {
		return ws.Active()
	}
	return ws.EnsureList(key)
}
