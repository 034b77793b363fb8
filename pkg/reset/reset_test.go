package reset

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"tableflip.dev/slate/pkg/board"
	"tableflip.dev/slate/pkg/task"
)

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			"same day different hours",
			time.Date(2026, 5, 4, 0, 1, 0, 0, time.Local),
			time.Date(2026, 5, 4, 23, 59, 0, 0, time.Local),
			true,
		},
		{
			"midnight boundary",
			time.Date(2026, 5, 4, 23, 59, 0, 0, time.Local),
			time.Date(2026, 5, 5, 0, 0, 1, 0, time.Local),
			false,
		},
		{
			"same day-of-month different month",
			time.Date(2026, 5, 4, 12, 0, 0, 0, time.Local),
			time.Date(2026, 6, 4, 12, 0, 0, 0, time.Local),
			false,
		},
		{
			"same date different year",
			time.Date(2025, 5, 4, 12, 0, 0, 0, time.Local),
			time.Date(2026, 5, 4, 12, 0, 0, 0, time.Local),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Fatalf("SameDay = %v, want %v", got, tt.want)
			}
		})
	}
}

func sweepWorkspace() *board.Workspace {
	ws := &board.Workspace{}
	inbox := ws.AddList("Inbox")
	inbox.Prepend([]*task.Item{task.New("keep me")})
	today := ws.AddList("Today")
	today.AutoReset = true
	today.Prepend([]*task.Item{task.New("stretch"), task.New("water plants")})
	return ws
}

func TestSweepClearsFlaggedLists(t *testing.T) {
	ws := sweepWorkspace()
	last := time.Date(2026, 5, 4, 22, 0, 0, 0, time.Local)
	now := time.Date(2026, 5, 5, 8, 0, 0, 0, time.Local)

	if !Sweep(ws, last, now) {
		t.Fatal("sweep should report a change")
	}
	if n := len(ws.Lists[1].Items); n != 0 {
		t.Fatalf("auto-reset list still holds %d tasks", n)
	}
	if n := len(ws.Lists[0].Items); n != 1 {
		t.Fatalf("regular list was touched, %d tasks left", n)
	}
}

func TestSweepSameDayNoop(t *testing.T) {
	ws := sweepWorkspace()
	last := time.Date(2026, 5, 4, 8, 0, 0, 0, time.Local)
	now := time.Date(2026, 5, 4, 22, 0, 0, 0, time.Local)

	if Sweep(ws, last, now) {
		t.Fatal("same-day sweep must be a no-op")
	}
	if n := len(ws.Lists[1].Items); n != 2 {
		t.Fatalf("tasks cleared on the same day, %d left", n)
	}
}

func TestSweepZeroMarkerClears(t *testing.T) {
	ws := sweepWorkspace()
	if !Sweep(ws, time.Time{}, time.Now()) {
		t.Fatal("a zero marker counts as a stale day")
	}
}

func TestSweepNothingToClear(t *testing.T) {
	ws := &board.Workspace{}
	ws.AddList("Inbox")
	empty := ws.AddList("Today")
	empty.AutoReset = true
	if Sweep(ws, time.Time{}, time.Now()) {
		t.Fatal("empty lists mean no change")
	}
}

func TestRunEveryRunsImmediatelyAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		RunEvery(ctx, time.Hour, func(now time.Time) {
			calls.Add(1)
		})
	}()

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("check never ran")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop ignored cancellation")
	}
	if calls.Load() != 1 {
		t.Fatalf("calls: %d", calls.Load())
	}
}
