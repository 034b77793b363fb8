package board

import (
	"testing"

	"tableflip.dev/slate/pkg/task"
)

func seed(t *testing.T) *Workspace {
	t.Helper()
	ws := New()
	inbox := ws.AddList("Inbox")
	today := ws.AddList("Today")
	for _, text := range []string{"a", "b", "c"} {
		it := task.New(text)
		it.ID = "inbox-" + text
		inbox.Items = append(inbox.Items, it)
	}
	it := task.New("d")
	it.ID = "today-d"
	today.Items = append(today.Items, it)
	return ws
}

func texts(l *List) []string {
	out := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		out = append(out, it.Text)
	}
	return out
}

func same(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for n := range a {
		if a[n] != b[n] {
			return false
		}
	}
	return true
}

func TestItemByPrefix(t *testing.T) {
	ws := seed(t)

	it, n := ws.ItemByPrefix("inbox-a")
	if n != 1 || it == nil || it.ID != "inbox-a" {
		t.Fatalf("unique prefix: %v, %d", it, n)
	}
	if it, n := ws.ItemByPrefix("inbox-"); it != nil || n != 3 {
		t.Fatalf("ambiguous prefix: %v, %d", it, n)
	}
	if it, n := ws.ItemByPrefix("today"); n != 1 || it.ID != "today-d" {
		t.Fatalf("cross-list prefix: %v, %d", it, n)
	}
	if it, n := ws.ItemByPrefix("zzz"); it != nil || n != 0 {
		t.Fatalf("unknown prefix: %v, %d", it, n)
	}
	if it, n := ws.ItemByPrefix(""); it != nil || n != 0 {
		t.Fatalf("empty prefix: %v, %d", it, n)
	}
}

func TestMoveItemAcrossLists(t *testing.T) {
	ws := seed(t)
	inbox, today := ws.Lists[0], ws.Lists[1]

	if !ws.MoveItem("inbox-b", inbox.ID, today.ID, 0) {
		t.Fatal("expected move to apply")
	}
	if got := texts(inbox); !same(got, []string{"a", "c"}) {
		t.Fatalf("source after move: %v", got)
	}
	if got := texts(today); !same(got, []string{"b", "d"}) {
		t.Fatalf("destination after move: %v", got)
	}
}

func TestMoveItemConservesCount(t *testing.T) {
	ws := seed(t)
	inbox, today := ws.Lists[0], ws.Lists[1]
	before := ws.TotalItems()

	ws.MoveItem("inbox-a", inbox.ID, today.ID, 99) // index clamped
	ws.MoveItem("today-d", today.ID, inbox.ID, -5) // index clamped
	ws.MoveItem("missing", inbox.ID, today.ID, 0)  // silent no-op

	if got := ws.TotalItems(); got != before {
		t.Fatalf("total items changed: %d != %d", got, before)
	}
}

func TestMoveItemClampsIndex(t *testing.T) {
	ws := seed(t)
	inbox, today := ws.Lists[0], ws.Lists[1]

	ws.MoveItem("inbox-a", inbox.ID, today.ID, 99)
	if got := texts(today); !same(got, []string{"d", "a"}) {
		t.Fatalf("clamp high: %v", got)
	}
	ws.MoveItem("inbox-b", inbox.ID, today.ID, -1)
	if got := texts(today); !same(got, []string{"b", "d", "a"}) {
		t.Fatalf("clamp low: %v", got)
	}
}

func TestMoveItemSameIndexNoop(t *testing.T) {
	ws := seed(t)
	inbox := ws.Lists[0]

	if ws.MoveItem("inbox-b", inbox.ID, inbox.ID, 1) {
		t.Fatal("same list, same index should be a no-op")
	}
	if got := texts(inbox); !same(got, []string{"a", "b", "c"}) {
		t.Fatalf("order disturbed: %v", got)
	}
}

func TestMoveItemWrongSource(t *testing.T) {
	ws := seed(t)
	inbox, today := ws.Lists[0], ws.Lists[1]

	// The item lives in inbox, not today; the claimed source wins.
	if ws.MoveItem("inbox-a", today.ID, inbox.ID, 0) {
		t.Fatal("move with wrong source should not apply")
	}
}

func TestReorderWithin(t *testing.T) {
	ws := seed(t)
	inbox := ws.Lists[0]

	if !ws.ReorderWithin(inbox.ID, 0, 2) {
		t.Fatal("expected reorder to apply")
	}
	if got := texts(inbox); !same(got, []string{"b", "c", "a"}) {
		t.Fatalf("after reorder: %v", got)
	}
	if ws.ReorderWithin(inbox.ID, 0, 3) {
		t.Fatal("out-of-range index should not apply")
	}
	if ws.ReorderWithin(inbox.ID, 1, 1) {
		t.Fatal("same index should be a no-op")
	}
}

func TestUniqueOwnership(t *testing.T) {
	ws := seed(t)
	inbox, today := ws.Lists[0], ws.Lists[1]

	ws.MoveItem("inbox-a", inbox.ID, today.ID, 0)
	ws.ReorderWithin(today.ID, 0, 1)
	ws.MoveItem("inbox-a", today.ID, inbox.ID, 2)

	seen := make(map[string]int)
	for _, l := range ws.Lists {
		for _, it := range l.Items {
			seen[it.ID]++
		}
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("item %s appears %d times", id, count)
		}
	}
}

func TestListOf(t *testing.T) {
	ws := seed(t)
	if l := ws.ListOf("today-d"); l == nil || l.Name != "Today" {
		t.Fatalf("wrong owner: %v", l)
	}
	if l := ws.ListOf("missing"); l != nil {
		t.Fatalf("expected no owner, got %s", l.Name)
	}
}

func TestFindByName(t *testing.T) {
	ws := seed(t)
	if ws.FindByName("  inbox ") == nil {
		t.Fatal("name lookup should ignore case and whitespace")
	}
	if ws.FindByName("nothing") != nil {
		t.Fatal("unexpected match")
	}
	if l := ws.EnsureList("INBOX"); l.ID != ws.Lists[0].ID {
		t.Fatal("ensure should reuse the existing list")
	}
	if l := ws.EnsureList("Errands"); l.ID == "" || len(ws.Lists) != 3 {
		t.Fatal("ensure should append a new list")
	}
}

func TestRemoveListActiveFallback(t *testing.T) {
	ws := seed(t)
	today := ws.Lists[1]
	ws.SetActive(today.ID)

	if !ws.RemoveList(today.ID) {
		t.Fatal("expected removal")
	}
	if got := ws.Active(); got == nil || got.Name != "Inbox" {
		t.Fatalf("active should fall back to first list, got %v", got)
	}

	ws.RemoveList(ws.Lists[0].ID)
	if ws.Active() != nil {
		t.Fatal("empty workspace has no active list")
	}
}

func TestPrependKeepsOrder(t *testing.T) {
	ws := seed(t)
	today := ws.Lists[1]

	a := task.New("x")
	b := task.New("y")
	today.Prepend([]*task.Item{a, b})

	if got := texts(today); !same(got, []string{"x", "y", "d"}) {
		t.Fatalf("after prepend: %v", got)
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	ws := seed(t)
	if !ws.RemoveItem("inbox-b") {
		t.Fatal("expected removal")
	}
	if ws.RemoveItem("inbox-b") {
		t.Fatal("second removal should be a no-op")
	}
	if got := ws.TotalItems(); got != 3 {
		t.Fatalf("total after double remove: %d", got)
	}
}

func TestArchiveCompleted(t *testing.T) {
	ws := seed(t)
	inbox := ws.Lists[0]
	inbox.Items[0].Done = true
	inbox.Items[2].Done = true

	if got := ws.ArchiveCompleted(inbox.ID); got != 2 {
		t.Fatalf("archived %d, want 2", got)
	}
	if got := texts(inbox); !same(got, []string{"b"}) {
		t.Fatalf("after archive: %v", got)
	}
}
