package app

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/slate/pkg/board"
	"tableflip.dev/slate/pkg/ingest"
	"tableflip.dev/slate/pkg/store"
	"tableflip.dev/slate/pkg/task"
)

// memoryPersistence keeps everything in the struct so tests never touch
// disk. saves counts writes so tests can assert a mutation persisted.
type memoryPersistence struct {
	ws        *board.Workspace
	saves     int
	lastReset time.Time
	hasReset  bool
}

func (m *memoryPersistence) LoadWorkspace(ctx context.Context) *board.Workspace {
	if m.ws == nil {
		m.ws = store.Bootstrap()
	}
	return m.ws
}

func (m *memoryPersistence) SaveWorkspace(ws *board.Workspace) error {
	m.ws = ws
	m.saves++
	return nil
}

func (m *memoryPersistence) LastReset() (time.Time, bool) {
	return m.lastReset, m.hasReset
}

func (m *memoryPersistence) SetLastReset(day time.Time) error {
	m.lastReset = day
	m.hasReset = true
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newTestService(t *testing.T) (*Service, *memoryPersistence) {
	t.Helper()
	p := &memoryPersistence{}
	svc, err := NewService(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	return svc, p
}

func TestNewServiceBootstraps(t *testing.T) {
	svc, _ := newTestService(t)
	lists := svc.Lists()
	if len(lists) != 2 {
		t.Fatalf("want Inbox and Today, got %d lists", len(lists))
	}
	if a := svc.Active(); a == nil || a.Name != "Inbox" {
		t.Fatalf("active: %v", a)
	}
	if !lists[1].AutoReset {
		t.Fatal("Today should auto-reset")
	}
}

func TestNewServiceRequiresPersistence(t *testing.T) {
	if _, err := NewService(context.Background(), nil); err == nil {
		t.Fatal("expected an error")
	}
}

func TestAddPrepends(t *testing.T) {
	svc, p := newTestService(t)
	inbox := svc.Active()
	first, err := svc.Add(inbox.ID, "older")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Add("", "newer") // empty id targets the active list
	if err != nil {
		t.Fatal(err)
	}
	if inbox.Items[0].ID != second.ID || inbox.Items[1].ID != first.ID {
		t.Fatal("newest task should sit on top")
	}
	if p.saves != 2 {
		t.Fatalf("saves: %d", p.saves)
	}
}

func TestAddUnknownList(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Add("nope", "x"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestUpdateOperations(t *testing.T) {
	svc, _ := newTestService(t)
	it, _ := svc.Add("", "draft")

	if _, err := svc.Edit(it.ID, "final"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Toggle(it.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SetPriority(it.ID, task.High); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Tag(it.ID, "home"); err != nil {
		t.Fatal(err)
	}

	if it.Text != "final" || !it.Done || it.Priority != task.High || !it.HasTag("home") {
		t.Fatalf("item: %+v", it)
	}

	if _, err := svc.Untag(it.ID, "home"); err != nil {
		t.Fatal(err)
	}
	if it.HasTag("home") {
		t.Fatal("tag survived untag")
	}

	if _, err := svc.Edit("missing", "x"); err != ErrNotFound {
		t.Fatalf("err: %v", err)
	}
}

func TestDeleteMarksPendingUntilCallerRemoves(t *testing.T) {
	svc, _ := newTestService(t)
	it, _ := svc.Add("", "doomed")

	svc.Delete(it.ID)
	if !svc.PendingDelete(it.ID) {
		t.Fatal("task should be fading out")
	}

	// Nothing removes the task behind the caller's back: the service
	// has no timer goroutine, so the workspace only changes when the
	// host delivers the removal itself.
	time.Sleep(FadeDelay + 50*time.Millisecond)
	svc.Snapshot(func(ws *board.Workspace) {
		if ws.ItemByID(it.ID) == nil {
			t.Fatal("task removed without a DeleteNow call")
		}
	})

	// A second click during the fade must not double-remove.
	svc.Delete(it.ID)

	svc.DeleteNow(it.ID)
	if svc.PendingDelete(it.ID) {
		t.Fatal("pending marker survived removal")
	}
	svc.Snapshot(func(ws *board.Workspace) {
		if ws.ItemByID(it.ID) != nil {
			t.Fatal("task still present after removal")
		}
		if got := ws.Active().Items; len(got) != 0 {
			t.Fatalf("items left: %d", len(got))
		}
	})
}

func TestDeleteNowIsIdempotent(t *testing.T) {
	svc, p := newTestService(t)
	it, _ := svc.Add("", "x")
	saved := p.saves

	svc.DeleteNow(it.ID)
	svc.DeleteNow(it.ID)

	if p.saves != saved+1 {
		t.Fatalf("saves after double delete: %d, want %d", p.saves, saved+1)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Delete("missing")
	if svc.PendingDelete("missing") {
		t.Fatal("unknown ids never go pending")
	}
}

func TestLookupByIDPrefix(t *testing.T) {
	ws := store.Bootstrap()
	a := task.New("one")
	a.ID = "aaaa1111-0000-0000-0000-000000000000"
	b := task.New("two")
	b.ID = "aaaa2222-0000-0000-0000-000000000000"
	ws.Lists[0].Prepend([]*task.Item{a, b})
	svc := NewServiceWith(ws, &memoryPersistence{ws: ws})

	// The printers truncate uuids to 8 characters; those displayed ids
	// must resolve.
	it, err := svc.Toggle("aaaa1111")
	if err != nil {
		t.Fatal(err)
	}
	if it.ID != a.ID || !it.Done {
		t.Fatalf("toggled: %+v", it)
	}

	if _, err := svc.Edit("aaaa", "x"); err != ErrAmbiguousID {
		t.Fatalf("ambiguous prefix err: %v", err)
	}
	if _, err := svc.Edit("ffff", "x"); err != ErrNotFound {
		t.Fatalf("unknown prefix err: %v", err)
	}

	today := ws.Lists[1]
	if err := svc.Move("aaaa2222", today.ID, 0); err != nil {
		t.Fatal(err)
	}
	if len(today.Items) != 1 || today.Items[0].ID != b.ID {
		t.Fatal("move by prefix did not transfer")
	}

	svc.DeleteNow("aaaa1111")
	if ws.ItemByID(a.ID) != nil {
		t.Fatal("delete by prefix did not remove")
	}
}

func TestMoveAcrossLists(t *testing.T) {
	svc, _ := newTestService(t)
	lists := svc.Lists()
	inbox, today := lists[0], lists[1]
	it, _ := svc.Add(inbox.ID, "errand")

	if err := svc.Move(it.ID, today.ID, 0); err != nil {
		t.Fatal(err)
	}
	if len(inbox.Items) != 0 || len(today.Items) != 1 {
		t.Fatal("task did not transfer")
	}
	if err := svc.Move("missing", today.ID, 0); err != ErrNotFound {
		t.Fatalf("err: %v", err)
	}
}

func TestDragPreviewAndCommit(t *testing.T) {
	svc, _ := newTestService(t)
	lists := svc.Lists()
	inbox, today := lists[0], lists[1]
	a, _ := svc.Add(inbox.ID, "a")
	b, _ := svc.Add(today.ID, "b")

	if !svc.DragPreview(a.ID, b.ID) {
		t.Fatal("preview over a foreign task should move it")
	}
	if len(today.Items) != 2 {
		t.Fatal("preview is not visible in the workspace")
	}
	// Cross-list gestures are final at preview time; the release adds
	// nothing.
	if svc.DragCommit(a.ID, a.ID) {
		t.Fatal("commit after a cross-list preview must be a no-op")
	}
}

func TestIngestRoutesAndCounts(t *testing.T) {
	svc, _ := newTestService(t)
	raw := "groceries:\n- milk\n- eggs\nwork:\nreview PR"
	n := svc.Ingest(raw, ingest.ModeGroup, ingest.TargetAuto)
	if n != 3 {
		t.Fatalf("created %d tasks, want 3", n)
	}
	groceries := svc.Resolve("groceries")
	if groceries == nil || len(groceries.Items) != 2 {
		t.Fatalf("groceries: %v", groceries)
	}
	if work := svc.Resolve("work"); work == nil || len(work.Items) != 1 {
		t.Fatalf("work: %v", work)
	}
}

func TestIngestEmptyInput(t *testing.T) {
	svc, p := newTestService(t)
	saved := p.saves
	if n := svc.Ingest("   \n\n", ingest.ModeSingle, ingest.TargetAuto); n != 0 {
		t.Fatalf("created %d tasks from blank input", n)
	}
	if p.saves != saved {
		t.Fatal("blank input must not persist anything")
	}
}

func TestResetDailyFirstRunOnlyRecords(t *testing.T) {
	svc, p := newTestService(t)
	today := svc.Lists()[1]
	svc.Add(today.ID, "stretch")

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	if svc.ResetDaily(now) {
		t.Fatal("first run must not sweep")
	}
	if !p.hasReset || !p.lastReset.Equal(now) {
		t.Fatal("first run should record the marker")
	}
	if len(today.Items) != 1 {
		t.Fatal("task cleared on first run")
	}
}

func TestResetDailySweepsOnNewDay(t *testing.T) {
	svc, p := newTestService(t)
	lists := svc.Lists()
	inbox, today := lists[0], lists[1]
	svc.Add(inbox.ID, "keep")
	svc.Add(today.ID, "stretch")

	p.lastReset = time.Date(2026, 3, 1, 23, 0, 0, 0, time.Local)
	p.hasReset = true

	same := time.Date(2026, 3, 1, 23, 59, 0, 0, time.Local)
	if svc.ResetDaily(same) {
		t.Fatal("same day must not sweep")
	}

	next := time.Date(2026, 3, 2, 0, 5, 0, 0, time.Local)
	if !svc.ResetDaily(next) {
		t.Fatal("new day should sweep")
	}
	if len(today.Items) != 0 {
		t.Fatal("auto-reset list not cleared")
	}
	if len(inbox.Items) != 1 {
		t.Fatal("regular lists must be untouched")
	}
	if !p.lastReset.Equal(next) {
		t.Fatal("marker not advanced")
	}
}

func TestSearchScopedToList(t *testing.T) {
	svc, _ := newTestService(t)
	inbox := svc.Active()
	svc.Add(inbox.ID, "buy milk")
	it, _ := svc.Add(inbox.ID, "call mom")
	svc.Tag(it.ID, "family")

	got := svc.Search(inbox.ID, "#family")
	if len(got) != 1 || got[0].ID != it.ID {
		t.Fatalf("search: %v", got)
	}
	if got := svc.Search(inbox.ID, ""); len(got) != 2 {
		t.Fatalf("blank query should return everything, got %d", len(got))
	}
	if got := svc.Search("missing", "x"); got != nil {
		t.Fatal("unknown list returns nil")
	}
}

func TestListLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	l := svc.NewList("Errands", false)
	if svc.Resolve("errands") == nil {
		t.Fatal("resolve by name failed")
	}
	if err := svc.RenameList(l.ID, "Chores"); err != nil {
		t.Fatal(err)
	}
	if svc.Resolve("Chores") == nil {
		t.Fatal("rename not visible")
	}
	if !svc.SetActive(l.ID) {
		t.Fatal("set active failed")
	}
	if !svc.RemoveList(l.ID) {
		t.Fatal("remove failed")
	}
	if a := svc.Active(); a == nil || a.ID == l.ID {
		t.Fatal("active must fall back after removal")
	}
}

func TestArchiveCompleted(t *testing.T) {
	svc, _ := newTestService(t)
	inbox := svc.Active()
	a, _ := svc.Add(inbox.ID, "done one")
	svc.Add(inbox.ID, "open one")
	svc.Toggle(a.ID)

	if n := svc.ArchiveCompleted(inbox.ID); n != 1 {
		t.Fatalf("archived %d, want 1", n)
	}
	if len(inbox.Items) != 1 || inbox.Items[0].Done {
		t.Fatal("open task should remain")
	}
	if n := svc.ArchiveCompleted(inbox.ID); n != 0 {
		t.Fatalf("second archive dropped %d", n)
	}
}
