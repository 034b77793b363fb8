// Package app provides the high-level operations over the workspace so
// the CLI and TUI can share logic. Every mutation is synchronous,
// happens under one lock, and is followed by a persistence write; a
// failed write is logged and never fatal.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/slate/pkg/board"
	"tableflip.dev/slate/pkg/drag"
	"tableflip.dev/slate/pkg/ingest"
	"tableflip.dev/slate/pkg/reset"
	"tableflip.dev/slate/pkg/search"
	"tableflip.dev/slate/pkg/store"
	"tableflip.dev/slate/pkg/task"
)

// FadeDelay is how long a deleted task lingers in the pending state
// before it is actually removed, so the UI can fade it out.
const FadeDelay = 180 * time.Millisecond

var (
	ErrNotFound    = errors.New("app: task not found")
	ErrAmbiguousID = errors.New("app: id prefix matches multiple tasks")
)

// Service owns the workspace for the life of the process. All access
// goes through its lock; drag previews, timers, and the reset loop all
// serialize here.
type Service struct {
	Persistence store.Persistence

	mu      sync.Mutex
	ws      *board.Workspace
	engine  *drag.Engine
	pending map[string]struct{}
}

// NewService loads (or bootstraps) the workspace from persistence.
func NewService(ctx context.Context, p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	ws := p.LoadWorkspace(ctx)
	return &Service{
		Persistence: p,
		ws:          ws,
		engine:      drag.NewEngine(ws),
		pending:     make(map[string]struct{}),
	}, nil
}

// NewServiceWith wraps an existing workspace; used by tests and the
// testbed where persistence is absent or faked.
func NewServiceWith(ws *board.Workspace, p store.Persistence) *Service {
	return &Service{
		Persistence: p,
		ws:          ws,
		engine:      drag.NewEngine(ws),
		pending:     make(map[string]struct{}),
	}
}

// save persists the workspace after a mutation. Write failures are
// swallowed: the in-memory state stays authoritative and the next
// successful write catches up.
func (s *Service) save() {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.SaveWorkspace(s.ws); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
}

// Snapshot hands the workspace to fn under the service lock. fn must
// not retain the workspace beyond the call.
func (s *Service) Snapshot(fn func(ws *board.Workspace)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ws)
}

// Lists returns the list headers in display order.
func (s *Service) Lists() []*board.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*board.List, len(s.ws.Lists))
	copy(out, s.ws.Lists)
	return out
}

// Active returns the active list, or nil for an empty workspace.
func (s *Service) Active() *board.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.Active()
}

// SetActive switches the active list.
func (s *Service) SetActive(listID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ws.SetActive(listID) {
		return false
	}
	s.save()
	return true
}

// NewList appends an empty list with the given name.
func (s *Service) NewList(name string, autoReset bool) *board.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.ws.AddList(name)
	l.AutoReset = autoReset
	s.save()
	return l
}

// RemoveList deletes a list and everything it still holds.
func (s *Service) RemoveList(listID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ws.RemoveList(listID) {
		return false
	}
	s.save()
	return true
}

// RenameList updates a list's display name.
func (s *Service) RenameList(listID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.ws.Find(listID)
	if l == nil {
		return errors.New("app: list not found")
	}
	l.Name = name
	s.save()
	return nil
}

// Resolve finds a list by id or name, for CLI arguments that accept
// either.
func (s *Service) Resolve(ref string) *board.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l := s.ws.Find(ref); l != nil {
		return l
	}
	return s.ws.FindByName(ref)
}

// Add creates a task at the top of the given list (the active list
// when listID is empty).
func (s *Service) Add(listID, text string) (*task.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.ws.Find(listID)
	if l == nil && listID == "" {
		l = s.ws.Active()
	}
	if l == nil {
		return nil, errors.New("app: list not found")
	}
	it := task.New(text)
	l.Prepend([]*task.Item{it})
	s.save()
	return it, nil
}

// Edit replaces the text of the task with the given id.
func (s *Service) Edit(id, text string) (*task.Item, error) {
	return s.update(id, func(it *task.Item) { it.Text = text })
}

// Toggle flips the completion flag.
func (s *Service) Toggle(id string) (*task.Item, error) {
	return s.update(id, func(it *task.Item) { it.Done = !it.Done })
}

// SetPriority assigns the priority.
func (s *Service) SetPriority(id string, p task.Priority) (*task.Item, error) {
	return s.update(id, func(it *task.Item) { it.Priority = p })
}

// SetDue assigns or clears the due date.
func (s *Service) SetDue(id string, due *task.Date) (*task.Item, error) {
	return s.update(id, func(it *task.Item) { it.Due = due })
}

// Tag adds a tag; duplicate tags (case-insensitive) are dropped.
func (s *Service) Tag(id, tag string) (*task.Item, error) {
	return s.update(id, func(it *task.Item) { it.AddTag(tag) })
}

// Untag removes a tag.
func (s *Service) Untag(id, tag string) (*task.Item, error) {
	return s.update(id, func(it *task.Item) { it.RemoveTag(tag) })
}

func (s *Service) update(id string, fn func(*task.Item)) (*task.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.resolveItemID(id)
	if err != nil {
		return nil, err
	}
	it := s.ws.ItemByID(id)
	if it == nil {
		return nil, ErrNotFound
	}
	fn(it)
	s.save()
	return it, nil
}

// resolveItemID maps an id or a unique id prefix to a full task id, so
// the truncated ids the printers display stay usable as arguments.
// Caller holds the lock.
func (s *Service) resolveItemID(ref string) (string, error) {
	if s.ws.ItemByID(ref) != nil {
		return ref, nil
	}
	it, n := s.ws.ItemByPrefix(ref)
	switch {
	case n == 1:
		return it.ID, nil
	case n > 1:
		return "", ErrAmbiguousID
	}
	return "", ErrNotFound
}

// Delete marks the task pending removal so the host can fade it out.
// The host calls DeleteNow once the fade has run; until then the task
// stays in its list. Marking an already pending id is harmless.
func (s *Service) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.resolveItemID(id)
	if err != nil {
		return
	}
	s.pending[id] = struct{}{}
}

// DeleteNow removes the task immediately. A no-op for unknown ids,
// which makes the deferred removal idempotent.
func (s *Service) DeleteNow(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if full, err := s.resolveItemID(id); err == nil {
		id = full
	}
	delete(s.pending, id)
	if s.ws.RemoveItem(id) {
		s.save()
	}
}

// PendingDelete reports whether the task is fading out.
func (s *Service) PendingDelete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}

// ArchiveCompleted removes every completed task from one list and
// returns how many were dropped.
func (s *Service) ArchiveCompleted(listID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	dropped := s.ws.ArchiveCompleted(listID)
	if dropped > 0 {
		s.save()
	}
	return dropped
}

// Move transfers a task to the given list at targetIndex, the direct
// (non-gesture) form used by the CLI.
func (s *Service) Move(id, toListID string, targetIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.resolveItemID(id)
	if err != nil {
		return err
	}
	from := s.ws.ListOf(id)
	if from == nil {
		return ErrNotFound
	}
	if s.ws.MoveItem(id, from.ID, toListID, targetIndex) {
		s.save()
	}
	return nil
}

// DragPreview feeds one live-preview tick into the drag engine.
// Events are applied in arrival order under the service lock.
func (s *Service) DragPreview(draggedID, hoverID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine.Preview(draggedID, hoverID) {
		s.save()
		return true
	}
	return false
}

// DragCommit finalizes a drag gesture. An empty releaseID means the
// pointer was released outside any droppable region.
func (s *Service) DragCommit(draggedID, releaseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine.Commit(draggedID, releaseID) {
		s.save()
		return true
	}
	return false
}

// Watch exposes the persistence change stream so hosts can react to
// writes made by other processes.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// Reload replaces the in-memory workspace with the stored snapshot,
// picking up writes made by other processes. In-flight drag state is
// discarded along with the old workspace.
func (s *Service) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Persistence == nil {
		return
	}
	s.ws = s.Persistence.LoadWorkspace(ctx)
	s.engine = drag.NewEngine(s.ws)
}

// Ingest parses free text and routes the resulting tasks into the
// workspace. Returns how many tasks were created.
func (s *Service) Ingest(raw string, mode ingest.Mode, target ingest.Target) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	activeKey := ""
	if l := s.ws.Active(); l != nil {
		activeKey = l.ID
	}
	res := ingest.Parse(raw, mode, target, activeKey, time.Now())
	if res.Empty() {
		return 0
	}
	count := 0
	for _, b := range res.Buckets {
		count += len(b.Items)
	}
	if ingest.Apply(s.ws, res, target) {
		s.save()
		return count
	}
	return 0
}

// ResetDaily runs the auto-reset sweep for the current day. The first
// run on a machine only records the marker; sweeping starts once a
// prior day is on record.
func (s *Service) ResetDaily(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Persistence == nil {
		return false
	}
	last, ok := s.Persistence.LastReset()
	if !ok {
		if err := s.Persistence.SetLastReset(now); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
		}
		return false
	}
	if reset.SameDay(last, now) {
		return false
	}
	changed := reset.Sweep(s.ws, last, now)
	if err := s.Persistence.SetLastReset(now); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
	if changed {
		s.save()
	}
	return changed
}

// Search filters a list's tasks with the query predicate. An empty
// query returns the list as-is.
func (s *Service) Search(listID, query string) []*task.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.ws.Find(listID)
	if l == nil {
		return nil
	}
	return search.Filter(l.Items, query)
}
