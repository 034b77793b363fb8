// Package drag interprets a pointer-driven drag gesture over the board:
// a stream of live-preview events while the pointer moves, then a single
// commit event at release. Cross-list previews mutate the workspace
// immediately, so at any instant the board shows where the task would
// land if the drag ended now. Same-list reordering is deferred to the
// commit to avoid reshuffling the list on every pointer tick.
package drag

import "tableflip.dev/slate/pkg/board"

// Engine applies drag events to a workspace. Events must arrive in
// order; each preview depends on the workspace state left by the
// previous one.
type Engine struct {
	ws *board.Workspace
}

func NewEngine(ws *board.Workspace) *Engine {
	return &Engine{ws: ws}
}

// target resolves a hover or release id into a destination list and an
// insertion index. The id names either a list (hovering its empty
// space; index = end) or a task (index = that task's position in its
// list).
func (e *Engine) target(id string) (*board.List, int, bool) {
	if l := e.ws.Find(id); l != nil {
		return l, len(l.Items), true
	}
	if l := e.ws.ListOf(id); l != nil {
		at := l.IndexOf(id)
		if at < 0 {
			at = len(l.Items)
		}
		return l, at, true
	}
	return nil, 0, false
}

// Preview handles one live-preview tick for the dragged task hovering
// over hoverID. Unknown ids and same-list hovers do nothing; a
// cross-list hover transfers the task to the hovered position at once.
// Reports whether the workspace changed.
func (e *Engine) Preview(draggedID, hoverID string) bool {
	from := e.ws.ListOf(draggedID)
	if from == nil {
		return false
	}
	to, at, ok := e.target(hoverID)
	if !ok || to.ID == from.ID {
		return false
	}
	return e.ws.MoveItem(draggedID, from.ID, to.ID, at)
}

// Commit finalizes the gesture. An empty releaseID means the task was
// dropped outside any droppable region; the workspace already reflects
// the last preview, so nothing further happens. A cross-list release
// was likewise already applied by the preview stream. A same-list
// release performs the deferred reorder. Reports whether the workspace
// changed.
func (e *Engine) Commit(draggedID, releaseID string) bool {
	if releaseID == "" {
		return false
	}
	from := e.ws.ListOf(draggedID)
	if from == nil {
		return false
	}
	to, at, ok := e.target(releaseID)
	if !ok || to.ID != from.ID {
		return false
	}
	old := from.IndexOf(draggedID)
	if old < 0 {
		return false
	}
	// Release on the list itself lands the task at the end.
	if at >= len(from.Items) {
		at = len(from.Items) - 1
	}
	if at < 0 {
		at = 0
	}
	if at == old {
		return false
	}
	return e.ws.ReorderWithin(from.ID, old, at)
}
