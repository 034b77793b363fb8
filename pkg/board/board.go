// Package board holds the ordering model: a workspace of named lists,
// each an ordered sequence of tasks. Every other component reads and
// writes workspace state through this package.
package board

import (
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/slate/pkg/task"
)

// List is a named, ordered group of tasks. Order is significant: it is
// the display and priority order.
type List struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Items     []*task.Item `json:"items"`
	AutoReset bool         `json:"autoReset,omitempty"`
	Archived  bool         `json:"archived,omitempty"`
}

// Workspace is the full collection of lists plus the active-list
// reference. List order is insertion order and is preserved.
type Workspace struct {
	Lists    []*List `json:"lists"`
	ActiveID string  `json:"active"`
}

// New returns an empty workspace.
func New() *Workspace {
	return &Workspace{}
}

// SameName reports whether two list names are equal under the lookup
// rule: case-insensitive, surrounding whitespace ignored.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Find returns the list with the given id, or nil.
func (w *Workspace) Find(listID string) *List {
	for _, l := range w.Lists {
		if l.ID == listID {
			return l
		}
	}
	return nil
}

// FindByName returns the first list whose name matches under SameName,
// or nil.
func (w *Workspace) FindByName(name string) *List {
	for _, l := range w.Lists {
		if SameName(l.Name, name) {
			return l
		}
	}
	return nil
}

// AddList appends a new empty list and returns it.
func (w *Workspace) AddList(name string) *List {
	l := &List{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	w.Lists = append(w.Lists, l)
	if w.ActiveID == "" {
		w.ActiveID = l.ID
	}
	return l
}

// EnsureList returns the list matching name, creating it at the end of
// the workspace when absent.
func (w *Workspace) EnsureList(name string) *List {
	if l := w.FindByName(name); l != nil {
		return l
	}
	return w.AddList(name)
}

// RemoveList deletes the list and every task it still holds. When the
// active list is removed the reference falls back to the first
// remaining list. Reports whether a list was removed.
func (w *Workspace) RemoveList(listID string) bool {
	for n, l := range w.Lists {
		if l.ID == listID {
			w.Lists = append(w.Lists[:n], w.Lists[n+1:]...)
			if w.ActiveID == listID {
				w.ActiveID = ""
				if len(w.Lists) > 0 {
					w.ActiveID = w.Lists[0].ID
				}
			}
			return true
		}
	}
	return false
}

// Active returns the active list, or nil for an empty workspace.
func (w *Workspace) Active() *List {
	if l := w.Find(w.ActiveID); l != nil {
		return l
	}
	if len(w.Lists) > 0 {
		return w.Lists[0]
	}
	return nil
}

// SetActive points the active reference at the given list id if it
// resolves. Reports whether the reference changed.
func (w *Workspace) SetActive(listID string) bool {
	if w.Find(listID) == nil {
		return false
	}
	if w.ActiveID == listID {
		return false
	}
	w.ActiveID = listID
	return true
}

// ListOf scans every list for the task id and returns the owning list,
// or nil if absent. Linear in the total task count; this sits on the
// hot path of every drag tick and is the dominant cost at scale.
func (w *Workspace) ListOf(itemID string) *List {
	for _, l := range w.Lists {
		for _, it := range l.Items {
			if it.ID == itemID {
				return l
			}
		}
	}
	return nil
}

// ItemByID returns the task with the given id wherever it lives, or nil.
func (w *Workspace) ItemByID(itemID string) *task.Item {
	if l := w.ListOf(itemID); l != nil {
		for _, it := range l.Items {
			if it.ID == itemID {
				return it
			}
		}
	}
	return nil
}

// ItemByPrefix returns the task whose id starts with prefix together
// with how many tasks matched. Only a count of exactly one identifies
// a task; with more the match is ambiguous and nil is returned.
func (w *Workspace) ItemByPrefix(prefix string) (*task.Item, int) {
	if prefix == "" {
		return nil, 0
	}
	var found *task.Item
	count := 0
	for _, l := range w.Lists {
		for _, it := range l.Items {
			if strings.HasPrefix(it.ID, prefix) {
				found = it
				count++
			}
		}
	}
	if count != 1 {
		return nil, count
	}
	return found, 1
}

// IndexOf returns the position of the task within the list, or -1.
func (l *List) IndexOf(itemID string) int {
	for n, it := range l.Items {
		if it.ID == itemID {
			return n
		}
	}
	return -1
}

// MoveItem transfers a task from one list to another, inserting at
// targetIndex clamped to [0, len]. Same list and unchanged index is a
// no-op. The task must be present in the claimed source list; callers
// resolve the source with ListOf before calling. Reports whether the
// workspace changed.
func (w *Workspace) MoveItem(itemID, fromID, toID string, targetIndex int) bool {
	from := w.Find(fromID)
	to := w.Find(toID)
	if from == nil || to == nil {
		return false
	}
	old := from.IndexOf(itemID)
	if old < 0 {
		return false
	}
	if fromID == toID {
		if targetIndex == old {
			return false
		}
		return w.ReorderWithin(fromID, old, clamp(targetIndex, 0, len(from.Items)-1))
	}
	it := from.Items[old]
	from.Items = append(from.Items[:old], from.Items[old+1:]...)
	at := clamp(targetIndex, 0, len(to.Items))
	to.Items = append(to.Items, nil)
	copy(to.Items[at+1:], to.Items[at:])
	to.Items[at] = it
	return true
}

// ReorderWithin removes the task at fromIndex and reinserts it at
// toIndex within one list. Both indices must be valid positions.
// Reports whether the workspace changed.
func (w *Workspace) ReorderWithin(listID string, fromIndex, toIndex int) bool {
	l := w.Find(listID)
	if l == nil {
		return false
	}
	n := len(l.Items)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return false
	}
	if fromIndex == toIndex {
		return false
	}
	it := l.Items[fromIndex]
	l.Items = append(l.Items[:fromIndex], l.Items[fromIndex+1:]...)
	l.Items = append(l.Items, nil)
	copy(l.Items[toIndex+1:], l.Items[toIndex:])
	l.Items[toIndex] = it
	return true
}

// Prepend inserts tasks at the head of the list, preserving their
// given order.
func (l *List) Prepend(items []*task.Item) {
	if len(items) == 0 {
		return
	}
	l.Items = append(append(make([]*task.Item, 0, len(items)+len(l.Items)), items...), l.Items...)
}

// RemoveItem deletes the task wherever it lives. Removing an absent id
// is a no-op, which makes deferred deletion idempotent. Reports whether
// a task was removed.
func (w *Workspace) RemoveItem(itemID string) bool {
	for _, l := range w.Lists {
		for n, it := range l.Items {
			if it.ID == itemID {
				l.Items = append(l.Items[:n], l.Items[n+1:]...)
				return true
			}
		}
	}
	return false
}

// ArchiveCompleted removes every completed task from the list and
// returns how many were dropped.
func (w *Workspace) ArchiveCompleted(listID string) int {
	l := w.Find(listID)
	if l == nil {
		return 0
	}
	kept := l.Items[:0]
	dropped := 0
	for _, it := range l.Items {
		if it.Done {
			dropped++
			continue
		}
		kept = append(kept, it)
	}
	l.Items = kept
	return dropped
}

// TotalItems counts tasks across all lists.
func (w *Workspace) TotalItems() int {
	total := 0
	for _, l := range w.Lists {
		total += len(l.Items)
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
