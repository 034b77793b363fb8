// Package ui is the interactive board: lists side by side, a cursor,
// and a grab-and-carry gesture that feeds the drag engine. Carrying a
// task across lists emits live previews on every cursor move, so the
// board always shows where the task would land; dropping inside the
// source list defers the reorder to the release, and Esc drops the
// task outside any droppable region.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/slate/pkg/app"
	"tableflip.dev/slate/pkg/board"
	"tableflip.dev/slate/pkg/ingest"
	"tableflip.dev/slate/pkg/search"
	"tableflip.dev/slate/pkg/store"
)

type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	s, err := app.NewService(ctx, u.Persistence)
	if err != nil {
		return err
	}
	m := newModel(ctx, s)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type mode int

const (
	modeBrowse mode = iota
	modeCarry
	modeSearch
	modeAdd
	modePaste
)

type model struct {
	ctx context.Context
	svc *app.Service

	listIdx int
	itemIdx int

	mode    mode
	carried string // task id in flight during a carry

	input  textinput.Model
	query  string
	status string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	width  int
	height int
}

// fadeMsg lands on the event loop once the delete fade has run, so the
// actual removal happens on the same goroutine as every other board
// mutation.
type fadeMsg struct {
	id string
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func newModel(ctx context.Context, s *app.Service) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	return model{ctx: ctx, svc: s, input: ti}
}

func (m model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

// startWatchCmd subscribes to the persistence change stream so the
// board refreshes when another process writes the workspace.
func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case fadeMsg:
		m.svc.DeleteNow(msg.id)
		m.clampCursor()
		return m, nil
	case watchStartedMsg:
		if msg.err != nil {
			// Live refresh is best effort; the board still works
			// without it.
			return m, nil
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()
	case watchEventMsg:
		m.svc.Reload(m.ctx)
		if m.carried != "" {
			gone := false
			m.svc.Snapshot(func(ws *board.Workspace) {
				gone = ws.ItemByID(m.carried) == nil
			})
			if gone {
				m.drop()
			}
		}
		m.clampCursor()
		return m, m.waitForWatch()
	case watchStoppedMsg:
		m.stopWatch()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch, modeAdd, modePaste:
			return m.updateInput(msg)
		case modeCarry:
			return m.updateCarry(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lists := m.svc.Lists()
	switch msg.String() {
	case "q", "ctrl+c":
		m.stopWatch()
		return m, tea.Quit
	case "left", "h":
		if m.listIdx > 0 {
			m.listIdx--
			m.itemIdx = 0
		}
	case "right", "l":
		if m.listIdx < len(lists)-1 {
			m.listIdx++
			m.itemIdx = 0
		}
	case "up", "k":
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case "down", "j":
		if m.itemIdx < len(m.visible())-1 {
			m.itemIdx++
		}
	case " ":
		if it := m.selected(); it != nil {
			_, _ = m.svc.Toggle(it.id)
		}
	case "d":
		if it := m.selected(); it != nil {
			m.svc.Delete(it.id)
			id := it.id
			return m, tea.Tick(app.FadeDelay, func(time.Time) tea.Msg {
				return fadeMsg{id: id}
			})
		}
	case "enter", "g":
		// Reordering over a filtered view has no stable index
		// semantics, so drag is off while a query is active.
		if m.query != "" {
			m.status = "clear the search to move tasks"
			return m, nil
		}
		if it := m.selected(); it != nil {
			m.mode = modeCarry
			m.carried = it.id
			m.status = "carrying; enter drops, esc cancels"
		}
	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "search"
		m.input.SetValue(m.query)
		m.input.Focus()
	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "new task"
		m.input.SetValue("")
		m.input.Focus()
	case "p":
		m.mode = modePaste
		m.input.Placeholder = "paste text (lines split on \\n)"
		m.input.SetValue("")
		m.input.Focus()
	case "x":
		if l := m.currentList(); l != nil {
			n := m.svc.ArchiveCompleted(l.ID)
			m.status = fmt.Sprintf("archived %d done", n)
			m.clampCursor()
		}
	case "tab":
		if l := m.currentList(); l != nil {
			m.svc.SetActive(l.ID)
		}
	}
	return m, nil
}

// updateCarry moves the hover cursor and feeds the drag engine. Every
// cursor move is one live-preview event; enter is the commit, esc is a
// release outside any droppable region.
func (m model) updateCarry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lists := m.svc.Lists()
	switch msg.String() {
	case "left", "h":
		if m.listIdx > 0 {
			m.listIdx--
			m.itemIdx = 0
			m.preview()
		}
	case "right", "l":
		if m.listIdx < len(lists)-1 {
			m.listIdx++
			m.itemIdx = 0
			m.preview()
		}
	case "up", "k":
		if m.itemIdx > 0 {
			m.itemIdx--
			m.preview()
		}
	case "down", "j":
		if m.itemIdx < m.hoverMax() {
			m.itemIdx++
			m.preview()
		}
	case "enter":
		m.svc.DragCommit(m.carried, m.hoverTarget())
		m.drop()
	case "esc", "q":
		// The board already reflects the last preview.
		m.svc.DragCommit(m.carried, "")
		m.drop()
	}
	return m, nil
}

func (m *model) drop() {
	m.mode = modeBrowse
	m.carried = ""
	m.status = ""
	m.followCarried()
}

// preview emits a live-preview event for the current hover position,
// then snaps the cursor to wherever the carried task now sits.
func (m *model) preview() {
	m.svc.DragPreview(m.carried, m.hoverTarget())
	m.followCarried()
}

// hoverTarget maps the cursor to a hover id: a task id when the cursor
// is on a task, the list id when it sits past the end (append).
func (m *model) hoverTarget() string {
	l := m.currentList()
	if l == nil {
		return ""
	}
	if m.itemIdx < len(l.Items) {
		return l.Items[m.itemIdx].ID
	}
	return l.ID
}

// hoverMax allows the cursor one slot past the last task so a carry
// can target the end of a list.
func (m *model) hoverMax() int {
	l := m.currentList()
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// followCarried keeps the cursor on the carried task after a preview
// transfers it.
func (m *model) followCarried() {
	if m.carried == "" {
		m.clampCursor()
		return
	}
	lists := m.svc.Lists()
	m.svc.Snapshot(func(ws *board.Workspace) {
		owner := ws.ListOf(m.carried)
		if owner == nil {
			return
		}
		for n, l := range lists {
			if l.ID == owner.ID {
				m.listIdx = n
				if at := owner.IndexOf(m.carried); at >= 0 {
					m.itemIdx = at
				}
				return
			}
		}
	})
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.mode {
		case modeSearch:
			m.query = value
		case modeAdd:
			if value != "" {
				if l := m.currentList(); l != nil {
					_, _ = m.svc.Add(l.ID, value)
				}
			}
		case modePaste:
			// The single-line input carries literal "\n" separators.
			raw := strings.ReplaceAll(value, `\n`, "\n")
			n := m.svc.Ingest(raw, ingest.ModeGroup, ingest.TargetAuto)
			m.status = fmt.Sprintf("ingested %d", n)
		}
		m.input.Blur()
		m.mode = modeBrowse
		m.clampCursor()
		return m, nil
	case "esc":
		m.input.Blur()
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) currentList() *board.List {
	lists := m.svc.Lists()
	if m.listIdx < 0 || m.listIdx >= len(lists) {
		return nil
	}
	return lists[m.listIdx]
}

// visible is the current list filtered by the active query.
func (m *model) visible() []*boardItem {
	l := m.currentList()
	if l == nil {
		return nil
	}
	out := make([]*boardItem, 0, len(l.Items))
	for _, it := range search.Filter(l.Items, m.query) {
		out = append(out, &boardItem{it.ID, it.Text, it.Done})
	}
	return out
}

type boardItem struct {
	id   string
	text string
	done bool
}

func (m *model) selected() *boardItem {
	items := m.visible()
	if m.itemIdx < 0 || m.itemIdx >= len(items) {
		return nil
	}
	return items[m.itemIdx]
}

func (m *model) clampCursor() {
	if n := len(m.visible()); m.itemIdx >= n {
		m.itemIdx = n - 1
	}
	if m.itemIdx < 0 {
		m.itemIdx = 0
	}
}
