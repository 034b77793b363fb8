package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventWorkspaceChanged indicates the stored workspace snapshot was
	// rewritten and readers should reload their view.
	EventWorkspaceChanged EventType = iota

	// EventResetMarkerChanged signals the last-reset date was updated,
	// usually because another process ran the daily sweep.
	EventResetMarkerChanged
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
}

// Watch streams change events until ctx is cancelled. Callers should
// drain the returned channel to avoid blocking the watcher. The channel
// is closed once ctx is done or the watcher hits an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; a later
				// reload picks up the changes. This keeps filesystem
				// storms from blocking the watcher goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full reload to keep
				// clients in sync even when the change is unclassifiable.
				throttle.Enqueue(Event{Type: EventWorkspaceChanged}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				switch filepath.Base(evt.Name) {
				case lastResetKey:
					throttle.Enqueue(Event{Type: EventResetMarkerChanged}, send)
				default:
					throttle.Enqueue(Event{Type: EventWorkspaceChanged}, send)
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so readers reload
// once per burst of filesystem activity instead of on every write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType := range pending {
		send(Event{Type: eventType})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
