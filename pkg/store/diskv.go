package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/slate/pkg/board"
)

// The whole workspace is written as one JSON document under a
// versioned key; bumping the version is how a future format change
// sidesteps old payloads.
const (
	workspaceKey = "workspace-v1"
	lastResetKey = "lastreset-v1"

	layoutISO = "2006-01-02"
)

// Persistence defines the storage contract for workspace state. Reads
// never fail: absent or malformed stored data is treated as absent and
// replaced with the bootstrap workspace.
type Persistence interface {
	LoadWorkspace(ctx context.Context) *board.Workspace
	SaveWorkspace(ws *board.Workspace) error
	LastReset() (time.Time, bool)
	SetLastReset(day time.Time) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Bootstrap returns the default workspace used when nothing valid is
// stored: an Inbox plus a Today list flagged for daily reset.
func Bootstrap() *board.Workspace {
	ws := board.New()
	inbox := ws.AddList("Inbox")
	today := ws.AddList("Today")
	today.AutoReset = true
	ws.ActiveID = inbox.ID
	return ws
}

func (p *persistence) LoadWorkspace(ctx context.Context) *board.Workspace {
	val, err := p.d.Read(workspaceKey)
	if err != nil {
		return Bootstrap()
	}
	ws := board.New()
	if err := json.Unmarshal(val, ws); err != nil {
		fmt.Fprintf(os.Stderr, "store: corrupt workspace, starting fresh: %s\n", err)
		return Bootstrap()
	}
	if len(ws.Lists) == 0 {
		return Bootstrap()
	}
	if ws.Find(ws.ActiveID) == nil {
		ws.ActiveID = ws.Lists[0].ID
	}
	return ws
}

func (p *persistence) SaveWorkspace(ws *board.Workspace) error {
	data, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("store: encode workspace: %w", err)
	}
	if err := p.d.Write(workspaceKey, data); err != nil {
		return fmt.Errorf("store: write workspace: %w", err)
	}
	return nil
}

func (p *persistence) LastReset() (time.Time, bool) {
	val, err := p.d.Read(lastResetKey)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(layoutISO, string(val), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (p *persistence) SetLastReset(day time.Time) error {
	if err := p.d.Write(lastResetKey, []byte(day.Format(layoutISO))); err != nil {
		return fmt.Errorf("store: write last reset: %w", err)
	}
	return nil
}
