package remote

import (
	"sync"

	"go.uber.org/zap"

	"github.com/kvdijken/Settings/internal/display"
	"github.com/kvdijken/Settings/internal/logging"
	"github.com/kvdijken/Settings/internal/menu"
)

// Snapshot is the state of the menu after an event, as sent to clients.
type Snapshot struct {
	Event    string   `json:"event,omitempty"`
	Changed  bool     `json:"changed"`
	Editing  bool     `json:"editing"`
	Selected int      `json:"selected"`
	Top      int      `json:"top"`
	Setting  string   `json:"setting,omitempty"` // selected setting name
	Value    string   `json:"value,omitempty"`   // value shown for it
	Lines    []string `json:"lines"`
	Error    string   `json:"error,omitempty"`
}

// Controller serializes events from any number of sources onto one menu.
// Each event runs to completion, callbacks included, before the next starts.
type Controller struct {
	mu   sync.Mutex
	menu *menu.Menu
	grid *display.Grid
}

// NewController wraps a menu drawing into grid and hands it the display.
func NewController(m *menu.Menu, g *display.Grid) *Controller {
	c := &Controller{menu: m, grid: g}
	c.mu.Lock()
	m.TakeDisplay()
	c.mu.Unlock()
	return c
}

// Apply feeds one event to the menu and returns the resulting state.
func (c *Controller) Apply(ev menu.Event) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := c.menu.Handle(ev)
	logging.Debug("Remote event applied",
		zap.String("event", ev.String()),
		zap.Bool("changed", changed),
	)

	snap := c.snapshotLocked()
	snap.Event = ev.String()
	snap.Changed = changed
	return snap
}

// Snapshot returns the current state without changing it.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Release takes the display away from the menu, rolling back any edit in
// progress.
func (c *Controller) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.menu.Owned() {
		c.menu.ReleaseDisplay()
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		Editing:  c.menu.Editing(),
		Selected: c.menu.Selected(),
		Top:      c.menu.Top(),
		Lines:    c.grid.Lines(),
	}
	if s := c.menu.Current(); s != nil {
		snap.Setting = s.Name
		snap.Value = s.TentativeValue()
	}
	return snap
}
