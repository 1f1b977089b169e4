package menu

import (
	"go.uber.org/zap"

	"github.com/kvdijken/Settings/internal/logging"
	"github.com/kvdijken/Settings/internal/settings"
)

// DefaultVisibleRows is the number of text lines on the reference 128 pixel
// high panel with an 8 pixel font.
const DefaultVisibleRows = 16

// Menu is the navigation and editing state machine.
//
// It is driven by MoveUp, MoveDown, Accept and Cancel. Each call runs to
// completion, including any Acceptor callbacks and draw requests, before it
// returns. A Menu is not safe for concurrent use.
type Menu struct {
	reg     *settings.Registry
	display Display
	view    viewport

	selected int
	editing  bool
	owned    bool // display control taken
}

// Option configures a Menu
type Option func(*Menu)

// WithVisibleRows sets how many rows the display can show at once.
func WithVisibleRows(n int) Option {
	return func(m *Menu) {
		m.view.rows = n
	}
}

// New creates a Menu over reg drawing on d. A nil display discards all
// drawing. The menu starts browsing with the first editable row selected.
func New(reg *settings.Registry, d Display, opts ...Option) *Menu {
	if d == nil {
		d = nopDisplay{}
	}
	m := &Menu{
		reg:     reg,
		display: d,
		view:    viewport{rows: DefaultVisibleRows},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.view.rows < 1 {
		m.view.rows = 1
	}
	m.ensureSelection()
	return m
}

// Registry returns the settings the menu edits.
func (m *Menu) Registry() *settings.Registry { return m.reg }

// Selected returns the registry index of the highlighted setting.
func (m *Menu) Selected() int { return m.selected }

// Editing reports whether the selected setting is being edited.
func (m *Menu) Editing() bool { return m.editing }

// Top returns the registry index of the first visible row.
func (m *Menu) Top() int { return m.view.top }

// VisibleRows returns the number of rows on screen.
func (m *Menu) VisibleRows() int { return m.view.rows }

// Owned reports whether the menu currently controls the display.
func (m *Menu) Owned() bool { return m.owned }

// Current returns the highlighted setting, or nil when nothing is selectable.
func (m *Menu) Current() *settings.Setting {
	if !m.reg.Selectable(m.selected) {
		return nil
	}
	return m.reg.At(m.selected)
}

// Handle dispatches an abstract input event.
func (m *Menu) Handle(ev Event) bool {
	switch ev {
	case EventUp:
		return m.MoveUp()
	case EventDown:
		return m.MoveDown()
	case EventAccept:
		return m.Accept()
	case EventCancel:
		return m.Cancel()
	default:
		return false
	}
}

// MoveUp moves the cursor to the next editable row, or scrolls the value
// of the selected setting up while editing. Returns false when nothing
// changed.
func (m *Menu) MoveUp() bool {
	return m.move(1)
}

// MoveDown moves the cursor to the previous editable row, or scrolls the
// value of the selected setting down while editing. Returns false when
// nothing changed.
func (m *Menu) MoveDown() bool {
	return m.move(-1)
}

// Accept enters edit mode, or commits the browsed value and leaves it.
func (m *Menu) Accept() bool {
	if !m.ensureSelection() {
		return false
	}

	if !m.editing {
		m.setEditing(true, EventAccept)
		m.highlightValue()
		return true
	}

	m.commit()
	m.setEditing(false, EventAccept)
	m.highlightValue()
	return true
}

// Cancel abandons the browsed value and leaves edit mode. It does nothing
// while browsing.
func (m *Menu) Cancel() bool {
	if !m.editing {
		return false
	}

	m.rollback()
	m.setEditing(false, EventCancel)
	m.highlightValue()
	return true
}

// TakeDisplay grants the menu control of the display and repaints it.
func (m *Menu) TakeDisplay() bool {
	m.ensureSelection()
	m.owned = true

	// The registry may have grown or shrunk relative to the window since
	// the menu last drew.
	m.view.setTop(m.view.top, m.reg.Len())
	m.view.follow(m.selected)

	m.redrawViewport()
	if m.reg.Selectable(m.selected) {
		m.drawMarker(m.selected, true)
	}
	if m.editing {
		m.highlightValue()
	}
	logging.Debug("Display taken", zap.Int("top", m.view.top))
	return true
}

// ReleaseDisplay revokes display control. A pending edit is rolled back so
// no half-edited value survives outside edit mode.
func (m *Menu) ReleaseDisplay() bool {
	m.owned = false
	if m.editing {
		m.rollback()
		m.setEditing(false, EventCancel)
	}
	logging.Debug("Display released")
	return true
}

func (m *Menu) move(step int) bool {
	if !m.ensureSelection() {
		return false
	}
	if m.editing {
		return m.scrollValue(step)
	}
	return m.scrollSetting(step)
}

// scrollSetting moves the cursor by step, stepping over separators. The
// cursor never wraps.
func (m *Menu) scrollSetting(step int) bool {
	target := m.selected
	for {
		next := target + step
		if next < 0 || next >= m.reg.Len() {
			logging.Debug("No selectable row",
				zap.Error(settings.NewNoSelectableRowError(step)),
				zap.Int("selected", m.selected),
			)
			return false
		}
		target = next
		if m.reg.Selectable(target) {
			break
		}
	}

	previous := m.selected
	m.selected = target

	if m.view.follow(target) {
		m.redrawViewport()
	} else {
		m.drawMarker(previous, false)
	}
	m.drawMarker(target, true)
	return true
}

// scrollValue moves the tentative value of the selected setting by one,
// clamped to the value list. Live settings apply the value immediately.
func (m *Menu) scrollValue(direction int) bool {
	s := m.Current()
	next := s.Tentative
	if direction > 0 && s.Tentative < len(s.Values)-1 {
		next = s.Tentative + direction
	} else if direction < 0 && s.Tentative > 0 {
		next = s.Tentative + direction
	}
	if next == s.Tentative {
		return false
	}

	s.Tentative = next
	m.highlightValue()

	if s.Live {
		d := s.Decide()
		logging.LogDecision(s.Name, s.TentativeValue(), "live", d.Applied, d.Accepted)
	}
	return true
}

// commit finalizes or discards the tentative value on accept.
func (m *Menu) commit() {
	s := m.Current()
	if s.Tentative == s.Current {
		return
	}

	var accepted bool
	if s.Live {
		// Already applied while scrolling; only the cached vote counts.
		accepted = s.LastDecision.Accepted
	} else {
		d := s.Decide()
		logging.LogDecision(s.Name, s.TentativeValue(), "accept", d.Applied, d.Accepted)
		accepted = d.Accepted
	}

	if accepted {
		s.Current = s.Tentative
	} else {
		s.Tentative = s.Current
	}
}

// rollback restores the committed value. A live value that reached the
// outside world is handed back to the Acceptor once more so it can revert;
// that call's result is ignored.
func (m *Menu) rollback() {
	s := m.Current()
	needsLiveRevert := s.Live && s.LastDecision.Applied && s.Tentative != s.Current

	s.Tentative = s.Current
	if needsLiveRevert {
		s.OnChange.OnChange(s)
		logging.Debug("Live value reverted",
			zap.String("setting", s.Name),
			zap.String("value", s.Value()),
		)
	}
}

func (m *Menu) setEditing(on bool, ev Event) {
	from, to := modeName(m.editing), modeName(on)
	m.editing = on
	logging.LogTransition(ev.String(), from, to, m.selected)
}

func modeName(editing bool) string {
	if editing {
		return "editing"
	}
	return "browsing"
}

// ensureSelection moves the cursor off a separator (or out-of-range index)
// onto the first editable row. Reports false when there is none. A row
// that appears while the display is held is drawn with its marker.
func (m *Menu) ensureSelection() bool {
	if m.reg.Selectable(m.selected) {
		return true
	}
	for i := 0; i < m.reg.Len(); i++ {
		if m.reg.Selectable(i) {
			m.selected = i
			m.view.follow(i)
			if m.owned {
				m.redrawViewport()
				m.drawMarker(i, true)
			}
			return true
		}
	}
	return false
}

// highlightColor picks the colour of the selected value cell.
func (m *Menu) highlightColor(s *settings.Setting) Color {
	if !m.editing {
		return ColorDefault
	}
	if s.Tentative == s.Current {
		return ColorAccent
	}
	return ColorWarning
}

func (m *Menu) canDraw() bool {
	if !m.owned {
		logging.Debug("Draw skipped", zap.Error(settings.NewDisplayUnavailableError()))
		return false
	}
	return true
}

func (m *Menu) highlightValue() {
	s := m.Current()
	if s == nil || !m.view.contains(m.selected) || !m.canDraw() {
		return
	}
	m.display.DrawValue(m.view.rowOf(m.selected), s.TentativeValue(), m.highlightColor(s), ColorBackground)
}

func (m *Menu) drawMarker(i int, on bool) {
	if !m.view.contains(i) || !m.canDraw() {
		return
	}
	m.display.DrawMarker(m.view.rowOf(i), on)
}

// redrawViewport clears the display and draws every visible row starting
// at the top of the window.
func (m *Menu) redrawViewport() {
	if !m.canDraw() {
		return
	}
	m.display.Clear()

	n := m.reg.Len() - m.view.top
	if n > m.view.rows {
		n = m.view.rows
	}
	for row := 0; row < n; row++ {
		s := m.reg.At(m.view.top + row)
		if s.IsSeparator() {
			m.display.DrawRow(row, settings.NoName, "", ColorDefault, ColorBackground)
			continue
		}
		m.display.DrawRow(row, s.Name, s.TentativeValue(), ColorDefault, ColorBackground)
	}
}
