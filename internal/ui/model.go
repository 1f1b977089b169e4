package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kvdijken/Settings/internal/display"
	"github.com/kvdijken/Settings/internal/menu"
)

// AppliedSource reports the value most recently pushed by a live setting.
type AppliedSource interface {
	Last() (name, value string, ok bool)
}

// EventMsg feeds a menu event into a running program, e.g. from a second
// input source.
type EventMsg menu.Event

// MenuModelConfig configures NewMenuModel.
type MenuModelConfig struct {
	Title   string
	Command string
	Params  []Param
	Palette display.Palette
	Applied AppliedSource // optional
}

// MenuModel is the interactive menu screen. The menu draws into Grid and
// the model renders the grid inside a border with header, status and help.
type MenuModel struct {
	Menu    *menu.Menu
	Grid    *display.Grid
	Palette display.Palette
	Header  *Header
	Applied AppliedSource

	Keys KeyMap
	Help help.Model

	Width  int
	Height int

	lastEvent   string
	lastChanged bool
	quitting    bool
}

// NewMenuModel creates the menu screen and hands the grid to the menu.
func NewMenuModel(m *menu.Menu, g *display.Grid, cfg MenuModelConfig) MenuModel {
	palette := cfg.Palette
	if palette == (display.Palette{}) {
		palette = display.PanelPalette
	}
	title := cfg.Title
	if title == "" {
		title = "Settings Menu"
	}

	width, height := GetTerminalSize()
	model := MenuModel{
		Menu:    m,
		Grid:    g,
		Palette: palette,
		Header:  NewHeader(title, cfg.Command, cfg.Params...).SetWidth(width),
		Applied: cfg.Applied,
		Keys:    DefaultKeyMap(),
		Help:    help.New(),
		Width:   width,
		Height:  height,
	}
	m.TakeDisplay()
	return model
}

// Init implements tea.Model
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Header.SetWidth(clampWidth(msg.Width))
		return m, nil

	case EventMsg:
		m.dispatch(menu.Event(msg))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			m.Menu.ReleaseDisplay()
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.Keys.Help) {
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}
		if ev, ok := m.Keys.EventFor(msg); ok {
			m.dispatch(ev)
		}
	}
	return m, nil
}

func (m *MenuModel) dispatch(ev menu.Event) {
	m.lastEvent = ev.String()
	m.lastChanged = m.Menu.Handle(ev)
}

// View implements tea.Model
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	box := GridBoxStyle(m.Menu.Editing()).Render(m.Grid.Render(m.Palette))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.Header.Render(),
		box,
		m.statusLine(),
		m.Help.View(m.Keys),
	)
}

func (m MenuModel) statusLine() string {
	mode := ModeBrowseStyle.Render("BROWSE")
	if m.Menu.Editing() {
		mode = ModeEditStyle.Render("EDIT")
	}

	status := fmt.Sprintf("row %d/%d", m.Menu.Selected()+1, m.Menu.Registry().Len())
	if m.lastEvent != "" {
		result := "no change"
		if m.lastChanged {
			result = "ok"
		}
		status += fmt.Sprintf("  last: %s (%s)", m.lastEvent, result)
	}
	if m.Applied != nil {
		if name, value, ok := m.Applied.Last(); ok {
			status += fmt.Sprintf("  applied: %s=%s", name, value)
		}
	}
	return mode + StatusStyle.Render(status)
}

// Quitting reports whether the user asked to leave
func (m MenuModel) Quitting() bool {
	return m.quitting
}
