package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvdijken/Settings/internal/menu"
)

// KeyMap defines the key bindings of the menu screen. Next and Prev follow
// the rotary encoder: Next is clockwise and moves down the list.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Accept key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "j", "+"),
			key.WithHelp("↓/j/+", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k", "-"),
			key.WithHelp("↑/k/-", "prev"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Accept, k.Cancel, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Accept, k.Cancel},
		{k.Help, k.Quit},
	}
}

// EventFor translates a key press into a menu event.
func (k KeyMap) EventFor(msg tea.KeyMsg) (menu.Event, bool) {
	switch {
	case key.Matches(msg, k.Next):
		return menu.EventUp, true
	case key.Matches(msg, k.Prev):
		return menu.EventDown, true
	case key.Matches(msg, k.Accept):
		return menu.EventAccept, true
	case key.Matches(msg, k.Cancel):
		return menu.EventCancel, true
	default:
		return 0, false
	}
}
