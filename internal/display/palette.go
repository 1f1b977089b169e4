package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kvdijken/Settings/internal/menu"
)

// Palette maps menu colours onto terminal colours.
type Palette struct {
	Default    lipgloss.Color
	Accent     lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color
}

// PanelPalette mirrors the colours of the reference TFT panel: white text
// on black, blue while editing an unchanged value, red once it differs.
var PanelPalette = Palette{
	Default:    lipgloss.Color("#FFFFFF"),
	Accent:     lipgloss.Color("#0000FF"),
	Warning:    lipgloss.Color("#FF0000"),
	Background: lipgloss.Color("#000000"),
}

// Color returns the terminal colour for c
func (p Palette) Color(c menu.Color) lipgloss.Color {
	switch c {
	case menu.ColorAccent:
		return p.Accent
	case menu.ColorWarning:
		return p.Warning
	case menu.ColorBackground:
		return p.Background
	default:
		return p.Default
	}
}

// Style returns a lipgloss style drawing fg on bg
func (p Palette) Style(fg, bg menu.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Color(fg)).
		Background(p.Color(bg))
}
