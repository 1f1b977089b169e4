package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is a key/value line shown in a header. Params keep their order.
type Param struct {
	Key   string
	Value string
}

// Header is the banner above the menu with title, command and parameters.
type Header struct {
	Title   string  // e.g., "SETTINGS MENU"
	Command string  // e.g., "settings-menu run"
	Params  []Param // e.g., {"Menu", "~/.config/settings-menu/menu.yaml"}
	Width   int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	commandLine := HeaderCommandStyle.Render(h.Command)
	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(h.Params) > 0 {
		dividerWidth := width - 6 // Account for border and padding
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := RenderHorizontalDivider(dividerWidth, "─")

		paramLines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			paramLines = append(paramLines,
				HeaderParamKeyStyle.Render(p.Key+":")+" "+HeaderParamValueStyle.Render(p.Value))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, content, divider, strings.Join(paramLines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
