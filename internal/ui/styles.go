package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the menu chrome. The grid itself is coloured by a
// display.Palette.
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - committed values
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, rejected values
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings, edit mode
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

var (
	// HeaderTitleStyle is for the title (e.g., "SETTINGS MENU")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path (e.g., "settings-menu run")
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Menu:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// ModeBrowseStyle labels the status line while browsing
	ModeBrowseStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// ModeEditStyle labels the status line while editing
	ModeEditStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// StatusStyle is for the status line text
	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// WarningTitleStyle is for the warning result title
	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24
	}
	return clampWidth(width), height
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GridBoxStyle returns the border drawn around the character grid
func GridBoxStyle(editing bool) lipgloss.Style {
	border := PrimaryColor
	if editing {
		border = WarningColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// ResultBoxStyle returns the border style for result boxes
func ResultBoxStyle(color lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 2)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
