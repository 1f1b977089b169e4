package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box printed after a non-interactive command
type Result struct {
	Type    ResultType // Success, failure, or warning
	Title   string     // e.g., "Menu written"
	Details []Param    // Key-value details to display
	Error   error      // Error (for failure results)
	Width   int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	var (
		marker string
		label  string
		title  lipgloss.Style
		color  lipgloss.Color
	)
	switch r.Type {
	case ResultFailure:
		marker, label, title, color = FailureMarker, "FAILED", ErrorTitleStyle, ErrorColor
	case ResultWarning:
		marker, label, title, color = WarningMarker, "WARNING", WarningTitleStyle, WarningColor
	default:
		marker, label, title, color = SuccessMarker, "SUCCESS", SuccessTitleStyle, SuccessColor
	}

	lines := []string{"", title.Render(" " + marker + "  " + label + "  ─  " + r.Title), ""}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render(" Error: "+r.Error.Error()), "")
	}

	if len(r.Details) > 0 {
		for _, d := range r.Details {
			lines = append(lines, ResultKeyStyle.Render(" "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
		}
		lines = append(lines, "")
	}

	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	return ResultBoxStyle(color, width).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
