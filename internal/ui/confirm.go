package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmOverwrite warns that path already exists and asks the user to type
// "yes" to replace it. Returns true if the user confirmed.
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	width := GetTerminalWidth()

	content := strings.Join([]string{
		"",
		WarningTitleStyle.Render(" " + WarningMarker + "  WARNING  ─  menu file exists"),
		"",
		lipgloss.NewStyle().Foreground(TextColor).Render(" • " + path),
		lipgloss.NewStyle().Foreground(TextColor).Render(" • Its settings will be replaced by the default menu"),
		"",
	}, "\n")

	fmt.Fprintln(out, ResultBoxStyle(WarningColor, width).Render(content))
	fmt.Fprintln(out)

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	fmt.Fprint(out, promptStyle.Render("To overwrite, type \"yes\" and press Enter: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(out)
		return false
	}

	if strings.EqualFold(strings.TrimSpace(input), "yes") {
		fmt.Fprintln(out)
		return true
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	return false
}
