package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvdijken/Settings/internal/display"
)

// Run starts the interactive menu on the alternate screen and blocks until
// the user quits. Display control is released on every exit path.
func Run(model MenuModel, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)
	_, err := p.Run()
	if model.Menu.Owned() {
		model.Menu.ReleaseDisplay()
	}
	return err
}

// Printer provides methods for printing UI components to a writer.
// Non-interactive commands use it for their output.
type Printer struct {
	out   io.Writer
	width int
	plain bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetPlain makes PrintGrid write uncoloured text, one line per row.
func (p *Printer) SetPlain(plain bool) *Printer {
	p.plain = plain
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintLines writes multiple lines
func (p *Printer) PrintLines(lines ...string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(p.out, line)
	}
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintGrid prints the character grid, boxed and coloured unless the
// printer is plain.
func (p *Printer) PrintGrid(g *display.Grid, palette display.Palette, editing bool) {
	if p.plain {
		p.PrintLines(g.Lines()...)
		return
	}
	p.Println(GridBoxStyle(editing).Render(g.Render(palette)))
}

// PrintResult prints a result box
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
}
