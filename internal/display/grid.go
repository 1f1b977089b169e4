package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kvdijken/Settings/internal/menu"
)

// Geometry of the reference ST7735 panel: 160x128 pixels, 6x8 pixel font.
const (
	DefaultRows    = 128 / 8
	DefaultColumns = 26

	// nameColumn is where setting names start; columns 0 and 1 hold the
	// selection marker and a gap.
	nameColumn = 2
	// valueColumn is where the value cell starts. Values are right-aligned
	// within [valueColumn, columns).
	valueColumn = 19

	markerGlyph = '>'
)

// Cell is one character position on the grid.
type Cell struct {
	Ch rune
	Fg menu.Color
	Bg menu.Color
}

var blank = Cell{Ch: ' ', Fg: menu.ColorDefault, Bg: menu.ColorBackground}

// Grid is an in-memory character display. It implements menu.Display and
// can be rendered to a terminal.
type Grid struct {
	rows    int
	columns int
	cells   [][]Cell
}

// NewGrid creates a blank grid. Non-positive sizes fall back to the
// reference panel geometry.
func NewGrid(rows, columns int) *Grid {
	if rows <= 0 {
		rows = DefaultRows
	}
	if columns <= valueColumn+1 {
		columns = DefaultColumns
	}
	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([][]Cell, rows),
	}
	for r := range g.cells {
		g.cells[r] = make([]Cell, columns)
	}
	g.Clear()
	return g
}

// Rows returns the number of text rows
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of text columns
func (g *Grid) Columns() int { return g.columns }

// Clear implements menu.Display
func (g *Grid) Clear() {
	for r := range g.cells {
		g.clearSpan(r, 0, g.columns)
	}
}

// DrawRow implements menu.Display. An empty name blanks the whole row.
func (g *Grid) DrawRow(row int, name, value string, fg, bg menu.Color) {
	if !g.validRow(row) {
		return
	}
	if name == "" {
		g.clearSpan(row, 0, g.columns)
		return
	}
	g.clearSpan(row, nameColumn, valueColumn)
	g.print(row, nameColumn, fit(name, valueColumn-nameColumn-1), fg, bg)
	g.DrawValue(row, value, fg, bg)
}

// DrawValue implements menu.Display
func (g *Grid) DrawValue(row int, value string, fg, bg menu.Color) {
	if !g.validRow(row) {
		return
	}
	width := g.columns - valueColumn
	value = fit(value, width)

	// Blank leader first so a shorter value fully covers a longer one.
	lead := width - runewidth.StringWidth(value)
	g.print(row, valueColumn, strings.Repeat(" ", lead)+value, fg, bg)
}

// DrawMarker implements menu.Display
func (g *Grid) DrawMarker(row int, on bool) {
	if !g.validRow(row) {
		return
	}
	ch := ' '
	if on {
		ch = markerGlyph
	}
	g.cells[row][0] = Cell{Ch: ch, Fg: menu.ColorDefault, Bg: menu.ColorBackground}
}

// Cell returns the cell at (row, col), or a blank cell when out of range.
func (g *Grid) Cell(row, col int) Cell {
	if !g.validRow(row) || col < 0 || col >= g.columns {
		return blank
	}
	return g.cells[row][col]
}

// Line returns the plain text of one row.
func (g *Grid) Line(row int) string {
	if !g.validRow(row) {
		return ""
	}
	var b strings.Builder
	for _, c := range g.cells[row] {
		if c.Ch == 0 {
			continue // right half of a wide rune
		}
		b.WriteRune(c.Ch)
	}
	return b.String()
}

// Lines returns the plain text of every row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for r := range lines {
		lines[r] = g.Line(r)
	}
	return lines
}

// String implements fmt.Stringer
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Render returns the grid as coloured terminal output. Runs of cells with
// the same colours are rendered together.
func (g *Grid) Render(p Palette) string {
	lines := make([]string, g.rows)
	for r, row := range g.cells {
		var b strings.Builder
		var run strings.Builder
		cur := row[0]
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(p.Style(cur.Fg, cur.Bg).Render(run.String()))
				run.Reset()
			}
		}
		for _, c := range row {
			if c.Ch == 0 {
				continue
			}
			if c.Fg != cur.Fg || c.Bg != cur.Bg {
				flush()
				cur = c
			}
			run.WriteRune(c.Ch)
		}
		flush()
		lines[r] = b.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (g *Grid) validRow(row int) bool {
	return row >= 0 && row < g.rows
}

func (g *Grid) clearSpan(row, from, to int) {
	for c := from; c < to && c < g.columns; c++ {
		g.cells[row][c] = blank
	}
}

// print writes text starting at col, clipping at the right edge. Wide runes
// take two cells; the second is left empty (Ch == 0).
func (g *Grid) print(row, col int, text string, fg, bg menu.Color) {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > g.columns {
			return
		}
		g.cells[row][col] = Cell{Ch: ch, Fg: fg, Bg: bg}
		if w == 2 {
			g.cells[row][col+1] = Cell{Fg: fg, Bg: bg}
		}
		col += w
	}
}

// fit truncates s to at most width display columns.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}
