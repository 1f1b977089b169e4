package menu

// Color selects how a cell is drawn. The Display maps it onto whatever the
// output device understands.
type Color int

const (
	ColorDefault    Color = iota // plain text
	ColorAccent                  // editing, value unchanged
	ColorWarning                 // editing, value changed
	ColorBackground              // background behind all text
)

// String returns the colour name
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorAccent:
		return "accent"
	case ColorWarning:
		return "warning"
	case ColorBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Display is the character-grid collaborator the menu draws on. Rows are
// visible-row positions, not registry indices.
type Display interface {
	// Clear blanks the whole screen before a full repaint.
	Clear()
	// DrawRow renders a setting name and value. An empty name renders a
	// blank separator row.
	DrawRow(row int, name, value string, fg, bg Color)
	// DrawValue repaints only the value cell of a row.
	DrawValue(row int, value string, fg, bg Color)
	// DrawMarker draws or clears the selection glyph of a row.
	DrawMarker(row int, on bool)
}

// nopDisplay lets a Menu be driven without any output attached.
type nopDisplay struct{}

func (nopDisplay) Clear()                                    {}
func (nopDisplay) DrawRow(int, string, string, Color, Color) {}
func (nopDisplay) DrawValue(int, string, Color, Color)       {}
func (nopDisplay) DrawMarker(int, bool)                      {}
