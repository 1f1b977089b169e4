// Package display provides a character-grid display for the settings menu.
//
// Grid mimics the 26 column by 16 row text layout of the ST7735 panel the
// menu was designed for:
//
//	0         1         2
//	01234567890123456789012345
//	> SAMPLERATE         96000
//	  IF                  5000
//
// Column 0 holds the selection marker, names start at column 2 and values
// are right-aligned in the cell that starts at column 19. Widths are measured
// in display columns, so wide runes take two cells.
//
// The grid keeps a colour per cell and can be rendered to a terminal with a
// Palette.
package display
