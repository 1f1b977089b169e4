// Package ui provides the terminal front end of the settings menu.
//
// MenuModel is a Bubble Tea model that owns a display.Grid, lets the menu
// draw into it and renders the grid inside a bordered box:
//
//	╭──────────────────────────╮
//	│> SAMPLERATE         96000│
//	│  IF                 10000│
//	╰──────────────────────────╯
//	BROWSE row 1/9  last: up (ok)
//	↓/j/+ next • ↑/k/- prev • enter/space ok • esc cancel • q quit
//
// Keys map onto the four menu events; see DefaultKeyMap. Quitting releases
// the display, which rolls back an edit in progress.
//
// The package also carries the non-interactive pieces used by the other
// commands: Header, Result and a Printer that writes them to any io.Writer.
//
// # Logging Integration
//
// The interactive screen owns the terminal, so zap logging stays silent
// unless SETTINGS_MENU_LOG_LEVEL is set. Combine it with --log-file to keep
// log lines out of the menu.
package ui
