// Package config loads and saves menu definition files.
//
// A menu file is YAML and lists the rows of the menu in display order:
//
//	version: 1
//	display:
//	  rows: 16
//	  columns: 26
//	  capacity: 32
//	settings:
//	  - name: SAMPLERATE
//	    values: ["48000", "96000"]
//	    initial: 1
//	    handler: accept
//	  - separator: true
//	  - name: VOLUME
//	    values: ["0", "5", "10"]
//	    live: true
//	    handler: apply
//
// # File Location
//
// The default menu file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/settings-menu/menu.yaml or $HOME/.config/settings-menu/menu.yaml
//   - macOS: $HOME/.config/settings-menu/menu.yaml
//   - Windows: %LOCALAPPDATA%\settings-menu\menu.yaml
//
// # Usage Example
//
//	m, err := config.LoadDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg, err := m.Build(actions.NewSet(nil))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The menu file is only read at startup. Committed values live in memory
// and are lost when the program exits.
package config
