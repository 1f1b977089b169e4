package config

import (
	"fmt"

	"github.com/kvdijken/Settings/internal/settings"
)

// CurrentVersion is the menu file format version this package reads and writes.
const CurrentVersion = 1

// MenuFile is the on-disk description of a settings menu.
type MenuFile struct {
	Version  int          `yaml:"version"`
	Display  *DisplayConf `yaml:"display,omitempty"`
	Settings []SettingDef `yaml:"settings"`
}

// DisplayConf describes the character grid and registry size.
type DisplayConf struct {
	Rows     int `yaml:"rows"`               // visible rows (menu window height)
	Columns  int `yaml:"columns"`            // characters per row
	Capacity int `yaml:"capacity,omitempty"` // registry capacity; 0 means one slot per entry
}

// SettingDef is one row of the menu. A separator ignores every other field.
type SettingDef struct {
	Name      string   `yaml:"name,omitempty"`
	Values    []string `yaml:"values,omitempty"`
	Initial   int      `yaml:"initial,omitempty"`
	Live      bool     `yaml:"live,omitempty"`
	Handler   string   `yaml:"handler,omitempty"` // acceptor name, empty means "accept"
	Separator bool     `yaml:"separator,omitempty"`
}

// HandlerLookup resolves the handler names used in a menu file.
type HandlerLookup interface {
	Lookup(name string) (settings.Acceptor, error)
}

// DefaultMenu returns the menu written by "init" and used when no menu file
// exists: the controls of a small SDR receiver.
func DefaultMenu() *MenuFile {
	return &MenuFile{
		Version: CurrentVersion,
		Display: &DisplayConf{Rows: 16, Columns: 26, Capacity: 32},
		Settings: []SettingDef{
			{Name: "SAMPLERATE", Values: []string{"48000", "96000", "192000"}, Initial: 1, Handler: "accept"},
			{Name: "IF", Values: []string{"0", "5000", "10000", "12000"}, Initial: 2, Handler: "accept"},
			{Name: "TAPS", Values: []string{"31", "63", "127", "255"}, Initial: 1, Handler: "accept"},
			{Separator: true},
			{Name: "MODE", Values: []string{"AM", "FM", "USB", "LSB", "CW"}, Initial: 1, Live: true, Handler: "apply"},
			{Name: "AGC", Values: []string{"OFF", "SLOW", "FAST"}, Initial: 1, Live: true, Handler: "apply"},
			{Name: "VOLUME", Values: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, Initial: 5, Live: true, Handler: "apply"},
			{Separator: true},
			{Name: "CALIBRATE", Values: []string{"NO", "YES"}, Initial: 0, Handler: "reject"},
		},
	}
}

// Capacity returns the registry capacity the menu asks for. It is never
// smaller than the number of entries.
func (m *MenuFile) Capacity() int {
	c := 0
	if m.Display != nil {
		c = m.Display.Capacity
	}
	if c < len(m.Settings) {
		c = len(m.Settings)
	}
	return c
}

// Rows returns the configured window height, or 0 when unset.
func (m *MenuFile) Rows() int {
	if m.Display == nil {
		return 0
	}
	return m.Display.Rows
}

// Columns returns the configured row width, or 0 when unset.
func (m *MenuFile) Columns() int {
	if m.Display == nil {
		return 0
	}
	return m.Display.Columns
}

// Validate checks the menu file for problems that would make Build fail or
// produce an unusable menu.
func (m *MenuFile) Validate() error {
	if m.Version != CurrentVersion {
		return fmt.Errorf("unsupported menu version: %d (expected %d)", m.Version, CurrentVersion)
	}
	if m.Display != nil {
		if m.Display.Rows < 0 || m.Display.Columns < 0 || m.Display.Capacity < 0 {
			return fmt.Errorf("display sizes must not be negative")
		}
	}

	seen := make(map[string]bool)
	for i, def := range m.Settings {
		if def.Separator {
			continue
		}
		if def.Name == "" {
			return fmt.Errorf("setting %d: name is required (use separator: true for a blank row)", i)
		}
		if seen[def.Name] {
			return fmt.Errorf("setting %d: duplicate name %q", i, def.Name)
		}
		seen[def.Name] = true
		if len(def.Values) == 0 {
			return fmt.Errorf("setting %q: at least one value is required", def.Name)
		}
		if def.Initial < 0 || def.Initial >= len(def.Values) {
			return fmt.Errorf("setting %q: initial %d out of range [0, %d)", def.Name, def.Initial, len(def.Values))
		}
	}
	return nil
}

// Build validates the menu file and creates a registry from it, resolving
// handler names through handlers.
func (m *MenuFile) Build(handlers HandlerLookup) (*settings.Registry, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	reg := settings.NewRegistry(m.Capacity())
	for _, def := range m.Settings {
		if def.Separator {
			if _, err := reg.AddSeparator(); err != nil {
				return nil, fmt.Errorf("failed to add separator: %w", err)
			}
			continue
		}

		acc, err := handlers.Lookup(def.Handler)
		if err != nil {
			return nil, fmt.Errorf("setting %q: %w", def.Name, err)
		}
		if _, err := reg.Create(def.Name, def.Values, def.Initial, def.Live, acc); err != nil {
			return nil, fmt.Errorf("failed to create setting: %w", err)
		}
	}
	return reg, nil
}
