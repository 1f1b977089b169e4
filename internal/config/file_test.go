package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/kvdijken/Settings/internal/settings"
)

// staticHandlers resolves every known name to an accepting acceptor.
type staticHandlers map[string]bool

func (h staticHandlers) Lookup(name string) (settings.Acceptor, error) {
	if name == "" {
		name = "accept"
	}
	vote, ok := h[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return settings.Predicate(func(*settings.Setting) bool { return vote }), nil
}

var testHandlers = staticHandlers{"accept": true, "reject": false, "apply": true}

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is only used on Linux")
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "settings-menu") {
		t.Errorf("GetConfigDir() = %v, want /tmp/xdg/settings-menu", dir)
	}

	path, err := GetMenuPath()
	if err != nil {
		t.Fatalf("GetMenuPath() error = %v", err)
	}
	if filepath.Base(path) != "menu.yaml" {
		t.Errorf("GetMenuPath() should end with 'menu.yaml', got: %v", path)
	}
}

func TestDefaultMenu(t *testing.T) {
	m := DefaultMenu()

	if m.Version != 1 {
		t.Errorf("DefaultMenu().Version = %v, want 1", m.Version)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("DefaultMenu().Validate() error = %v", err)
	}
	if m.Rows() != 16 || m.Columns() != 26 {
		t.Errorf("DefaultMenu() display = %dx%d, want 16x26", m.Rows(), m.Columns())
	}

	reg, err := m.Build(testHandlers)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if reg.Len() != len(m.Settings) {
		t.Errorf("Build().Len() = %v, want %v", reg.Len(), len(m.Settings))
	}
	if !reg.At(3).IsSeparator() {
		t.Error("row 3 should be a separator")
	}
	if s := reg.Find("MODE"); s == nil || !s.Live || s.Value() != "FM" {
		t.Errorf("MODE = %+v, want live setting at FM", s)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "menu.yaml")

	if err := DefaultMenu().Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# Settings Menu definition") {
		t.Error("saved file should start with the header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Settings) != len(DefaultMenu().Settings) {
		t.Errorf("loaded %d settings, want %d", len(loaded.Settings), len(DefaultMenu().Settings))
	}
	if !loaded.Settings[3].Separator {
		t.Error("separator should survive a round trip")
	}
	if loaded.Display.Capacity != 32 {
		t.Errorf("Capacity = %v, want 32", loaded.Display.Capacity)
	}
}

func TestLoadDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if runtime.GOOS == "windows" {
		t.Setenv("LOCALAPPDATA", os.Getenv("XDG_CONFIG_HOME"))
	}
	if runtime.GOOS == "darwin" {
		t.Setenv("HOME", os.Getenv("XDG_CONFIG_HOME"))
	}

	// Missing file falls back to the built-in menu
	m, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if len(m.Settings) != len(DefaultMenu().Settings) {
		t.Error("LoadDefault() without a file should return DefaultMenu()")
	}

	custom := &MenuFile{
		Version:  1,
		Settings: []SettingDef{{Name: "ONLY", Values: []string{"x"}}},
	}
	if err := custom.Save(""); err != nil {
		t.Fatalf("Save(\"\") error = %v", err)
	}

	m, err = LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if len(m.Settings) != 1 || m.Settings[0].Name != "ONLY" {
		t.Errorf("LoadDefault() = %+v, want the saved menu", m.Settings)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid",
			yaml: `version: 1
settings:
  - {name: A, values: ["1", "2"], initial: 1}
  - {separator: true}
  - {name: B, values: ["x"], live: true, handler: apply}
`,
		},
		{
			name:    "bad version",
			yaml:    "version: 2\nsettings: []\n",
			wantErr: "unsupported menu version",
		},
		{
			name:    "missing name",
			yaml:    "version: 1\nsettings:\n  - {values: [\"1\"]}\n",
			wantErr: "name is required",
		},
		{
			name:    "duplicate",
			yaml:    "version: 1\nsettings:\n  - {name: A, values: [\"1\"]}\n  - {name: A, values: [\"2\"]}\n",
			wantErr: "duplicate name",
		},
		{
			name:    "no values",
			yaml:    "version: 1\nsettings:\n  - {name: A}\n",
			wantErr: "at least one value",
		},
		{
			name:    "initial out of range",
			yaml:    "version: 1\nsettings:\n  - {name: A, values: [\"1\"], initial: 3}\n",
			wantErr: "out of range",
		},
		{
			name:    "negative display",
			yaml:    "version: 1\ndisplay: {rows: -1}\nsettings: []\n",
			wantErr: "must not be negative",
		},
		{
			name:    "not yaml",
			yaml:    "version: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Parse() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	m := &MenuFile{
		Version: 1,
		Display: &DisplayConf{Capacity: 2},
		Settings: []SettingDef{
			{Name: "A", Values: []string{"1", "2"}, Initial: 1},
			{Separator: true},
			{Name: "B", Values: []string{"x", "y"}, Live: true, Handler: "reject"},
		},
	}

	// Capacity is raised to fit every entry
	if m.Capacity() != 3 {
		t.Errorf("Capacity() = %v, want 3", m.Capacity())
	}

	reg, err := m.Build(testHandlers)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if reg.Find("A").Current != 1 {
		t.Errorf("A.Current = %v, want 1", reg.Find("A").Current)
	}
	b := reg.Find("B")
	if !b.Live {
		t.Error("B should be live")
	}
	b.Tentative = 1
	if b.Decide().Accepted {
		t.Error("B should use the reject handler")
	}

	m.Settings[2].Handler = "unknown"
	if _, err := m.Build(testHandlers); err == nil || !strings.Contains(err.Error(), `"B"`) {
		t.Errorf("Build() with unknown handler error = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
