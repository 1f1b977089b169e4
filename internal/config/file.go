package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName  = "settings-menu"
	menuFile = "menu.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/settings-menu or $HOME/.config/settings-menu
//   - macOS: $HOME/.config/settings-menu
//   - Windows: %LOCALAPPDATA%\settings-menu
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetMenuPath returns the full path to the default menu file.
func GetMenuPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, menuFile), nil
}

// Load reads and validates a menu file.
func Load(path string) (*MenuFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates menu file contents.
func Parse(data []byte) (*MenuFile, error) {
	var m MenuFile
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu file: %w", err)
	}
	return &m, nil
}

// LoadDefault loads the menu file from the configuration directory. If the
// file doesn't exist, DefaultMenu is returned.
func LoadDefault() (*MenuFile, error) {
	path, err := GetMenuPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get menu path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultMenu(), nil
	}
	return Load(path)
}

// Save writes the menu file to path. An empty path means the default
// location. Performs an atomic write to prevent corruption on crash.
func (m *MenuFile) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		p, err := GetMenuPath()
		if err != nil {
			return fmt.Errorf("failed to get menu path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}

	header := []byte(`# Settings Menu definition
# Each entry is a setting (name, values, initial index, live flag, handler)
# or a blank separator row. Handlers: accept, reject, apply, apply-reject.
#
# Committed values are not written back to this file.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary menu file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save menu file: %w", err)
	}

	return nil
}
