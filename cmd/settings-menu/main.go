// Settings-menu is an interactive settings menu for a small character display.
//
// It loads a menu definition (a list of named settings, each with a fixed
// set of values) and lets the user browse and edit it with four inputs:
// next, prev, ok and cancel. The same menu can be driven from the terminal,
// replayed from a script, or served over a websocket.
//
// Usage:
//
//	settings-menu [command] [flags]
//
// Running without arguments opens the interactive menu.
// See 'settings-menu --help' for available commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kvdijken/Settings/internal/logging"
	"github.com/kvdijken/Settings/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "settings-menu",
	Short: "Settings menu for a small character display",
	Long: `An interactive settings menu for a small character display.

Settings are browsed with next/prev and edited in place: ok enters edit
mode and commits, cancel rolls back. Live settings push every browsed value
to their handler immediately; the others are only checked on commit.

If no command is specified, the interactive menu opens.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd, args)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Assigned here: setupLogging refers back to rootCmd
	rootCmd.PersistentPreRunE = setupLogging

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Menu file (default: $XDG_CONFIG_HOME/settings-menu/menu.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stdout")

	rootCmd.AddCommand(versionCmd)
}

// setupLogging initializes zap from the flags. The interactive menu owns the
// terminal, so its logs go to a file even when --log-file is not given.
func setupLogging(cmd *cobra.Command, args []string) error {
	path := logFile
	if path == "" && ownsTerminal(cmd) {
		path = filepath.Join(os.TempDir(), "settings-menu.log")
	}
	return logging.InitializeWithOutput(logLevel, path)
}

func ownsTerminal(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == runCmd
}

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			return printJSON(cmd.OutOrStdout(), version.Get())
		}
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "settings-menu %s (commit: %s, %s, %s)\n",
			info.Version, info.Commit, info.GoVersion, info.Platform)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print as JSON")
}
