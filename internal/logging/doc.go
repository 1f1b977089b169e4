// Package logging provides structured logging for the settings menu.
//
// This package wraps a zap logger with package-level helpers so that any
// component can log without carrying a logger around. Logging is silent by
// default: nothing is written until a level is configured.
//
// # Log Levels
//
//   - Debug: Menu transitions, skipped draw requests, remote frames
//   - Info: Acceptance decisions, server start/stop
//   - Warn: Rejected remote commands, mDNS failures
//   - Error: Startup failures
//
// # Configuration
//
// The level comes from the --log-level flag or the SETTINGS_MENU_LOG_LEVEL
// environment variable:
//
//	if err := logging.InitializeWithOutput("debug", "/tmp/menu.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The interactive menu draws on stdout, so it should be given a log file.
//
// # Domain Helpers
//
//	logging.LogTransition("accept", "browsing", "editing", 3)
//	logging.LogDecision("VOLUME", "10", "live", true, false)
package logging
