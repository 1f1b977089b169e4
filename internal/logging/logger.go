package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SETTINGS_MENU_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to stdout.
// If level is empty, it checks SETTINGS_MENU_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWithOutput(level, "")
}

// InitializeWithOutput is Initialize with an explicit output path. The
// interactive menu owns the terminal, so it logs to a file instead of stdout.
// An empty path means stdout.
func InitializeWithOutput(level, path string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = "stdout"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if path == "stdout" || path == "stderr" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// No escape codes in log files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the SETTINGS_MENU_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

// ParseLevel maps a level name onto a zap level. Unknown names give info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogTransition logs a menu mode change
func LogTransition(event string, from string, to string, selected int) {
	Debug("Menu transition",
		zap.String("event", event),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("selected", selected),
	)
}

// LogDecision logs the result of an acceptance callback
func LogDecision(setting string, value string, phase string, applied bool, accepted bool) {
	Info("Acceptance decision",
		zap.String("setting", setting),
		zap.String("value", value),
		zap.String("phase", phase),
		zap.Bool("applied", applied),
		zap.Bool("accepted", accepted),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
