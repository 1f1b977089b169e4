package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitializeWithOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.log")

	if err := InitializeWithOutput("debug", path); err != nil {
		t.Fatalf("InitializeWithOutput() error = %v", err)
	}
	defer SetLogger(nil)

	LogTransition("accept", "browsing", "editing", 2)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "Menu transition") {
		t.Errorf("log file = %q, should contain the transition", string(data))
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Error("log file should not contain colour escape codes")
	}
}

func TestLogDecisionFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogDecision("VOLUME", "10", "live", true, false)

	entries := logs.FilterMessage("Acceptance decision").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["setting"] != "VOLUME" || ctx["accepted"] != false || ctx["applied"] != true {
		t.Errorf("unexpected fields: %v", ctx)
	}
}
