package settings

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypeCapacityExceeded, "Capacity Exceeded"},
		{ErrTypeNoSelectableRow, "No Selectable Row"},
		{ErrTypeDisplayUnavailable, "Display Unavailable"},
		{ErrTypeInvalidSetting, "Invalid Setting"},
		{ErrorType(99), "ErrorType(99)"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", int(tt.et), got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewCapacityError("GAIN", 4)
	msg := err.Error()

	if !strings.Contains(msg, "Capacity Exceeded") {
		t.Errorf("Error() = %q, should contain type", msg)
	}
	if !strings.Contains(msg, `"GAIN"`) {
		t.Errorf("Error() = %q, should contain setting name", msg)
	}

	noName := NewDisplayUnavailableError().Error()
	if strings.Contains(noName, "setting") {
		t.Errorf("Error() = %q, should omit setting when empty", noName)
	}
}

func TestErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("building menu: %w", NewInvalidSettingError("X", "bad"))

	if !IsInvalidSetting(wrapped) {
		t.Error("IsInvalidSetting() should see through wrapping")
	}
	if IsCapacityExceeded(wrapped) {
		t.Error("IsCapacityExceeded() should be false for InvalidSetting")
	}
	if !IsNoSelectableRow(NewNoSelectableRowError(1)) {
		t.Error("IsNoSelectableRow() should be true")
	}
	if !IsDisplayUnavailable(NewDisplayUnavailableError()) {
		t.Error("IsDisplayUnavailable() should be true")
	}
	if IsCapacityExceeded(errors.New("plain")) {
		t.Error("plain errors should not match any type")
	}
}
