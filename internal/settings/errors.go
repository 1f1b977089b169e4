package settings

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a settings error
type ErrorType int

const (
	// ErrTypeCapacityExceeded indicates the registry is full
	ErrTypeCapacityExceeded ErrorType = iota
	// ErrTypeNoSelectableRow indicates there is no editable row in the requested direction
	ErrTypeNoSelectableRow
	// ErrTypeDisplayUnavailable indicates a draw request without display control
	ErrTypeDisplayUnavailable
	// ErrTypeInvalidSetting indicates a setting definition that cannot be edited
	ErrTypeInvalidSetting
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeCapacityExceeded:
		return "Capacity Exceeded"
	case ErrTypeNoSelectableRow:
		return "No Selectable Row"
	case ErrTypeDisplayUnavailable:
		return "Display Unavailable"
	case ErrTypeInvalidSetting:
		return "Invalid Setting"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by registry operations.
type Error struct {
	Type    ErrorType
	Message string
	Setting string // name of the setting involved, if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Setting != "" {
		return fmt.Sprintf("%s: %s (setting %q)", e.Type, e.Message, e.Setting)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewCapacityError creates a CapacityExceeded error
func NewCapacityError(name string, capacity int) *Error {
	return &Error{
		Type:    ErrTypeCapacityExceeded,
		Message: fmt.Sprintf("registry holds at most %d settings", capacity),
		Setting: name,
	}
}

// NewInvalidSettingError creates an InvalidSetting error
func NewInvalidSettingError(name, message string) *Error {
	return &Error{
		Type:    ErrTypeInvalidSetting,
		Message: message,
		Setting: name,
	}
}

// NewNoSelectableRowError creates a NoSelectableRow error
func NewNoSelectableRowError(direction int) *Error {
	return &Error{
		Type:    ErrTypeNoSelectableRow,
		Message: fmt.Sprintf("no editable row in direction %+d", direction),
	}
}

// NewDisplayUnavailableError creates a DisplayUnavailable error
func NewDisplayUnavailableError() *Error {
	return &Error{
		Type:    ErrTypeDisplayUnavailable,
		Message: "display control has not been taken",
	}
}

func isType(err error, t ErrorType) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}

// IsCapacityExceeded checks if an error is a capacity error
func IsCapacityExceeded(err error) bool {
	return isType(err, ErrTypeCapacityExceeded)
}

// IsInvalidSetting checks if an error is a setting validation error
func IsInvalidSetting(err error) bool {
	return isType(err, ErrTypeInvalidSetting)
}

// IsNoSelectableRow checks if an error is a navigation error
func IsNoSelectableRow(err error) bool {
	return isType(err, ErrTypeNoSelectableRow)
}

// IsDisplayUnavailable checks if an error is a display gating error
func IsDisplayUnavailable(err error) bool {
	return isType(err, ErrTypeDisplayUnavailable)
}
