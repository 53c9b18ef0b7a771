package plugin

import (
	"errors"
	"fmt"
)

// Code classifies engine errors.
type Code string

// Error codes.
const (
	CodePluginNotFound           Code = "PLUGIN_NOT_FOUND"
	CodePluginRegistrationFailed Code = "PLUGIN_REGISTRATION_FAILED"
	CodePatternConflict          Code = "PATTERN_CONFLICT"
	CodeInvalidPattern           Code = "INVALID_PATTERN"
	CodeExecutionFailed          Code = "EXECUTION_FAILED"
	CodeBufferError              Code = "BUFFER_ERROR"
	CodeCursorError              Code = "CURSOR_ERROR"
	CodeModeError                Code = "MODE_ERROR"
)

// Error is a tagged engine error carrying the offending plugin's name
// where known.
type Error struct {
	// Code classifies the error.
	Code Code

	// Plugin is the name of the plugin involved, if known.
	Plugin string

	// Err is the underlying cause, if any.
	Err error
}

// NewError creates a tagged error.
func NewError(code Code, pluginName string, err error) *Error {
	return &Error{Code: code, Plugin: pluginName, Err: err}
}

// Errorf creates a tagged error with a formatted cause.
func Errorf(code Code, pluginName, format string, args ...any) *Error {
	return &Error{Code: code, Plugin: pluginName, Err: fmt.Errorf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Plugin != "" && e.Err != nil:
		return fmt.Sprintf("%s (plugin %s): %v", e.Code, e.Plugin, e.Err)
	case e.Plugin != "":
		return fmt.Sprintf("%s (plugin %s)", e.Code, e.Plugin)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return string(e.Code)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by code, so errors.Is(err, &Error{Code: c}) and the
// code sentinels below work through wrapping.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// CodeOf extracts the error code from err, or "" when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Code sentinels for use with errors.Is.
var (
	ErrPluginNotFound           = &Error{Code: CodePluginNotFound}
	ErrPluginRegistrationFailed = &Error{Code: CodePluginRegistrationFailed}
	ErrPatternConflict          = &Error{Code: CodePatternConflict}
	ErrInvalidPattern           = &Error{Code: CodeInvalidPattern}
	ErrExecutionFailed          = &Error{Code: CodeExecutionFailed}
)
