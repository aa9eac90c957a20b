// Package errors provides structured error types and exit codes for errdoc.
package errors

import (
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess     = 0 // Success
	ExitFailure     = 1 // Runtime error (file unreadable, stale listing, etc.)
	ExitConfigError = 2 // Configuration error (invalid config, bad pattern, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
)

// ErrdocError is the base error type for errdoc.
type ErrdocError struct {
	Kind    ErrorKind
	Message string
	Path    string // File path if applicable
	Cause   error  // Underlying error
}

func (e *ErrdocError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ErrdocError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *ErrdocError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	default:
		return ExitFailure
	}
}

// New creates a new runtime error.
func New(message string) *ErrdocError {
	return &ErrdocError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *ErrdocError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *ErrdocError {
	return &ErrdocError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *ErrdocError {
	return Config(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *ErrdocError {
	return &ErrdocError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// PathError creates a runtime error tied to a specific file.
func PathError(path, message string, cause error) *ErrdocError {
	return &ErrdocError{
		Kind:    KindRuntime,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *ErrdocError {
	return &ErrdocError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ee, ok := err.(*ErrdocError); ok {
		return ee.ExitCode()
	}
	return ExitFailure
}
