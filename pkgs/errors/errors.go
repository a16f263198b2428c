package errors

import (
	"fmt"
)

// Error types for the host list tool
const (
	// Input errors
	ErrInputRead    = "INPUT_READ_ERROR"
	ErrFileNotFound = "FILE_NOT_FOUND"

	// Watch errors
	ErrWatchSetup = "WATCH_SETUP_ERROR"
	ErrWatchEvent = "WATCH_EVENT_ERROR"

	// Output errors
	ErrOutputWrite = "OUTPUT_WRITE_ERROR"
	ErrEncode      = "ENCODE_ERROR"
)

// HostListError represents a structured error with type and context
type HostListError struct {
	Type    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *HostListError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows error unwrapping
func (e *HostListError) Unwrap() error {
	return e.Cause
}

// Wrap creates a new HostListError wrapping an existing error
func Wrap(errorType, message string, cause error) *HostListError {
	return &HostListError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *HostListError) WithContext(key string, value interface{}) *HostListError {
	e.Context[key] = value
	return e
}

// NewInputError creates an input-related error
func NewInputError(source string, cause error) *HostListError {
	return Wrap(ErrInputRead, fmt.Sprintf("Failed to read configuration from '%s'", source), cause).
		WithContext("source", source)
}

// NewFileNotFoundError reports a configuration file that cannot be opened
func NewFileNotFoundError(path string, cause error) *HostListError {
	return Wrap(ErrFileNotFound, fmt.Sprintf("Cannot open configuration file '%s'", path), cause).
		WithContext("path", path)
}

// NewWatchError creates a watcher setup error
func NewWatchError(path string, cause error) *HostListError {
	return Wrap(ErrWatchSetup, fmt.Sprintf("Failed to watch '%s'", path), cause).
		WithContext("path", path)
}

// NewOutputError creates an output write error
func NewOutputError(stream string, cause error) *HostListError {
	return Wrap(ErrOutputWrite, fmt.Sprintf("Failed to write %s", stream), cause).
		WithContext("stream", stream)
}

// IsErrorType checks if an error, or any error it wraps, is of a specific type
func IsErrorType(err error, errorType string) bool {
	for err != nil {
		if hlErr, ok := err.(*HostListError); ok && hlErr.Type == errorType {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
