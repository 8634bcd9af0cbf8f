package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and threshold validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EnvironmentError reports that a host capability the caller depends on is
// unavailable, such as a missing viewport source or a non-interactive output.
type EnvironmentError struct {
	Capability string
	Message    string
	Err        error
}

// NewEnvironmentError constructs an EnvironmentError for the named capability.
func NewEnvironmentError(capability, message string, err error) error {
	return &EnvironmentError{Capability: capability, Message: message, Err: err}
}

func (e *EnvironmentError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Capability != "" {
		return fmt.Sprintf("environment error [%s]: %s", e.Capability, msg)
	}
	return fmt.Sprintf("environment error: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *EnvironmentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
