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

// ValidationError captures configuration validation issues.
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

// ComponentError indicates issues within component registration, construction or init.
type ComponentError struct {
	Component string
	Message   string
	Err       error
}

// NewComponentError constructs a ComponentError for the given component identifier.
func NewComponentError(component string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ComponentError{Component: component, Message: message, Err: err}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("component error [%s]: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("component error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HookError reports a callback that failed while the host dispatched a hook.
type HookError struct {
	Tag      string
	Callback string
	Err      error
}

// NewHookError constructs a HookError.
func NewHookError(tag, callback string, err error) error {
	return &HookError{Tag: tag, Callback: callback, Err: err}
}

func (e *HookError) Error() string {
	if e == nil {
		return ""
	}
	if e.Callback != "" {
		return fmt.Sprintf("hook error on %s (%s): %v", e.Tag, e.Callback, e.Err)
	}
	return fmt.Sprintf("hook error on %s: %v", e.Tag, e.Err)
}

// Unwrap exposes the root error.
func (e *HookError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
