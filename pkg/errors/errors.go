package errors

import (
	"fmt"
	"strings"
)

// UnknownColorVariantError reports a color variant request with no matching
// palette entry.
type UnknownColorVariantError struct {
	Name  string
	Shade int
}

// NewUnknownColorVariantError constructs an UnknownColorVariantError.
func NewUnknownColorVariantError(name string, shade int) error {
	return &UnknownColorVariantError{Name: name, Shade: shade}
}

func (e *UnknownColorVariantError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown color variant: %s_%d", strings.ToUpper(e.Name), e.Shade)
}

// UnknownClassError reports a utility class token that matches no dispatch
// rule.
type UnknownClassError struct {
	Class string
}

// NewUnknownClassError constructs an UnknownClassError.
func NewUnknownClassError(class string) error {
	return &UnknownClassError{Class: class}
}

func (e *UnknownClassError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown utility class %q", e.Class)
}

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

// ValidationError captures palette configuration validation issues.
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
