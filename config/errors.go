package config

import (
	"errors"
	"fmt"
)

// Error reports a configuration field that could not be loaded or is invalid
type Error struct {
	Field   string // offending key, or "file" for load failures
	Message string
	Cause   error // optional
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

// Unwrap supports errors.Is and errors.As through the cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new configuration error
func NewError(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// WrapError creates a configuration error around cause
func WrapError(field, message string, cause error) *Error {
	return &Error{Field: field, Message: message, Cause: cause}
}

// IsInvalidField reports whether err is a configuration error for field
func IsInvalidField(err error, field string) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr) && cfgErr.Field == field
}
