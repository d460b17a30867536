// Package errors defines the typed error taxonomy shared by the light
// curve analysis pipeline. Every stage failure is classified so the CLI
// can report it and halt the run.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrTypeNotFound marks an input file that does not exist or cannot
	// be opened.
	ErrTypeNotFound ErrorType = "NOT_FOUND"

	// ErrTypeLoad marks an input file that exists but is structurally
	// malformed (unreadable as a delimited table).
	ErrTypeLoad ErrorType = "LOAD"

	// ErrTypeEmpty marks a run in which no usable observations remain
	// after cleaning. The run terminates before statistics and plotting.
	ErrTypeEmpty ErrorType = "EMPTY_RESULT"

	// ErrTypeRender marks a plot rasterization or image write failure.
	ErrTypeRender ErrorType = "RENDER"

	// ErrTypeStorage marks a failure persisting a derived artifact
	// (cleaned CSV, statistics report or JSON).
	ErrTypeStorage ErrorType = "STORAGE"

	// ErrTypeValidation marks rejected input preconditions.
	ErrTypeValidation ErrorType = "VALIDATION"

	// ErrTypeConfig marks invalid or unloadable configuration.
	ErrTypeConfig ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// TypeOf returns the classification of err, or an empty type when err does
// not carry one.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// Helper functions for common error types

// NewNotFoundError creates an error for a missing or unopenable input file
func NewNotFoundError(path string, cause error) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("input file not found: %s", path), cause).
		WithContext("path", path)
}

// NewLoadError creates an error for a structurally malformed input
func NewLoadError(message string, cause error) *AppError {
	return NewAppError(ErrTypeLoad, message, cause)
}

// NewEmptyResultError creates an error for a run left without usable
// observations
func NewEmptyResultError(message string) *AppError {
	return NewAppError(ErrTypeEmpty, message, nil)
}

// NewRenderError creates a plot rendering error
func NewRenderError(message string, cause error) *AppError {
	return NewAppError(ErrTypeRender, message, cause)
}

// NewStorageError creates an artifact persistence error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
