package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrNotFound      ErrorType = "NOT_FOUND"
	ErrInvalidInput  ErrorType = "INVALID_INPUT"
	ErrInternal      ErrorType = "INTERNAL"
	ErrUnauthorized  ErrorType = "UNAUTHORIZED"
	ErrConfiguration ErrorType = "CONFIGURATION"
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// TypeOf returns the type of the first AppError in err's chain, or ErrInternal
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	var valErr *ValidationError
	if stderrors.As(err, &valErr) {
		return ErrInvalidInput
	}
	return ErrInternal
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return err != nil && TypeOf(err) == ErrNotFound
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return err != nil && TypeOf(err) == ErrInvalidInput
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return err != nil && TypeOf(err) == ErrUnauthorized
}

// IsConfiguration checks if the error is a configuration error
func IsConfiguration(err error) bool {
	return err != nil && TypeOf(err) == ErrConfiguration
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, err error) *AppError {
	return New(ErrNotFound, message, err)
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(message string, err error) *AppError {
	return New(ErrInvalidInput, message, err)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, err error) *AppError {
	return New(ErrUnauthorized, message, err)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return New(ErrInternal, message, err)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(message string, err error) *AppError {
	return New(ErrConfiguration, message, err)
}

// ValidationError collects every parameter that failed validation, keyed by parameter name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a failure for a parameter; the first failure per parameter wins
func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = reason
	}
}

// HasErrors reports whether any parameter failed validation
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}
