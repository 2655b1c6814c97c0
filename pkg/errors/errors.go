package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines different categories of errors
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUpstream     ErrorType = "UPSTREAM"
	ErrorTypeInternal     ErrorType = "INTERNAL"
)

// AppError is the custom error type for the application
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work
func (e *AppError) Unwrap() error {
	return e.Err
}

// Constructor functions for different error types

// NewValidation creates a validation error
func NewValidation(message string) error {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewUnauthorized creates an authentication error
func NewUnauthorized(message string) error {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message}
}

// NewNotFound creates a not found error
func NewNotFound(message string) error {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// NewUpstream creates an error for a failed call to the hosted store or a third-party API
func NewUpstream(message string, err error) error {
	return &AppError{Type: ErrorTypeUpstream, Message: message, Err: err}
}

// NewInternal creates an internal error
func NewInternal(message string, err error) error {
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, preserve the type
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Type:    appErr.Type,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
		}
	}

	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// TypeOf returns the category of err, INTERNAL for anything that is not an AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeValidation
}

// IsUnauthorized checks if an error is an authentication error
func IsUnauthorized(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeUnauthorized
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeNotFound
}

// IsUpstream checks if an error came from the store or a third-party API
func IsUpstream(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeUpstream
}

// HTTPStatus maps an error to the status code returned at the handler boundary.
// Upstream and internal failures collapse to 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch TypeOf(err) {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to show to callers.
func PublicMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "An internal error occurred"
	}
	switch appErr.Type {
	case ErrorTypeUpstream, ErrorTypeInternal:
		return "An internal error occurred"
	default:
		return appErr.Message
	}
}
