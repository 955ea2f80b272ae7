package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Input errors
	ErrorTypeInputNotFound ErrorType = "input_not_found"
	ErrorTypeInvalidSizing ErrorType = "invalid_sizing"

	// Processing errors
	ErrorTypeDecode ErrorType = "decode"
	ErrorTypeEncode ErrorType = "encode"

	// System errors
	ErrorTypeStorage  ErrorType = "storage"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeInternal ErrorType = "internal"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType
	Message    string
	InnerError error
	ExitCode   int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.InnerError != nil {
		return e.InnerError.Error()
	}
	return string(e.Type)
}

// Unwrap returns the inner error
func (e *AppError) Unwrap() error {
	return e.InnerError
}

// WithInnerError sets the inner error
func (e *AppError) WithInnerError(err error) *AppError {
	e.InnerError = err
	return e
}

// WithExitCode sets the process exit code
func (e *AppError) WithExitCode(code int) *AppError {
	e.ExitCode = code
	return e
}

// Is checks if this error is of a specific type
func (e *AppError) Is(target error) bool {
	if targetApp, ok := target.(*AppError); ok {
		return e.Type == targetApp.Type
	}
	return false
}

// New creates a new AppError
func New(errType ErrorType, message string) *AppError {
	return &AppError{
		Type:     errType,
		Message:  message,
		ExitCode: 1,
	}
}

// FromError converts a standard error to AppError
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Type:       ErrorTypeUnknown,
		Message:    err.Error(),
		InnerError: err,
		ExitCode:   1,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *AppError {
	e := FromError(err)
	e.Message = message
	return e
}

// WrapWithType wraps an error with a specific type
func WrapWithType(err error, errType ErrorType, message string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		InnerError: err,
		ExitCode:   1,
	}
}

// Input errors
func NewInputNotFound(path string) *AppError {
	return New(ErrorTypeInputNotFound, fmt.Sprintf("Input file '%s' not found", path))
}

func NewInvalidSizing(message string) *AppError {
	return New(ErrorTypeInvalidSizing, message)
}

// Processing errors
func NewDecode(err error) *AppError {
	return WrapWithType(err, ErrorTypeDecode, "cannot decode source image")
}

func NewEncode(err error) *AppError {
	return WrapWithType(err, ErrorTypeEncode, "cannot encode output image")
}

// System errors
func NewStorage(err error, message string) *AppError {
	return WrapWithType(err, ErrorTypeStorage, message)
}

func NewConfig(err error, message string) *AppError {
	return WrapWithType(err, ErrorTypeConfig, message)
}

func NewInternal(message string) *AppError {
	return New(ErrorTypeInternal, message)
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Type == errType
}

// ExitCode returns the process exit code for err, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	appErr := FromError(err)
	if appErr.ExitCode == 0 {
		return 1
	}
	return appErr.ExitCode
}

// Format renders the one-line user-facing message for err.
// Pre-flight errors keep the bare "Error:" prefix; anything raised
// during decode/transform/encode reports as a processing failure.
func Format(err error) string {
	if err == nil {
		return ""
	}

	appErr := FromError(err)
	switch appErr.Type {
	case ErrorTypeInputNotFound, ErrorTypeInvalidSizing, ErrorTypeConfig, ErrorTypeUnknown:
		return fmt.Sprintf("Error: %s", appErr.Error())
	default:
		msg := appErr.Error()
		if appErr.InnerError != nil && appErr.Message != "" {
			msg = fmt.Sprintf("%s: %v", appErr.Message, appErr.InnerError)
		}
		return fmt.Sprintf("Error processing image: %s", msg)
	}
}
