package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Style declaration errors
	ErrStyleParse       ErrorCode = "STYLE_PARSE"
	ErrInvalidColor     ErrorCode = "INVALID_COLOR"
	ErrInvalidWeight    ErrorCode = "INVALID_WEIGHT"
	ErrInvalidBool      ErrorCode = "INVALID_BOOL"
	ErrInvalidAttribute ErrorCode = "INVALID_ATTRIBUTE"

	// Theme file errors
	ErrThemeLoad  ErrorCode = "THEME_LOAD"
	ErrThemeParse ErrorCode = "THEME_PARSE"

	// Markup errors
	ErrMarkupParse ErrorCode = "MARKUP_PARSE"

	// Output configuration errors
	ErrInvalidColorChoice ErrorCode = "INVALID_COLOR_CHOICE"

	// Span resolution errors
	ErrSpanOutOfRange ErrorCode = "SPAN_OUT_OF_RANGE"
)

// ReportError represents a structured error with code and details
type ReportError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ReportError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ReportError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ReportError) Is(target error) bool {
	var targetErr *ReportError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ReportError with the given code and message
func New(code ErrorCode, message string) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ReportError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ReportError {
	return &ReportError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ReportError
func Wrap(err error, code ErrorCode, message string) *ReportError {
	if err == nil {
		return nil
	}
	return &ReportError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ReportError {
	if err == nil {
		return nil
	}
	return &ReportError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ReportError) WithDetail(key string, value interface{}) *ReportError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ReportError
func GetErrorCode(err error) ErrorCode {
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Code
	}
	return ErrUnknown
}
