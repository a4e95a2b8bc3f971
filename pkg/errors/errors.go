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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Host config errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Card document errors
	ErrParse ErrorCode = "PARSE"

	// Render errors
	ErrUnsupportedElement ErrorCode = "UNSUPPORTED_ELEMENT"
	ErrDropped            ErrorCode = "DROPPED"
	ErrStyleNotFound      ErrorCode = "STYLE_NOT_FOUND"
	ErrRender             ErrorCode = "RENDER"
)

// CardError represents a structured error with code and details
type CardError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CardError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CardError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface. Two CardErrors match when their codes match.
func (e *CardError) Is(target error) bool {
	var targetErr *CardError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CardError with the given code and message
func New(code ErrorCode, message string) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CardError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CardError {
	return &CardError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CardError
func Wrap(err error, code ErrorCode, message string) *CardError {
	if err == nil {
		return nil
	}
	return &CardError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CardError {
	if err == nil {
		return nil
	}
	return &CardError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CardError) WithDetail(key string, value interface{}) *CardError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *CardError) WithDetails(details map[string]interface{}) *CardError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cardErr *CardError
	if errors.As(err, &cardErr) {
		return cardErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CardError
func GetErrorCode(err error) ErrorCode {
	var cardErr *CardError
	if errors.As(err, &cardErr) {
		return cardErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CardError
func GetErrorDetails(err error) map[string]interface{} {
	var cardErr *CardError
	if errors.As(err, &cardErr) {
		return cardErr.Details
	}
	return nil
}
