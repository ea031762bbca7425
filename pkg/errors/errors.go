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

	// Configuration construction errors
	ErrInvalidOverride        ErrorCode = "INVALID_OVERRIDE"
	ErrUnknownPolicyReference ErrorCode = "UNKNOWN_POLICY_REFERENCE"
	ErrDuplicateKey           ErrorCode = "DUPLICATE_KEY"
	ErrRegistrySealed         ErrorCode = "REGISTRY_SEALED"
	ErrInvalidPattern         ErrorCode = "INVALID_PATTERN"
	ErrInvalidSeverity        ErrorCode = "INVALID_SEVERITY"

	// Resolution errors
	ErrInvalidPath ErrorCode = "INVALID_PATH"

	// Configuration source errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
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
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an *Error
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an *Error
func GetErrorDetails(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
