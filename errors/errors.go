package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of an application error
type ErrorCode string

const (
	// Resolution errors
	ErrCodeInvalidRule    ErrorCode = "INVALID_RULE"
	ErrCodeMissingContext ErrorCode = "MISSING_CONTEXT"
	ErrCodeDomainRange    ErrorCode = "DOMAIN_RANGE"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError is the error type returned by services
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is, or wraps, an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError returns the first AppError in err's chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries an AppError with the given code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Resolution errors
	ErrInvalidRule    = errors.New("invalid holiday rule")
	ErrMissingContext = errors.New("missing easter date for easter-relative rule")
	ErrDomainRange    = errors.New("year outside supported range")

	// Validation errors
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidFormat = errors.New("invalid format")
)

// InvalidRule reports a structurally inconsistent rule record
func InvalidRule(format string, v ...interface{}) *AppError {
	return NewAppError(ErrCodeInvalidRule, fmt.Sprintf(format, v...), ErrInvalidRule)
}

// MissingContext reports an easter-relative rule resolved without an easter date
func MissingContext(ruleName string) *AppError {
	return NewAppError(ErrCodeMissingContext, fmt.Sprintf("rule %q needs the easter date of the target year", ruleName), ErrMissingContext)
}

// DomainRange reports a year the calendar algorithms cannot serve
func DomainRange(year, min, max int) *AppError {
	return NewAppError(ErrCodeDomainRange, fmt.Sprintf("year %d must be between %d and %d", year, min, max), ErrDomainRange)
}
