package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with a stable kind tag and HTTP status
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error kind tags
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
	CodeAuth       = "AUTH_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// Common application errors.
// ErrAuth deliberately carries a single message for every credential failure
// so callers cannot distinguish a wrong identifier from a wrong password.
var (
	ErrValidation = &AppError{Code: CodeValidation, Message: "validation failed", Status: http.StatusBadRequest}
	ErrConflict   = &AppError{Code: CodeConflict, Message: "resource conflict", Status: http.StatusConflict}
	ErrAuth       = &AppError{Code: CodeAuth, Message: "invalid credentials", Status: http.StatusUnauthorized}
	ErrNotFound   = &AppError{Code: CodeNotFound, Message: "resource not found", Status: http.StatusNotFound}
	ErrInternal   = &AppError{Code: CodeInternal, Message: "internal error", Status: http.StatusInternalServerError}
)

// New creates a new AppError
func New(code string, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// Wrap wraps an error with an AppError
func Wrap(err error, appErr *AppError) *AppError {
	return &AppError{
		Code:    appErr.Code,
		Message: appErr.Message,
		Status:  appErr.Status,
		Err:     err,
	}
}

// WithMessage returns a new AppError with a custom message
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Err:     e.Err,
	}
}

// WithMessagef returns a new AppError with a formatted message
func (e *AppError) WithMessagef(format string, args ...any) *AppError {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithError returns a new AppError with a wrapped error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Status:  e.Status,
		Err:     err,
	}
}

// Is checks if the error carries the same kind tag as target
func Is(err error, target *AppError) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == target.Code
	}
	return false
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool { return Is(err, ErrValidation) }

// IsConflict reports whether err is a uniqueness/storage conflict
func IsConflict(err error) bool { return Is(err, ErrConflict) }

// IsAuth reports whether err is a credential failure
func IsAuth(err error) bool { return Is(err, ErrAuth) }

// IsNotFound reports whether err is a missing or soft-deleted record lookup
func IsNotFound(err error) bool { return Is(err, ErrNotFound) }

// GetStatus returns the HTTP status from an error
func GetStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
