package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "error without wrapped error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "resource not found",
			},
			expected: "resource not found",
		},
		{
			name: "error with wrapped error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("write failed"),
			},
			expected: "internal error: write failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := &AppError{
		Code:    CodeInternal,
		Message: "wrapped error",
		Err:     originalErr,
	}

	if unwrapped := appErr.Unwrap(); unwrapped != originalErr {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, originalErr)
	}

	appErrNoWrap := &AppError{
		Code:    CodeValidation,
		Message: "no wrap",
	}
	if unwrapped := appErrNoWrap.Unwrap(); unwrapped != nil {
		t.Errorf("AppError.Unwrap() = %v, want nil", unwrapped)
	}
}

func TestNew(t *testing.T) {
	appErr := New(CodeValidation, "phone must contain ten digits", http.StatusBadRequest)

	if appErr.Code != CodeValidation {
		t.Errorf("New() Code = %v, want %v", appErr.Code, CodeValidation)
	}
	if appErr.Message != "phone must contain ten digits" {
		t.Errorf("New() Message = %v", appErr.Message)
	}
	if appErr.Status != http.StatusBadRequest {
		t.Errorf("New() Status = %v, want %v", appErr.Status, http.StatusBadRequest)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("duplicate key")
	wrapped := Wrap(cause, ErrConflict)

	if wrapped.Code != CodeConflict {
		t.Errorf("Wrap() Code = %v, want %v", wrapped.Code, CodeConflict)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("Wrap() lost the original error chain")
	}
}

func TestWithMessage(t *testing.T) {
	err := ErrValidation.WithMessage("email is not valid")
	if err.Message != "email is not valid" {
		t.Errorf("WithMessage() Message = %v", err.Message)
	}
	if err.Code != CodeValidation {
		t.Errorf("WithMessage() Code = %v, want %v", err.Code, CodeValidation)
	}
	// The sentinel must not be mutated
	if ErrValidation.Message != "validation failed" {
		t.Errorf("WithMessage() mutated the sentinel: %v", ErrValidation.Message)
	}
}

func TestWithMessagef(t *testing.T) {
	err := ErrValidation.WithMessagef("illegal order transition %s -> %s", "WAITING", "DELIVERED")
	want := "illegal order transition WAITING -> DELIVERED"
	if err.Message != want {
		t.Errorf("WithMessagef() Message = %v, want %v", err.Message, want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target *AppError
		want   bool
	}{
		{"matching kind", ErrNotFound.WithMessage("user not found"), ErrNotFound, true},
		{"wrapped matching kind", fmt.Errorf("lookup: %w", ErrNotFound.WithMessage("gone")), ErrNotFound, true},
		{"different kind", ErrConflict, ErrNotFound, false},
		{"plain error", errors.New("plain"), ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.target); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindHelpers(t *testing.T) {
	if !IsValidation(ErrValidation.WithMessage("x")) {
		t.Error("IsValidation() = false, want true")
	}
	if !IsConflict(ErrConflict.WithMessage("x")) {
		t.Error("IsConflict() = false, want true")
	}
	if !IsAuth(ErrAuth) {
		t.Error("IsAuth() = false, want true")
	}
	if !IsNotFound(ErrNotFound) {
		t.Error("IsNotFound() = false, want true")
	}
	if IsAuth(ErrNotFound) {
		t.Error("IsAuth(ErrNotFound) = true, want false")
	}
}

func TestGetStatus(t *testing.T) {
	if got := GetStatus(ErrAuth); got != http.StatusUnauthorized {
		t.Errorf("GetStatus() = %v, want %v", got, http.StatusUnauthorized)
	}
	if got := GetStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("GetStatus() = %v, want %v", got, http.StatusInternalServerError)
	}
}
