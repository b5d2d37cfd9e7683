package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound   = new(ErrCodeNotFound, "resource not found")
	ErrExpired    = new(ErrCodeExpired, "resource expired")
	ErrValidation = new(ErrCodeValidation, "validation error")
	ErrDatabase   = new(ErrCodeDatabase, "database error")
	ErrSystem     = new(ErrCodeSystemError, "system error")

	// maps errors to http status codes. Expired records are withheld the
	// same way missing ones are, so both map to 404.
	statusCodeMap = map[error]int{
		ErrNotFound:   http.StatusNotFound,
		ErrExpired:    http.StatusNotFound,
		ErrValidation: http.StatusBadRequest,
		ErrDatabase:   http.StatusInternalServerError,
		ErrSystem:     http.StatusInternalServerError,
	}
)

const (
	ErrCodeNotFound    = "not_found"
	ErrCodeExpired     = "expired"
	ErrCodeValidation  = "validation_error"
	ErrCodeDatabase    = "database_error"
	ErrCodeSystemError = "system_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsExpired checks if an error is an expired error
func IsExpired(err error) bool {
	return errors.Is(err, ErrExpired)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsDatabase checks if an error is a database error
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
