// Package error defines domain-specific errors for the Dompetku application.
package error

import "errors"

// Profile domain errors.
var (
	// ErrNegativeMonthlyBudget is returned when the monthly budget is set to a negative value.
	ErrNegativeMonthlyBudget = errors.New("monthly budget cannot be negative")
)

// ProfileErrorCode defines error codes for profile errors.
type ProfileErrorCode string

const (
	ErrCodeNegativeMonthlyBudget ProfileErrorCode = "PRF-010001"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
