// Package error defines domain-specific errors for the Dompetku application.
package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found in the system.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrInvalidDebtType is returned when the debt type is invalid.
	ErrInvalidDebtType = errors.New("invalid debt type")

	// ErrInvalidDebtAmount is returned when the principal is not a positive whole number.
	ErrInvalidDebtAmount = errors.New("invalid debt amount")

	// ErrEmptyDebtPerson is returned when the counterparty name is empty.
	ErrEmptyDebtPerson = errors.New("debt person cannot be empty")

	// ErrInvalidDueDate is returned when the due date is not a valid YYYY-MM-DD value.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrInvalidPaymentAmount is returned when the payment amount is not a positive whole number.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrPaymentExceedsRemaining is returned when a payment is larger than the outstanding balance.
	ErrPaymentExceedsRemaining = errors.New("payment exceeds remaining debt")

	// ErrInvalidPaymentDate is returned when the payment date is not a valid date or date+time value.
	ErrInvalidPaymentDate = errors.New("invalid payment date")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDebtType         DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtAmount       DebtErrorCode = "DBT-010002"
	ErrCodeEmptyDebtPerson         DebtErrorCode = "DBT-010003"
	ErrCodeInvalidDueDate          DebtErrorCode = "DBT-010004"
	ErrCodeInvalidPaymentAmount    DebtErrorCode = "DBT-010005"
	ErrCodePaymentExceedsRemaining DebtErrorCode = "DBT-010006"
	ErrCodeInvalidPaymentDate      DebtErrorCode = "DBT-010007"
	ErrCodeDebtNotFound            DebtErrorCode = "DBT-010008"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
