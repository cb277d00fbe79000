// Package error defines domain-specific errors for the Dompetku application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidTrendView is returned when the requested trend view is not daily, weekly or monthly.
	ErrInvalidTrendView = errors.New("invalid trend view")

	// ErrInvalidMonthlyAmount is returned when a budget-driven payoff projection is requested with a non-positive monthly amount.
	ErrInvalidMonthlyAmount = errors.New("monthly amount must be positive")

	// ErrInvalidTargetDate is returned when a goal-driven payoff projection is requested with an unparseable target date.
	ErrInvalidTargetDate = errors.New("invalid target date")

	// ErrInvalidPayoffMode is returned when the payoff projection mode is unknown.
	ErrInvalidPayoffMode = errors.New("invalid payoff mode")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTrendView     AnalyticsErrorCode = "ANL-010001"
	ErrCodeInvalidMonthlyAmount AnalyticsErrorCode = "ANL-010002"
	ErrCodeInvalidTargetDate    AnalyticsErrorCode = "ANL-010003"
	ErrCodeInvalidPayoffMode    AnalyticsErrorCode = "ANL-010004"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
