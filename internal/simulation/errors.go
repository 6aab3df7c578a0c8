package simulation

import (
	"errors"
	"fmt"
)

// RuntimeErrorCode categorizes simulation failures.
type RuntimeErrorCode string

const (
	// ErrCodeInvariantViolated indicates an item rejected a daily update.
	ErrCodeInvariantViolated RuntimeErrorCode = "INVARIANT_VIOLATED"

	// ErrCodeDayQuotaExceeded indicates the requested days exceed the maximum.
	ErrCodeDayQuotaExceeded RuntimeErrorCode = "DAY_QUOTA_EXCEEDED"

	// ErrCodeCancelled indicates the context ended before all days ran.
	ErrCodeCancelled RuntimeErrorCode = "CANCELLED"
)

// RuntimeError is returned by Simulator.Run.
type RuntimeError struct {
	Code    RuntimeErrorCode
	Message string

	// RunID identifies the affected run.
	RunID string

	// Day is the day being simulated when the error occurred.
	Day int64

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.RunID != "" {
		msg = fmt.Sprintf("%s (run=%s, day=%d)", msg, e.RunID, e.Day)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// IsInvariantError reports whether err is an INVARIANT_VIOLATED error.
func IsInvariantError(err error) bool {
	return hasCode(err, ErrCodeInvariantViolated)
}

// IsQuotaError reports whether err is a DAY_QUOTA_EXCEEDED error.
func IsQuotaError(err error) bool {
	return hasCode(err, ErrCodeDayQuotaExceeded)
}

// IsCancelled reports whether err is a CANCELLED error.
func IsCancelled(err error) bool {
	return hasCode(err, ErrCodeCancelled)
}

func hasCode(err error, code RuntimeErrorCode) bool {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

// NewQuotaError creates a DAY_QUOTA_EXCEEDED error.
func NewQuotaError(runID string, days, maxDays int) *RuntimeError {
	return &RuntimeError{
		Code:    ErrCodeDayQuotaExceeded,
		Message: fmt.Sprintf("requested %d days exceeds max %d", days, maxDays),
		RunID:   runID,
	}
}
