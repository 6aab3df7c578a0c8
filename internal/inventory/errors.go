package inventory

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel for every Item contract violation.
var ErrInvalidArgument = errors.New("invalid argument")

// Quality bounds enforced by the Item record.
const (
	MinQuality = 0
	MaxQuality = 50
)

// ValidationError describes a rejected Item field value.
// It unwraps to ErrInvalidArgument.
type ValidationError struct {
	Field  string // "sellIn" or "quality"
	Value  int
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %d)", ErrInvalidArgument, e.Field, e.Reason, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// IsInvalidArgument reports whether err is an Item contract violation.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func checkSellIn(v int) error {
	if v < 0 {
		return &ValidationError{Field: "sellIn", Value: v, Reason: "must be >= 0"}
	}
	return nil
}

func checkQuality(v int) error {
	if v < MinQuality || v > MaxQuality {
		return &ValidationError{
			Field:  "quality",
			Value:  v,
			Reason: fmt.Sprintf("must be between %d and %d", MinQuality, MaxQuality),
		}
	}
	return nil
}
