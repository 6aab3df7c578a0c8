package fixture

import (
	"fmt"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Error codes for fixture loading.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeReadFailed   = "E002" // File could not be read
	ErrCodeNotFound     = "E005" // Path not found
	ErrCodeParseFailed  = "E006" // YAML or CUE syntax error
	ErrCodeSchema       = "E007" // Value violates the fixture schema
	ErrCodeUnsupported  = "E008" // Unknown file extension
	ErrCodeNoItems      = "E009" // Fixture declares no items
	ErrCodeInvalidItem  = "E010" // Item rejected by the inventory record
	ErrCodeMissingField = "E011" // Required field missing
)

// LoadError is returned by Load. Pos is set for CUE sources when the
// error can be located.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// fromCUE converts a CUE error into a LoadError carrying the first
// reported position.
func fromCUE(code string, err error) *LoadError {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error(), Err: err}
	}
	first := errs[0]
	le := &LoadError{Code: code, Message: first.Error(), Err: err}
	if positions := errors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
