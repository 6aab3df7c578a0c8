package simulation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nirmalmahen-ideas2it/refactoring-kata/internal/inventory"
)

func TestRuntimeError_Format(t *testing.T) {
	err := &RuntimeError{
		Code:    ErrCodeInvariantViolated,
		Message: "item rejected daily update",
		RunID:   "run-1",
		Day:     3,
		Err:     inventory.ErrInvalidArgument,
	}

	assert.Equal(t, "INVARIANT_VIOLATED: item rejected daily update (run=run-1, day=3): invalid argument", err.Error())
	assert.True(t, IsInvariantError(err))
	assert.False(t, IsQuotaError(err))
	assert.True(t, errors.Is(err, inventory.ErrInvalidArgument))
}

func TestRuntimeError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("simulate: %w", NewQuotaError("r", 10, 5))
	assert.True(t, IsQuotaError(wrapped))
	assert.False(t, IsCancelled(wrapped))
	assert.False(t, IsInvariantError(errors.New("plain")))
}

func TestRuntimeError_NoRunID(t *testing.T) {
	err := &RuntimeError{Code: ErrCodeCancelled, Message: "stopped"}
	assert.Equal(t, "CANCELLED: stopped", err.Error())
}

func TestClock(t *testing.T) {
	c := NewClock()
	assert.Equal(t, int64(0), c.Current())
	assert.Equal(t, int64(1), c.Next())
	assert.Equal(t, int64(2), c.Next())
	assert.Equal(t, int64(2), c.Current())

	assert.Equal(t, int64(8), NewClockAt(7).Next())
}

func TestFixedGenerator(t *testing.T) {
	g := NewFixedGenerator("a", "b")
	assert.Equal(t, "a", g.Generate())
	assert.Equal(t, "b", g.Generate())
	assert.Panics(t, func() { g.Generate() })
}
