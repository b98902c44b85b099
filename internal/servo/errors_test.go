package servo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadInputError_Message(t *testing.T) {
	// GIVEN
	err := NewReadInputError("something is wrong")

	// THEN
	assert.EqualError(t, err, "something is wrong")
}

func TestReadInputError_IsInvalidInput(t *testing.T) {
	// GIVEN
	var err error = NewReadInputError("something is wrong")
	wrapped := fmt.Errorf("loop: %w", err)

	// THEN
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, wrapped, ErrInvalidInput)
	assert.False(t, errors.Is(errors.New("other"), ErrInvalidInput))

	var readErr *ReadInputError
	assert.True(t, errors.As(wrapped, &readErr))
	assert.Equal(t, "something is wrong", readErr.Message)
}
