package control_loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepClock(t *testing.T) {
	// GIVEN
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewStepClock(start, 250*time.Millisecond)

	// THEN
	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start.Add(250*time.Millisecond), clock.Now())
	assert.Equal(t, start.Add(500*time.Millisecond), clock.Now())
}

func TestSystemClock(t *testing.T) {
	// GIVEN
	clock := SystemClock{}

	// WHEN
	first := clock.Now()
	second := clock.Now()

	// THEN
	assert.False(t, second.Before(first))
}
