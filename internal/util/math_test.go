package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAvg(t *testing.T) {
	// GIVEN
	values := []float64{1, 2, 3, 4}

	// WHEN
	result := Avg(values)

	// THEN
	assert.Equal(t, 2.5, result)
}

func TestCoerce(t *testing.T) {
	// GIVEN
	min := -1.0
	max := 1.0

	// THEN
	assert.Equal(t, 0.5, Coerce(0.5, min, max))
	assert.Equal(t, max, Coerce(5, min, max))
	assert.Equal(t, min, Coerce(-5, min, max))
	assert.Equal(t, max, Coerce(max, min, max))
}
