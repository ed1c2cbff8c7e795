package example

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreet(t *testing.T) {
	assert.Equal(t, "Hello, World!", Greet("World"))
	assert.Equal(t, "Hello, !", Greet(""))
}

func TestCalculator(t *testing.T) {
	var c Calculator

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"add", c.Add(2, 3), 5},
		{"add negative", c.Add(-2, -3), -5},
		{"subtract", c.Subtract(5, 3), 2},
		{"subtract below zero", c.Subtract(3, 5), -2},
		{"multiply", c.Multiply(4, 3), 12},
		{"multiply by zero", c.Multiply(4, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestCalculator_Divide(t *testing.T) {
	var c Calculator

	got, err := c.Divide(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	got, err = c.Divide(-9, 3)
	require.NoError(t, err)
	assert.Equal(t, -3.0, got)

	_, err = c.Divide(1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = c.Divide(0, math.Copysign(0, -1))
	assert.ErrorIs(t, err, ErrDivisionByZero, "negative zero is zero")
}
