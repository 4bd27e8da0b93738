package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"inverted_bounds_pin_low", 4, 0, -20, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Clamp(c.v, c.lo, c.hi))
		})
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, FloorDiv(9.99, 10))
	assert.Equal(t, 1, FloorDiv(10, 10))
	assert.Equal(t, -1, FloorDiv(-0.5, 10))
	assert.Equal(t, 0, FloorDiv(50, 0))
}

func TestSignAndLerp(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 1.0, Min01(7))
}
