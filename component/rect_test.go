package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, Width: 32, Height: 32}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"full_overlap", Rect{X: 100, Y: 100, Width: 32, Height: 32}, true},
		{"partial", Rect{X: 120, Y: 110, Width: 32, Height: 32}, true},
		{"touching_right_edge", Rect{X: 132, Y: 100, Width: 32, Height: 32}, false},
		{"touching_left_edge", Rect{X: 68, Y: 100, Width: 32, Height: 32}, false},
		{"touching_bottom_edge", Rect{X: 100, Y: 132, Width: 32, Height: 32}, false},
		{"apart", Rect{X: 400, Y: 400, Width: 10, Height: 10}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(base))
		})
	}
}

func TestRectInflateAndPointBox(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 4, Height: 4}.Inflate(2)
	assert.Equal(t, Rect{X: 8, Y: 8, Width: 8, Height: 8}, r)

	bb := PointBox(cp.Vector{X: 5, Y: 5}, 3)
	assert.Equal(t, cp.BB{L: 2, B: 2, R: 8, T: 8}, bb)
	assert.True(t, Overlaps(bb, Rect{X: 7, Y: 7, Width: 1, Height: 1}.BB()))
	assert.False(t, Overlaps(bb, Rect{X: 8, Y: 0, Width: 1, Height: 10}.BB()))
}
