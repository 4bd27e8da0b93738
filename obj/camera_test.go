package obj

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bounds := []LevelBounds{
		{Width: 3000, WidthKnown: true, Height: 1200},
		{Width: 400, WidthKnown: true, Height: 300},
		{Width: 960, WidthKnown: true, Height: 540},
	}
	for _, b := range bounds {
		c := NewCamera(960, 540)
		maxX := max(0, b.Width-960)
		maxY := max(0, b.Height-540)
		for i := 0; i < 500; i++ {
			c.Update(rng.Float64()*8000-4000, rng.Float64()*8000-4000, b)
			require.GreaterOrEqual(t, c.X, 0.0)
			require.LessOrEqual(t, c.X, maxX)
			require.GreaterOrEqual(t, c.Y, 0.0)
			require.LessOrEqual(t, c.Y, maxY)
		}
	}
}

func TestCameraSmallLevelPinsToZero(t *testing.T) {
	c := NewCamera(960, 540)
	c.Update(5000, 5000, LevelBounds{Width: 200, WidthKnown: true, Height: 100})
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 0.0, c.Y)
}

func TestCameraFollows(t *testing.T) {
	c := NewCamera(100, 100)
	b := LevelBounds{Width: 1000, WidthKnown: true, Height: 100}

	c.Update(30, 0, b)
	assert.Equal(t, 0.0, c.X, "target left of center")

	c.Update(300, 0, b)
	assert.Equal(t, 250.0, c.X, "snaps in one update")

	c.Update(2000, 0, b)
	assert.Equal(t, 900.0, c.X)

	c.Update(500, 0, b)
	assert.Equal(t, 450.0, c.X)
}

func TestCameraUnknownWidthHoldsHorizontal(t *testing.T) {
	c := NewCamera(100, 100)
	c.X = 40
	c.Update(900, 700, LevelBounds{Height: 1000})
	assert.Equal(t, 40.0, c.X)
	assert.Equal(t, 650.0, c.Y)

	c.Reset()
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 0.0, c.Y)
}

func TestCameraScreenXClamps(t *testing.T) {
	c := NewCamera(100, 100)
	c.X = 50
	assert.Equal(t, 10.0, c.ScreenX(60, 20))
	assert.Equal(t, 0.0, c.ScreenX(20, 20))
	assert.Equal(t, 80.0, c.ScreenX(500, 20))

	x, y := c.WorldToScreen(60, 10)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 10.0, y)
}
