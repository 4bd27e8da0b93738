package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHUDHealthFill(t *testing.T) {
	c := DefaultHUDConfig()
	cases := []struct {
		health, max int
		want        float64
	}{
		{100, 100, 200},
		{50, 100, 100},
		{0, 100, 0},
		{-20, 100, 0},
		{150, 100, 200},
		{10, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.HealthFill(HUDState{Health: tc.health, MaxHealth: tc.max}))
	}
}

func TestHUDOverlayTimeline(t *testing.T) {
	c := DefaultHUDConfig()

	o := c.Overlay(0)
	assert.Equal(t, 0.0, o.Alpha)
	assert.False(t, o.ShowText)

	o = c.Overlay(100)
	assert.InDelta(t, 0.14, o.Alpha, 1e-9)
	assert.False(t, o.ShowText, "text waits for 30% of the fade")

	o = c.Overlay(150)
	assert.True(t, o.ShowText)
	assert.Equal(t, 0.0, o.TextAlpha)
	assert.Equal(t, 0.5, o.TextScale)

	o = c.Overlay(300)
	assert.InDelta(t, 0.5, o.TextAlpha, 1e-9)
	assert.InDelta(t, 0.75, o.TextScale, 1e-9)

	o = c.Overlay(10000)
	assert.InDelta(t, 0.7, o.Alpha, 1e-9)
	assert.Equal(t, 1.0, o.TextAlpha)
	assert.Equal(t, 1.0, o.TextScale)
}
