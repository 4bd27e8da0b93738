package obj

import (
	"testing"

	"github.com/milk9111/platformer/component"
	"github.com/stretchr/testify/assert"
)

func TestPlayerJumpOnlyFromGround(t *testing.T) {
	p := NewPlayer(64, 64)
	assert.False(t, p.Jump(700))
	assert.Equal(t, 0.0, p.VY)

	p.Land(GroundResult{Y: 10, OnGround: true})
	assert.True(t, p.Jump(700))
	assert.Equal(t, -700.0, p.VY)
	assert.False(t, p.Grounded)
	assert.False(t, p.Jump(700), "no double jump")
}

func TestPlayerMoveAndClamp(t *testing.T) {
	p := NewPlayer(64, 64)
	p.Move(-1, 180, 1)
	assert.Equal(t, -180.0, p.X)
	assert.Equal(t, component.FacingLeft, p.Facing)

	p.ClampX(LevelBounds{})
	assert.Equal(t, 0.0, p.X)

	p.Move(1, 180, 10)
	assert.Equal(t, component.FacingRight, p.Facing)
	p.ClampX(LevelBounds{})
	assert.Equal(t, 1800.0, p.X, "unknown width only clamps left")

	p.ClampX(LevelBounds{Width: 1000, WidthKnown: true})
	assert.Equal(t, 936.0, p.X)

	p.Move(0, 180, 1)
	assert.Equal(t, component.FacingRight, p.Facing, "facing kept when idle")
}

func TestPlayerFall(t *testing.T) {
	p := NewPlayer(64, 64)
	p.Fall(1800, 0.5)
	assert.Equal(t, 900.0, p.VY)
	assert.Equal(t, 450.0, p.Y)

	p.Facing = component.FacingLeft
	p.PlaceAt(50, 20)
	assert.Equal(t, 0.0, p.VY)
	assert.Equal(t, component.FacingLeft, p.Facing, "facing survives a respawn")
	assert.Equal(t, component.Rect{X: 50, Y: 20, Width: 64, Height: 64}, p.Rect())
}
