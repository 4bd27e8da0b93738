package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpriteAnimationWalkIdle(t *testing.T) {
	a := NewSpriteAnimation(1500, true)
	assert.Equal(t, PoseIdle, a.Pose())

	a.Update(16, true)
	assert.Equal(t, PoseWalking, a.Pose())
	a.Update(250, true)
	assert.Equal(t, 2, a.Frame(4, 8), "250ms at 8fps")

	a.Update(16, false)
	assert.Equal(t, PoseIdle, a.Pose())
	a.Update(1000, false)
	assert.Equal(t, 2, a.Frame(4, 8), "idle freezes on the last walk frame")

	a.Update(16, true)
	assert.Equal(t, 0, a.Frame(4, 8), "walking restarts the strip")
}

func TestSpriteAnimationAction(t *testing.T) {
	a := NewSpriteAnimation(1500, true)
	assert.True(t, a.StartAction())
	assert.False(t, a.StartAction(), "already playing")

	a.Update(1000, true)
	assert.Equal(t, PoseAction, a.Pose(), "walk requests ignored during action")
	assert.Equal(t, 500.0, a.ActionRemaining())

	a.Update(500, true)
	assert.Equal(t, PoseWalking, a.Pose())

	assert.True(t, a.StartAction())
	a.Update(2000, false)
	assert.Equal(t, PoseIdle, a.Pose())
}

func TestSpriteAnimationWithoutActionAsset(t *testing.T) {
	a := NewSpriteAnimation(1500, false)
	assert.False(t, a.StartAction())
	assert.Equal(t, PoseIdle, a.Pose())
}

func TestSpriteAnimationActionFrameHoldsLast(t *testing.T) {
	a := NewSpriteAnimation(1500, true)
	a.StartAction()
	a.Update(1400, false)
	assert.Equal(t, 3, a.Frame(4, 8))
}
