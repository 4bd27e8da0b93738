package main

import (
	"testing"

	"github.com/milk9111/platformer/obj"
	"github.com/stretchr/testify/assert"
)

func TestSyncKeyAfterPauseDoesNotRefire(t *testing.T) {
	in := obj.NewInput()
	syncKey(in, obj.KeyJump, true, true)
	assert.True(t, in.ConsumeJump())

	// Pausing clears input while Space stays down.
	in.Reset()
	syncKey(in, obj.KeyJump, true, false)
	assert.True(t, in.Held(obj.KeyJump))
	assert.False(t, in.JumpRequested(), "same physical press fires once")

	syncKey(in, obj.KeyJump, false, false)
	assert.False(t, in.Held(obj.KeyJump))
	syncKey(in, obj.KeyJump, true, true)
	assert.True(t, in.ConsumeJump())
}

func TestSyncKeyHeldMovementSurvivesPause(t *testing.T) {
	in := obj.NewInput()
	syncKey(in, obj.KeyRight, true, true)
	in.Reset()
	assert.Equal(t, 0.0, in.MoveX())

	syncKey(in, obj.KeyRight, true, false)
	assert.Equal(t, 1.0, in.MoveX())
	syncKey(in, obj.KeyRight, false, false)
	assert.Equal(t, 0.0, in.MoveX())
}
