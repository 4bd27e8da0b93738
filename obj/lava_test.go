package obj

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleDropConfig() LavaConfig {
	cfg := DefaultLavaConfig()
	cfg.SpawnIntervalMs = 10
	cfg.DurationMs = 15
	return cfg
}

func TestLavaDropLifecycleRemovesEnemyOnce(t *testing.T) {
	// One enemy under each edge so the hit happens whichever way the drop goes.
	seeds := []cp.Vector{{X: -48, Y: 40}, {X: 152, Y: 40}}
	enemies := NewEnemyManager(seeds, NewTileMap(nil, nil, 0), DefaultEnemyConfig(), rand.New(rand.NewSource(1)), nil, nil)

	lava := NewLavaSystem(singleDropConfig(), 200, 100, rand.New(rand.NewSource(42)), nil)
	require.True(t, lava.Start())
	require.False(t, lava.Start(), "busy")

	var phases []LavaPhase
	var drop *LavaDrop
	for i := 0; i < 1000 && (i == 0 || lava.Active()); i++ {
		lava.Update(0.01, enemies, 0, 0)
		if drops := lava.Drops(); len(drops) > 0 {
			require.Len(t, drops, 1)
			drop = drops[0]
			if len(phases) == 0 || phases[len(phases)-1] != drop.Phase {
				phases = append(phases, drop.Phase)
			}
			if drop.Phase == LavaFall && drop.Spent {
				assert.Equal(t, 1, enemies.Count())
			}
		}
	}

	require.NotNil(t, drop)
	assert.Equal(t, []LavaPhase{LavaSlide, LavaHorizontal, LavaFall}, phases)
	assert.Equal(t, LavaRemoved, drop.Phase)
	assert.True(t, drop.Spent)
	assert.Equal(t, 1, enemies.Count())
	assert.Equal(t, 1, lava.Kills())
	assert.False(t, lava.Active())
	assert.Empty(t, lava.Drops())
}

func TestLavaDropPhasesGeometry(t *testing.T) {
	lava := NewLavaSystem(singleDropConfig(), 200, 100, rand.New(rand.NewSource(9)), nil)
	lava.Start()
	lava.Update(0.01, nil, 0, 0)
	d := lava.Drops()[0]
	assert.Equal(t, 100.0, d.Pos.X, "spawned at the viewport center")
	assert.InDelta(t, -46.0, d.Pos.Y, 1e-9)
	assert.GreaterOrEqual(t, d.Size, 14.0)
	assert.Less(t, d.Size, 24.0)

	for d.Phase == LavaSlide {
		lava.Update(0.01, nil, 0, 0)
	}
	assert.Equal(t, 0.0, d.Pos.Y, "clamped to the top edge")
	assert.Equal(t, d.Dir*500, d.Vel.X)

	for d.Phase == LavaHorizontal {
		lava.Update(0.01, nil, 0, 0)
	}
	if d.Dir < 0 {
		assert.Equal(t, 0.0, d.Pos.X)
	} else {
		assert.Equal(t, 200.0, d.Pos.X)
	}
	assert.Equal(t, cp.Vector{}, d.Vel)

	y := d.Pos.Y
	lava.Update(0.01, nil, 0, 0)
	lava.Update(0.01, nil, 0, 0)
	assert.Greater(t, d.Pos.Y, y)
	assert.Greater(t, d.Vel.Y, 0.0)
}

func TestLavaSpawnWindowCloses(t *testing.T) {
	lava := NewLavaSystem(DefaultLavaConfig(), 960, 540, rand.New(rand.NewSource(2)), nil)
	assert.False(t, lava.Active())
	lava.Update(1, nil, 0, 0)
	assert.Empty(t, lava.Drops(), "idle system never spawns")

	lava.Start()
	spawned := 0
	prev := 0
	for elapsed := 0; elapsed < 3000; elapsed += 50 {
		lava.Update(0.05, nil, 0, 0)
		if n := len(lava.Drops()); n > prev {
			spawned += n - prev
		}
		prev = len(lava.Drops())
	}
	assert.Positive(t, spawned)

	lava.Update(0.05, nil, 0, 0)
	assert.False(t, lava.Spawning())
	assert.True(t, lava.Active(), "drops still in flight")

	n := len(lava.Drops())
	lava.Update(0.05, nil, 0, 0)
	assert.LessOrEqual(t, len(lava.Drops()), n, "no new drops after the window")

	for i := 0; i < 1000 && lava.Active(); i++ {
		lava.Update(0.05, nil, 0, 0)
	}
	assert.False(t, lava.Active())
	assert.True(t, lava.Start(), "can restart once idle")
}

func TestLavaHitUsesCameraOffset(t *testing.T) {
	seeds := []cp.Vector{{X: 1000 - 48, Y: 540}, {X: 1200 - 48, Y: 540}}
	enemies := NewEnemyManager(seeds, NewTileMap(nil, nil, 0), DefaultEnemyConfig(), nil, nil, nil)
	lava := NewLavaSystem(singleDropConfig(), 200, 100, rand.New(rand.NewSource(4)), nil)
	lava.Start()
	for i := 0; i < 1000 && lava.Active(); i++ {
		lava.Update(0.01, enemies, 1000, 500)
	}
	assert.Equal(t, 1, enemies.Count())
}

func TestLavaBurstParticles(t *testing.T) {
	lava := NewLavaSystem(DefaultLavaConfig(), 200, 100, nil, nil)
	b := &LavaBurst{Origin: cp.Vector{X: 10, Y: 10}}

	ps := lava.Particles(b)
	require.Len(t, ps, 8)
	assert.Equal(t, 1.0, ps[0].Alpha)
	assert.InDelta(t, 10.0, ps[0].Pos.X, 1e-9)

	b.AgeMs = 300
	ps = lava.Particles(b)
	assert.InDelta(t, 90.0, ps[0].Pos.X, 1e-9)
	assert.InDelta(t, 10.0, ps[0].Pos.Y, 1e-9)
	assert.InDelta(t, 0.0, ps[0].Alpha, 1e-9)
	assert.InDelta(t, 0.2, ps[0].Scale, 1e-9)
}
