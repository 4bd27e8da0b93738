package obj

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"go.uber.org/zap"
)

// EnemyConfig holds the shared enemy dimensions and motion tuning.
type EnemyConfig struct {
	Width       float64
	Height      float64
	DrawOffsetY float64
	MinSpeed    float64
	SpeedJitter float64
	Gravity     float64
}

func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Width:       96,
		Height:      96,
		DrawOffsetY: 32,
		MinSpeed:    50,
		SpeedJitter: 30,
		Gravity:     1800,
	}
}

// Enemy is a single walker. Speed is fixed at creation.
type Enemy struct {
	ID     int
	X, Y   float64
	VY     float64
	Speed  float64
	Facing component.Facing
}

// EnemyManager owns the enemies of one session.
type EnemyManager struct {
	cfg     EnemyConfig
	tiles   *TileMap
	brain   Brain
	log     *zap.Logger
	enemies []*Enemy
}

// NewEnemyManager creates one enemy per seed position. rng draws each enemy's
// speed; brain defaults to ChaseBrain.
func NewEnemyManager(seeds []cp.Vector, tiles *TileMap, cfg EnemyConfig, rng *rand.Rand, brain Brain, log *zap.Logger) *EnemyManager {
	if brain == nil {
		brain = ChaseBrain{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	m := &EnemyManager{cfg: cfg, tiles: tiles, brain: brain, log: log}
	for i, s := range seeds {
		m.enemies = append(m.enemies, &Enemy{
			ID:     i + 1,
			X:      s.X,
			Y:      s.Y,
			Speed:  cfg.MinSpeed + rng.Float64()*cfg.SpeedJitter,
			Facing: component.FacingLeft,
		})
	}
	return m
}

func (m *EnemyManager) Config() EnemyConfig {
	if m == nil {
		return DefaultEnemyConfig()
	}
	return m.cfg
}

// Update walks every enemy toward playerX and applies gravity for dt seconds.
func (m *EnemyManager) Update(dt, playerX float64) {
	if m == nil {
		return
	}
	for _, e := range m.enemies {
		dir := m.brain.Direction(e, playerX)
		if dir != 0 {
			e.X += dir * e.Speed * dt
			if dir > 0 {
				e.Facing = component.FacingRight
			} else {
				e.Facing = component.FacingLeft
			}
		}
		m.applyGravity(e, dt)
	}
}

func (m *EnemyManager) applyGravity(e *Enemy, dt float64) {
	e.VY += m.cfg.Gravity * dt
	e.Y += e.VY * dt
	res := m.tiles.ResolveGroundCollision(e.X, e.Y, e.VY, m.cfg.Width, m.cfg.Height)
	if res.OnGround {
		e.Y = res.Y
		e.VY = res.VY
	}
}

// Rect returns the world bounding box of e.
func (m *EnemyManager) Rect(e *Enemy) component.Rect {
	if m == nil || e == nil {
		return component.Rect{}
	}
	return component.Rect{X: e.X, Y: e.Y, Width: m.cfg.Width, Height: m.cfg.Height}
}

// CheckCollision reports whether any enemy strictly overlaps r.
func (m *EnemyManager) CheckCollision(r component.Rect) bool {
	if m == nil {
		return false
	}
	for _, e := range m.enemies {
		if m.Rect(e).Intersects(r) {
			return true
		}
	}
	return false
}

// RemoveFirstHit removes the first enemy, in storage order, whose box
// strictly overlaps box.
func (m *EnemyManager) RemoveFirstHit(box cp.BB) (Enemy, bool) {
	if m == nil {
		return Enemy{}, false
	}
	for i, e := range m.enemies {
		if !component.Overlaps(m.Rect(e).BB(), box) {
			continue
		}
		m.enemies = append(m.enemies[:i], m.enemies[i+1:]...)
		m.log.Debug("enemy eliminated", zap.Int("enemy", e.ID))
		return *e, true
	}
	return Enemy{}, false
}

// Each calls fn for every live enemy in storage order.
func (m *EnemyManager) Each(fn func(e *Enemy)) {
	if m == nil || fn == nil {
		return
	}
	for _, e := range m.enemies {
		fn(e)
	}
}

func (m *EnemyManager) Count() int {
	if m == nil {
		return 0
	}
	return len(m.enemies)
}

// Clear drops all enemies.
func (m *EnemyManager) Clear() {
	if m == nil {
		return
	}
	m.enemies = nil
}
