package obj

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"go.uber.org/zap"
)

// LavaPhase is the trajectory stage of a lava drop.
type LavaPhase int

const (
	LavaSlide LavaPhase = iota
	LavaHorizontal
	LavaFall
	LavaRemoved
)

func (p LavaPhase) String() string {
	switch p {
	case LavaSlide:
		return "slide"
	case LavaHorizontal:
		return "horizontal"
	case LavaFall:
		return "fall"
	default:
		return "removed"
	}
}

type LavaConfig struct {
	DurationMs      float64
	SpawnIntervalMs float64
	SlideSpeed      float64
	HorizontalSpeed float64
	FallGravity     float64
	SpawnOffsetY    float64
	BottomMargin    float64
	MinSize         float64
	SizeJitter      float64
	BurstParticles  int
	BurstDistance   float64
	BurstMs         float64
}

func DefaultLavaConfig() LavaConfig {
	return LavaConfig{
		DurationMs:      3000,
		SpawnIntervalMs: 150,
		SlideSpeed:      400,
		HorizontalSpeed: 500,
		FallGravity:     1500,
		SpawnOffsetY:    50,
		BottomMargin:    50,
		MinSize:         14,
		SizeJitter:      10,
		BurstParticles:  8,
		BurstDistance:   80,
		BurstMs:         300,
	}
}

// LavaDrop is one projectile. Pos is in screen space (viewport origin at the
// top-left); Dir is -1 for the left edge and +1 for the right edge.
type LavaDrop struct {
	Pos   cp.Vector
	Vel   cp.Vector
	Phase LavaPhase
	Dir   float64
	Size  float64
	// Spent is set once the drop has eliminated an enemy; it keeps falling
	// but no longer hits anything.
	Spent bool
}

// LavaBurst is the cosmetic effect left where a drop hit an enemy.
type LavaBurst struct {
	Origin cp.Vector
	AgeMs  float64
}

// HitTarget is anything a falling drop can eliminate.
type HitTarget interface {
	RemoveFirstHit(box cp.BB) (Enemy, bool)
}

// LavaSystem spawns drops on a timer while active and moves every drop
// through slide, horizontal and fall phases.
type LavaSystem struct {
	cfg  LavaConfig
	rng  *rand.Rand
	log  *zap.Logger
	view cp.Vector

	active     bool
	elapsed    float64
	sinceSpawn float64
	drops      []*LavaDrop
	bursts     []*LavaBurst
	kills      int
}

// NewLavaSystem creates an idle system for a viewport of viewW by viewH.
func NewLavaSystem(cfg LavaConfig, viewW, viewH float64, rng *rand.Rand, log *zap.Logger) *LavaSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LavaSystem{cfg: cfg, rng: rng, log: log, view: cp.Vector{X: viewW, Y: viewH}}
}

// Start opens a new spawn window. It is a no-op while the system is busy.
func (l *LavaSystem) Start() bool {
	if l == nil || l.Active() {
		return false
	}
	l.active = true
	l.elapsed = 0
	l.sinceSpawn = 0
	l.log.Debug("lava started")
	return true
}

// Active reports whether the spawn window is open or drops are in flight.
func (l *LavaSystem) Active() bool {
	return l != nil && (l.active || len(l.drops) > 0)
}

// Spawning reports whether the spawn window is still open.
func (l *LavaSystem) Spawning() bool { return l != nil && l.active }

// Update advances the system by dt seconds. Falling drops are tested against
// targets in world space using the camera offset (camX, camY).
func (l *LavaSystem) Update(dt float64, targets HitTarget, camX, camY float64) {
	if l == nil {
		return
	}
	l.updateBursts(dt * 1000)
	if !l.active && len(l.drops) == 0 {
		return
	}

	ms := dt * 1000
	l.elapsed += ms
	if l.active && l.elapsed < l.cfg.DurationMs {
		l.sinceSpawn += ms
		if l.sinceSpawn >= l.cfg.SpawnIntervalMs {
			l.spawn()
			l.sinceSpawn = 0
		}
	} else if l.elapsed >= l.cfg.DurationMs {
		l.active = false
	}

	l.updateDrops(dt, targets, camX, camY)
}

func (l *LavaSystem) spawn() {
	dir := 1.0
	if l.rng.Float64() < 0.5 {
		dir = -1
	}
	l.drops = append(l.drops, &LavaDrop{
		Pos:   cp.Vector{X: l.view.X / 2, Y: -l.cfg.SpawnOffsetY},
		Phase: LavaSlide,
		Dir:   dir,
		Size:  l.cfg.MinSize + l.rng.Float64()*l.cfg.SizeJitter,
	})
}

func (l *LavaSystem) updateDrops(dt float64, targets HitTarget, camX, camY float64) {
	live := l.drops[:0]
	for _, d := range l.drops {
		switch d.Phase {
		case LavaSlide:
			d.Vel = cp.Vector{Y: l.cfg.SlideSpeed}
			d.Pos = d.Pos.Add(d.Vel.Mult(dt))
			if d.Pos.Y >= 0 {
				d.Pos.Y = 0
				d.Phase = LavaHorizontal
				d.Vel = cp.Vector{X: d.Dir * l.cfg.HorizontalSpeed}
			}
		case LavaHorizontal:
			d.Pos = d.Pos.Add(d.Vel.Mult(dt))
			if d.Dir < 0 && d.Pos.X <= 0 {
				d.Pos.X = 0
				d.Phase = LavaFall
				d.Vel = cp.Vector{}
			} else if d.Dir > 0 && d.Pos.X >= l.view.X {
				d.Pos.X = l.view.X
				d.Phase = LavaFall
				d.Vel = cp.Vector{}
			}
		case LavaFall:
			d.Vel.Y += l.cfg.FallGravity * dt
			d.Pos.Y += d.Vel.Y * dt
			l.hit(d, targets, camX, camY)
		}

		if d.Pos.Y > l.view.Y+l.cfg.BottomMargin {
			d.Phase = LavaRemoved
			continue
		}
		live = append(live, d)
	}
	for i := len(live); i < len(l.drops); i++ {
		l.drops[i] = nil
	}
	l.drops = live
}

func (l *LavaSystem) hit(d *LavaDrop, targets HitTarget, camX, camY float64) {
	if d.Spent || targets == nil {
		return
	}
	world := cp.Vector{X: d.Pos.X + camX, Y: d.Pos.Y + camY}
	if _, ok := targets.RemoveFirstHit(component.PointBox(world, d.Size/2)); !ok {
		return
	}
	d.Spent = true
	l.kills++
	l.bursts = append(l.bursts, &LavaBurst{Origin: d.Pos})
}

func (l *LavaSystem) updateBursts(ms float64) {
	live := l.bursts[:0]
	for _, b := range l.bursts {
		b.AgeMs += ms
		if b.AgeMs < l.cfg.BurstMs {
			live = append(live, b)
		}
	}
	l.bursts = live
}

// Drops returns the drops in flight. The slice must not be retained.
func (l *LavaSystem) Drops() []*LavaDrop {
	if l == nil {
		return nil
	}
	return l.drops
}

func (l *LavaSystem) Bursts() []*LavaBurst {
	if l == nil {
		return nil
	}
	return l.bursts
}

// Kills counts enemies eliminated since the system was created.
func (l *LavaSystem) Kills() int {
	if l == nil {
		return 0
	}
	return l.kills
}

// BurstParticle is one particle of a burst at a point in time.
type BurstParticle struct {
	Pos   cp.Vector
	Alpha float64
	Scale float64
}

// Particles returns the particle positions of b. They travel outward evenly
// spaced around a circle while fading and shrinking.
func (l *LavaSystem) Particles(b *LavaBurst) []BurstParticle {
	if l == nil || b == nil || l.cfg.BurstParticles <= 0 || l.cfg.BurstMs <= 0 {
		return nil
	}
	p := math.Min(b.AgeMs/l.cfg.BurstMs, 1)
	out := make([]BurstParticle, l.cfg.BurstParticles)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(l.cfg.BurstParticles)
		dist := l.cfg.BurstDistance * p
		out[i] = BurstParticle{
			Pos:   b.Origin.Add(cp.ForAngle(angle).Mult(dist)),
			Alpha: 1 - p,
			Scale: 1 - 0.8*p,
		}
	}
	return out
}

// Clear drops everything and closes the spawn window.
func (l *LavaSystem) Clear() {
	if l == nil {
		return
	}
	l.active = false
	l.elapsed = 0
	l.sinceSpawn = 0
	l.drops = nil
	l.bursts = nil
}
