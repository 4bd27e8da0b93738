package system

import (
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/tuning"
)

// Config is the numeric setup of a session.
type Config struct {
	ViewW, ViewH float64

	PlayerW, PlayerH    float64
	Speed               float64
	JumpVelocity        float64
	Gravity             float64
	SpawnX              float64
	SpawnFallbackMargin float64
	DeathMargin         float64
	ContactDamage       int
	MaxLives            int
	MaxHealth           int
	ImmunityMs          float64
	ActionMs            float64
	TileSize            float64
	FootInset           float64

	Enemy obj.EnemyConfig
	Lava  obj.LavaConfig
	HUD   obj.HUDConfig
}

func DefaultConfig() Config {
	return ConfigFrom(tuning.Default())
}

// ConfigFrom converts a tuning document into a session config.
func ConfigFrom(t *tuning.Tuning) Config {
	if t == nil {
		t = tuning.Default()
	}
	p, e, l, h := t.Player, t.Enemy, t.Lava, t.HUD
	return Config{
		ViewW:               float64(t.Canvas.Width),
		ViewH:               float64(t.Canvas.Height),
		PlayerW:             p.Width,
		PlayerH:             p.Height,
		Speed:               p.Speed,
		JumpVelocity:        p.JumpVelocity,
		Gravity:             p.Gravity,
		SpawnX:              p.SpawnX,
		SpawnFallbackMargin: p.SpawnFallbackMargin,
		DeathMargin:         p.DeathMargin,
		ContactDamage:       p.ContactDamage,
		MaxLives:            p.MaxLives,
		MaxHealth:           p.MaxHealth,
		ImmunityMs:          p.ImmunityMs,
		ActionMs:            p.ActionMs,
		TileSize:            t.Tile.DefaultSize,
		FootInset:           t.Tile.FootInset,
		Enemy: obj.EnemyConfig{
			Width:       e.Width,
			Height:      e.Height,
			DrawOffsetY: e.DrawOffsetY,
			MinSpeed:    e.MinSpeed,
			SpeedJitter: e.SpeedJitter,
			Gravity:     e.Gravity,
		},
		Lava: obj.LavaConfig{
			DurationMs:      l.DurationMs,
			SpawnIntervalMs: l.SpawnIntervalMs,
			SlideSpeed:      l.SlideSpeed,
			HorizontalSpeed: l.HorizontalSpeed,
			FallGravity:     l.FallGravity,
			SpawnOffsetY:    l.SpawnOffsetY,
			BottomMargin:    l.BottomMargin,
			MinSize:         l.MinSize,
			SizeJitter:      l.SizeJitter,
			BurstParticles:  l.BurstParticles,
			BurstDistance:   l.BurstDistance,
			BurstMs:         l.BurstMs,
		},
		HUD: obj.HUDConfig{
			BarX:           h.BarX,
			BarY:           h.BarY,
			BarW:           h.BarWidth,
			BarH:           h.BarHeight,
			OverlayFadeMs:  h.OverlayFadeMs,
			OverlayAlpha:   h.OverlayAlpha,
			TextShowAt:     h.TextShowAt,
			TextDelayMs:    h.TextDelayMs,
			TextGrowMs:     h.TextGrowMs,
			TextStartScale: 0.5,
		},
	}
}
