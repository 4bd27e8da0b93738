package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Player struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	Speed               float64 `yaml:"speed"`
	JumpVelocity        float64 `yaml:"jump_velocity"`
	Gravity             float64 `yaml:"gravity"`
	SpawnX              float64 `yaml:"spawn_x"`
	SpawnFallbackMargin float64 `yaml:"spawn_fallback_margin"`
	DeathMargin         float64 `yaml:"death_margin"`
	ContactDamage       int     `yaml:"contact_damage"`
	MaxLives            int     `yaml:"max_lives"`
	MaxHealth           int     `yaml:"max_health"`
	ImmunityMs          float64 `yaml:"immunity_ms"`
	ActionMs            float64 `yaml:"action_ms"`
	WalkFPS             float64 `yaml:"walk_fps"`
	WalkFrames          int     `yaml:"walk_frames"`
	ActionFrames        int     `yaml:"action_frames"`
}

type Enemy struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DrawOffsetY float64 `yaml:"draw_offset_y"`
	MinSpeed    float64 `yaml:"min_speed"`
	SpeedJitter float64 `yaml:"speed_jitter"`
	Gravity     float64 `yaml:"gravity"`
	// Script is an optional tengo brain, embedded name or disk path.
	Script string `yaml:"script"`
}

type Lava struct {
	DurationMs      float64 `yaml:"duration_ms"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	SlideSpeed      float64 `yaml:"slide_speed"`
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	FallGravity     float64 `yaml:"fall_gravity"`
	SpawnOffsetY    float64 `yaml:"spawn_offset_y"`
	BottomMargin    float64 `yaml:"bottom_margin"`
	MinSize         float64 `yaml:"min_size"`
	SizeJitter      float64 `yaml:"size_jitter"`
	BurstParticles  int     `yaml:"burst_particles"`
	BurstDistance   float64 `yaml:"burst_distance"`
	BurstMs         float64 `yaml:"burst_ms"`
}

type Tile struct {
	DefaultSize float64 `yaml:"default_size"`
	FootInset   float64 `yaml:"foot_inset"`
}

type HUD struct {
	BarX          float64 `yaml:"bar_x"`
	BarY          float64 `yaml:"bar_y"`
	BarWidth      float64 `yaml:"bar_width"`
	BarHeight     float64 `yaml:"bar_height"`
	OverlayFadeMs float64 `yaml:"overlay_fade_ms"`
	OverlayAlpha  float64 `yaml:"overlay_alpha"`
	TextShowAt    float64 `yaml:"text_show_at"`
	TextDelayMs   float64 `yaml:"text_delay_ms"`
	TextGrowMs    float64 `yaml:"text_grow_ms"`
}

// Tuning is every gameplay constant the runner reads from YAML.
type Tuning struct {
	Canvas Canvas `yaml:"canvas"`
	Player Player `yaml:"player"`
	Enemy  Enemy  `yaml:"enemy"`
	Lava   Lava   `yaml:"lava"`
	Tile   Tile   `yaml:"tile"`
	HUD    HUD    `yaml:"hud"`
}

// Default returns the embedded defaults.
func Default() *Tuning {
	var t Tuning
	if err := yaml.Unmarshal(defaultYAML, &t); err != nil {
		panic(fmt.Sprintf("tuning: embedded defaults: %v", err))
	}
	return &t
}

// Parse overlays data onto the defaults. Keys missing from data keep their
// default and non-positive numbers fall back to it.
func Parse(data []byte) (*Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("tuning: unmarshal: %w", err)
	}
	t.Normalize()
	return t, nil
}

// Load reads a YAML file and overlays it onto the defaults. An empty path
// returns the defaults.
func Load(path string) (*Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tuning: load %s: %w", path, err)
	}
	return t, nil
}

// Normalize replaces non-positive values with the defaults. Zero is kept for
// fields where it is meaningful: margins, offsets and jitter.
func (t *Tuning) Normalize() {
	if t == nil {
		return
	}
	d := Default()
	posInt(&t.Canvas.Width, d.Canvas.Width)
	posInt(&t.Canvas.Height, d.Canvas.Height)

	p, dp := &t.Player, d.Player
	pos(&p.Width, dp.Width)
	pos(&p.Height, dp.Height)
	pos(&p.Speed, dp.Speed)
	pos(&p.JumpVelocity, dp.JumpVelocity)
	pos(&p.Gravity, dp.Gravity)
	nonNeg(&p.SpawnX, dp.SpawnX)
	nonNeg(&p.SpawnFallbackMargin, dp.SpawnFallbackMargin)
	nonNeg(&p.DeathMargin, dp.DeathMargin)
	nonNegInt(&p.ContactDamage, dp.ContactDamage)
	posInt(&p.MaxLives, dp.MaxLives)
	posInt(&p.MaxHealth, dp.MaxHealth)
	pos(&p.ImmunityMs, dp.ImmunityMs)
	pos(&p.ActionMs, dp.ActionMs)
	pos(&p.WalkFPS, dp.WalkFPS)
	posInt(&p.WalkFrames, dp.WalkFrames)
	posInt(&p.ActionFrames, dp.ActionFrames)

	e, de := &t.Enemy, d.Enemy
	pos(&e.Width, de.Width)
	pos(&e.Height, de.Height)
	nonNeg(&e.DrawOffsetY, de.DrawOffsetY)
	pos(&e.MinSpeed, de.MinSpeed)
	nonNeg(&e.SpeedJitter, de.SpeedJitter)
	pos(&e.Gravity, de.Gravity)

	l, dl := &t.Lava, d.Lava
	pos(&l.DurationMs, dl.DurationMs)
	pos(&l.SpawnIntervalMs, dl.SpawnIntervalMs)
	pos(&l.SlideSpeed, dl.SlideSpeed)
	pos(&l.HorizontalSpeed, dl.HorizontalSpeed)
	pos(&l.FallGravity, dl.FallGravity)
	nonNeg(&l.SpawnOffsetY, dl.SpawnOffsetY)
	nonNeg(&l.BottomMargin, dl.BottomMargin)
	pos(&l.MinSize, dl.MinSize)
	nonNeg(&l.SizeJitter, dl.SizeJitter)
	nonNegInt(&l.BurstParticles, dl.BurstParticles)
	nonNeg(&l.BurstDistance, dl.BurstDistance)
	pos(&l.BurstMs, dl.BurstMs)

	pos(&t.Tile.DefaultSize, d.Tile.DefaultSize)
	nonNeg(&t.Tile.FootInset, d.Tile.FootInset)

	h, dh := &t.HUD, d.HUD
	nonNeg(&h.BarX, dh.BarX)
	nonNeg(&h.BarY, dh.BarY)
	pos(&h.BarWidth, dh.BarWidth)
	pos(&h.BarHeight, dh.BarHeight)
	pos(&h.OverlayFadeMs, dh.OverlayFadeMs)
	pos(&h.OverlayAlpha, dh.OverlayAlpha)
	nonNeg(&h.TextShowAt, dh.TextShowAt)
	nonNeg(&h.TextDelayMs, dh.TextDelayMs)
	pos(&h.TextGrowMs, dh.TextGrowMs)
	if h.OverlayAlpha > 1 {
		h.OverlayAlpha = 1
	}
}

func pos(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}

func nonNeg(v *float64, def float64) {
	if *v < 0 {
		*v = def
	}
}

func posInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func nonNegInt(v *int, def int) {
	if *v < 0 {
		*v = def
	}
}
