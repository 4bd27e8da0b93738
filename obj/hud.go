package obj

import "github.com/milk9111/platformer/common"

// HUDConfig lays out the health bar and times the level-ended overlay.
type HUDConfig struct {
	BarX, BarY     float64
	BarW, BarH     float64
	OverlayFadeMs  float64
	OverlayAlpha   float64
	TextShowAt     float64
	TextDelayMs    float64
	TextGrowMs     float64
	TextStartScale float64
}

func DefaultHUDConfig() HUDConfig {
	return HUDConfig{
		BarX: 10, BarY: 10, BarW: 200, BarH: 20,
		OverlayFadeMs:  500,
		OverlayAlpha:   0.7,
		TextShowAt:     0.3,
		TextDelayMs:    150,
		TextGrowMs:     300,
		TextStartScale: 0.5,
	}
}

// HUDState is the numeric snapshot the HUD paints each frame.
type HUDState struct {
	Health    int
	MaxHealth int
	Lives     int
	MaxLives  int
	Enemies   int
	Ended     bool
	EndedMs   float64
}

// HealthFill is the filled width of the health bar in pixels.
func (c HUDConfig) HealthFill(s HUDState) float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	hp := common.Clamp(float64(s.Health), 0, float64(s.MaxHealth))
	return c.BarW * hp / float64(s.MaxHealth)
}

// Overlay describes the level-ended overlay at a point in time.
type Overlay struct {
	Alpha     float64
	ShowText  bool
	TextAlpha float64
	TextScale float64
}

// Overlay returns the fade and text state endedMs after the level ended.
func (c HUDConfig) Overlay(endedMs float64) Overlay {
	if c.OverlayFadeMs <= 0 {
		return Overlay{Alpha: c.OverlayAlpha, ShowText: true, TextAlpha: 1, TextScale: 1}
	}
	progress := common.Min01(endedMs / c.OverlayFadeMs)
	o := Overlay{Alpha: progress * c.OverlayAlpha}
	if progress < c.TextShowAt {
		return o
	}
	tp := 1.0
	if c.TextGrowMs > 0 {
		tp = common.Min01((endedMs - c.TextDelayMs) / c.TextGrowMs)
	}
	o.ShowText = true
	o.TextAlpha = tp
	o.TextScale = common.Lerp(c.TextStartScale, 1, tp)
	return o
}
