package obj

import "github.com/milk9111/platformer/component"

// Player is the kinematic body of the player character. Health and lives
// live in component.PlayerState; the sprite pose lives in
// component.SpriteAnimation.
type Player struct {
	X, Y     float64
	VY       float64
	Grounded bool
	Facing   component.Facing

	Width  float64
	Height float64
}

func NewPlayer(width, height float64) *Player {
	return &Player{Width: width, Height: height}
}

// Rect returns the player's world bounding box.
func (p *Player) Rect() component.Rect {
	if p == nil {
		return component.Rect{}
	}
	return component.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Jump launches the player upward. It only fires from the ground and reports
// whether it did.
func (p *Player) Jump(velocity float64) bool {
	if p == nil || !p.Grounded {
		return false
	}
	p.VY = -velocity
	p.Grounded = false
	return true
}

// Move applies horizontal input for dt seconds and updates facing.
func (p *Player) Move(moveX, speed, dt float64) {
	if p == nil || moveX == 0 {
		return
	}
	p.X += moveX * speed * dt
	if moveX < 0 {
		p.Facing = component.FacingLeft
	} else {
		p.Facing = component.FacingRight
	}
}

// ClampX keeps the player inside the level horizontally. Without a known
// width only the left edge applies.
func (p *Player) ClampX(b LevelBounds) {
	if p == nil {
		return
	}
	if p.X < 0 {
		p.X = 0
	}
	if b.WidthKnown {
		if maxX := b.Width - p.Width; p.X > maxX {
			p.X = max(0, maxX)
		}
	}
}

// Fall integrates gravity for dt seconds.
func (p *Player) Fall(gravity, dt float64) {
	if p == nil {
		return
	}
	p.VY += gravity * dt
	p.Y += p.VY * dt
}

// Land applies a ground collision result.
func (p *Player) Land(res GroundResult) {
	if p == nil {
		return
	}
	p.Y = res.Y
	p.VY = res.VY
	p.Grounded = res.OnGround
}

// PlaceAt puts the player at rest at (x, y). Facing is kept.
func (p *Player) PlaceAt(x, y float64) {
	if p == nil {
		return
	}
	p.X = x
	p.Y = y
	p.VY = 0
	p.Grounded = false
}
