package obj

import "github.com/milk9111/platformer/common"

// LevelBounds are the world extents the camera clamps against. WidthKnown is
// false while the level width cannot be computed yet.
type LevelBounds struct {
	Width      float64
	WidthKnown bool
	Height     float64
}

// Camera holds the viewport offset into world space. It does not ease: on
// each update the offset jumps toward the centered position and stops at the
// level edges.
type Camera struct {
	X float64
	Y float64

	viewW float64
	viewH float64
}

// NewCamera creates a camera for a viewport of the given logical size.
func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{viewW: viewW, viewH: viewH}
}

func (c *Camera) ViewSize() (float64, float64) {
	if c == nil {
		return 0, 0
	}
	return c.viewW, c.viewH
}

// Update moves the offset so that (targetX, targetY) sits at the viewport
// center, limited to [0, extent-view] on each axis. The horizontal offset is
// left untouched when the level width is unknown.
func (c *Camera) Update(targetX, targetY float64, b LevelBounds) {
	if c == nil {
		return
	}
	if b.WidthKnown {
		c.X = follow(c.X, targetX-c.viewW/2, max(0, b.Width-c.viewW))
	}
	c.Y = follow(c.Y, targetY-c.viewH/2, max(0, b.Height-c.viewH))
}

func follow(cur, desired, maxOff float64) float64 {
	switch {
	case desired > cur:
		cur = min(desired, maxOff)
	case desired < cur:
		cur = max(desired, 0)
	}
	return common.Clamp(cur, 0, maxOff)
}

// Reset returns the offset to the world origin.
func (c *Camera) Reset() {
	if c == nil {
		return
	}
	c.X = 0
	c.Y = 0
}

func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	if c == nil {
		return x, y
	}
	return x - c.X, y - c.Y
}

// ScreenX returns the on-screen x of an entity of width frameW, kept inside
// the viewport even before the camera reaches a level edge.
func (c *Camera) ScreenX(worldX, frameW float64) float64 {
	if c == nil {
		return worldX
	}
	return common.Clamp(worldX-c.X, 0, c.viewW-frameW)
}
