package component

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box in world pixels with a top-left origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// BB converts the rect to a chipmunk bounding box. Y grows downward, so B is
// the top edge and T the bottom edge.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// Intersects reports strict overlap. Rects that only share an edge do not
// intersect.
func (r Rect) Intersects(other Rect) bool {
	return Overlaps(r.BB(), other.BB())
}

// Inflate grows the rect by pad on every side.
func (r Rect) Inflate(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, Width: r.Width + 2*pad, Height: r.Height + 2*pad}
}

// Overlaps is a strict-inequality variant of cp.BB.Intersects.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// PointBox returns the box of half-extent pad around p.
func PointBox(p cp.Vector, pad float64) cp.BB {
	return cp.BB{L: p.X - pad, B: p.Y - pad, R: p.X + pad, T: p.Y + pad}
}
