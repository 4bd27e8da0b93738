package component

// Facing is the horizontal direction an entity looks toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Flip reports whether a right-facing sprite must be mirrored.
func (f Facing) Flip() bool {
	return f == FacingLeft
}
