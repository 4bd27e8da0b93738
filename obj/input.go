package obj

// Key is a logical game key. The runner maps physical keys onto these.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyAction
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyAction:
		return "action"
	default:
		return "unknown"
	}
}

// Input is edge-triggered key state. Jump and action are one-shot requests
// that stay set until a consumer clears them with ConsumeJump/ConsumeAction,
// so holding the key never fires twice.
type Input struct {
	held [keyCount]bool
	// dir is the most recently pressed movement key still held.
	dir int

	jumpRequested   bool
	actionRequested bool
}

func NewInput() *Input {
	return &Input{}
}

// Press records a key-down edge. Repeated presses of a held key are ignored.
func (i *Input) Press(k Key) {
	if !i.Hold(k) {
		return
	}
	switch k {
	case KeyJump:
		i.jumpRequested = true
	case KeyAction:
		i.actionRequested = true
	}
}

// Hold marks k as down without raising a jump or action request, for keys
// that were already down when input resumed. It reports whether k was up.
func (i *Input) Hold(k Key) bool {
	if i == nil || k < 0 || k >= keyCount || i.held[k] {
		return false
	}
	i.held[k] = true
	switch k {
	case KeyLeft:
		i.dir = -1
	case KeyRight:
		i.dir = 1
	}
	return true
}

// Release records a key-up edge.
func (i *Input) Release(k Key) {
	if i == nil || k < 0 || k >= keyCount {
		return
	}
	i.held[k] = false
	switch {
	case i.held[KeyLeft] && !i.held[KeyRight]:
		i.dir = -1
	case i.held[KeyRight] && !i.held[KeyLeft]:
		i.dir = 1
	case !i.held[KeyLeft] && !i.held[KeyRight]:
		i.dir = 0
	}
}

func (i *Input) Held(k Key) bool {
	if i == nil || k < 0 || k >= keyCount {
		return false
	}
	return i.held[k]
}

// MoveX is -1, 0 or +1. When both directions are held the latest press wins.
func (i *Input) MoveX() float64 {
	if i == nil {
		return 0
	}
	return float64(i.dir)
}

// Walking reports whether a movement key is held.
func (i *Input) Walking() bool {
	return i.MoveX() != 0
}

// JumpRequested peeks at the jump flag without clearing it.
func (i *Input) JumpRequested() bool { return i != nil && i.jumpRequested }

// ConsumeJump returns the pending jump request and clears it.
func (i *Input) ConsumeJump() bool {
	if i == nil {
		return false
	}
	r := i.jumpRequested
	i.jumpRequested = false
	return r
}

func (i *Input) ActionRequested() bool { return i != nil && i.actionRequested }

// ConsumeAction returns the pending action request and clears it.
func (i *Input) ConsumeAction() bool {
	if i == nil {
		return false
	}
	r := i.actionRequested
	i.actionRequested = false
	return r
}

// Reset drops all held keys and pending requests.
func (i *Input) Reset() {
	if i == nil {
		return
	}
	*i = Input{}
}
