package component

// Pose is the visual state requested for the player sprite.
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalking
	PoseAction
)

func (p Pose) String() string {
	switch p {
	case PoseWalking:
		return "walking"
	case PoseAction:
		return "action"
	default:
		return "idle"
	}
}

// SpriteAnimation is the presentation-only animation state of the player.
// Walking plays the walk strip from its first frame, idle freezes on the frame
// that was showing when the player stopped, and the action pose plays once for
// a fixed duration and then hands back to walking or idle.
type SpriteAnimation struct {
	actionFor float64
	hasAction bool

	pose        Pose
	walkClock   float64
	actionClock float64
	actionLeft  float64
}

// NewSpriteAnimation creates an idle animation. hasAction is false when the
// level supplies no action asset, in which case StartAction is refused.
func NewSpriteAnimation(actionMs float64, hasAction bool) *SpriteAnimation {
	if actionMs <= 0 {
		actionMs = 1500
	}
	return &SpriteAnimation{actionFor: actionMs, hasAction: hasAction}
}

// StartAction switches to the action pose. It returns false when no action
// asset exists or an action is already playing.
func (a *SpriteAnimation) StartAction() bool {
	if a == nil || !a.hasAction || a.pose == PoseAction {
		return false
	}
	a.pose = PoseAction
	a.actionClock = 0
	a.actionLeft = a.actionFor
	return true
}

// Update advances the clocks by deltaMs. Walk/idle requests are ignored while
// the action pose plays.
func (a *SpriteAnimation) Update(deltaMs float64, walking bool) {
	if a == nil {
		return
	}
	if deltaMs < 0 {
		deltaMs = 0
	}

	if a.pose == PoseAction {
		a.actionClock += deltaMs
		a.actionLeft -= deltaMs
		if a.actionLeft > 0 {
			return
		}
		a.actionLeft = 0
		if walking {
			a.pose = PoseWalking
			a.walkClock = 0
		} else {
			a.pose = PoseIdle
		}
		return
	}

	switch {
	case walking && a.pose != PoseWalking:
		a.pose = PoseWalking
		a.walkClock = 0
	case walking:
		a.walkClock += deltaMs
	case a.pose != PoseIdle:
		a.pose = PoseIdle
	}
}

func (a *SpriteAnimation) Pose() Pose {
	if a == nil {
		return PoseIdle
	}
	return a.pose
}

// ActionRemaining returns the milliseconds left in the action pose.
func (a *SpriteAnimation) ActionRemaining() float64 {
	if a == nil {
		return 0
	}
	return a.actionLeft
}

// Frame picks the strip frame to show for a strip of frameCount frames played
// at fps. Idle keeps returning the frame that was current when walking stopped.
func (a *SpriteAnimation) Frame(frameCount int, fps float64) int {
	if a == nil || frameCount <= 1 || fps <= 0 {
		return 0
	}
	clock := a.walkClock
	if a.pose == PoseAction {
		clock = a.actionClock
	}
	idx := int(clock / (1000 / fps))
	if a.pose == PoseAction && idx >= frameCount {
		return frameCount - 1
	}
	return idx % frameCount
}
