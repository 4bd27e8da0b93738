package component

const (
	DefaultMaxLives   = 3
	DefaultMaxHealth  = 100
	DefaultImmunityMs = 2000.0
)

// PlayerState tracks health, lives and the post-hit immunity window. It knows
// nothing about rendering or respawning; callers react to the values it
// reports.
type PlayerState struct {
	MaxLives  int
	MaxHealth int

	lives       int
	health      int
	immune      bool
	immunityMs  float64
	immunityFor float64
}

// NewPlayerState creates a state at full lives and health. Non-positive values
// fall back to the defaults.
func NewPlayerState(maxLives, maxHealth int, immunityMs float64) *PlayerState {
	if maxLives <= 0 {
		maxLives = DefaultMaxLives
	}
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	if immunityMs <= 0 {
		immunityMs = DefaultImmunityMs
	}
	s := &PlayerState{MaxLives: maxLives, MaxHealth: maxHealth, immunityFor: immunityMs}
	s.Reset()
	return s
}

// TakeDamage subtracts amount from health and opens the immunity window.
// It returns true when health reached zero; the caller must then call
// LoseLife. Damage is ignored while immune or when amount is not positive.
func (s *PlayerState) TakeDamage(amount int) bool {
	if s == nil || amount <= 0 || s.immune {
		return false
	}
	s.health -= amount
	s.immune = true
	s.immunityMs = s.immunityFor
	if s.health <= 0 {
		s.health = 0
		return true
	}
	return false
}

// UpdateImmunity counts the immunity timer down by deltaMs. This is the only
// place immunity expires.
func (s *PlayerState) UpdateImmunity(deltaMs float64) {
	if s == nil || !s.immune || s.immunityMs <= 0 || deltaMs <= 0 {
		return
	}
	s.immunityMs -= deltaMs
	if s.immunityMs <= 0 {
		s.immune = false
		s.immunityMs = 0
	}
}

// LoseLife consumes a life and restores full health. Running out of lives
// wraps the counter back to MaxLives, so play never ends.
func (s *PlayerState) LoseLife() {
	if s == nil {
		return
	}
	s.lives--
	if s.lives <= 0 {
		s.lives = s.MaxLives
	}
	s.health = s.MaxHealth
	s.clearImmunity()
}

// Reset restores lives and health to their maximums.
func (s *PlayerState) Reset() {
	if s == nil {
		return
	}
	s.lives = s.MaxLives
	s.health = s.MaxHealth
	s.clearImmunity()
}

func (s *PlayerState) clearImmunity() {
	s.immune = false
	s.immunityMs = 0
}

func (s *PlayerState) Lives() int {
	if s == nil {
		return 0
	}
	return s.lives
}

func (s *PlayerState) Health() int {
	if s == nil {
		return 0
	}
	return s.health
}

// Immune reports whether damage is currently ignored.
func (s *PlayerState) Immune() bool {
	return s != nil && s.immune
}

// ImmunityRemaining returns the milliseconds left in the immunity window.
func (s *PlayerState) ImmunityRemaining() float64 {
	if s == nil {
		return 0
	}
	return s.immunityMs
}

// ImmunityDuration returns the configured immunity window length.
func (s *PlayerState) ImmunityDuration() float64 {
	if s == nil {
		return 0
	}
	return s.immunityFor
}
