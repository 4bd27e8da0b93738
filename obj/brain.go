package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/common"
	"go.uber.org/zap"
)

// Brain picks an enemy's horizontal direction each tick: -1, 0 or +1.
type Brain interface {
	Direction(e *Enemy, playerX float64) float64
}

// ChaseBrain walks straight toward the player's current x.
type ChaseBrain struct{}

func (ChaseBrain) Direction(e *Enemy, playerX float64) float64 {
	if e == nil {
		return 0
	}
	return common.Sign(playerX - e.X)
}

// ScriptBrain runs a tengo script per enemy per tick. The script sees
// dx, player_x, enemy_x, enemy_y and enemy_id, and assigns dir. A script
// error disables the script and the brain falls back to chasing.
type ScriptBrain struct {
	compiled *tengo.Compiled
	fallback ChaseBrain
	log      *zap.Logger
	failed   bool
}

// NewScriptBrain compiles src. All tengo stdlib modules are importable.
func NewScriptBrain(src []byte, log *zap.Logger) (*ScriptBrain, error) {
	if log == nil {
		log = zap.NewNop()
	}
	script := tengo.NewScript(src)
	_ = script.Add("dx", 0.0)
	_ = script.Add("player_x", 0.0)
	_ = script.Add("enemy_x", 0.0)
	_ = script.Add("enemy_y", 0.0)
	_ = script.Add("enemy_id", 0)
	_ = script.Add("dir", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile enemy script: %w", err)
	}
	return &ScriptBrain{compiled: compiled, log: log}, nil
}

func (b *ScriptBrain) Direction(e *Enemy, playerX float64) float64 {
	if b == nil {
		return ChaseBrain{}.Direction(e, playerX)
	}
	if b.failed || b.compiled == nil || e == nil {
		return b.fallback.Direction(e, playerX)
	}
	dir, err := b.run(e, playerX)
	if err != nil {
		b.failed = true
		b.log.Warn("enemy script failed, falling back to chase", zap.Int("enemy", e.ID), zap.Error(err))
		return b.fallback.Direction(e, playerX)
	}
	return common.Sign(dir)
}

func (b *ScriptBrain) run(e *Enemy, playerX float64) (float64, error) {
	c := b.compiled
	if err := c.Set("dx", playerX-e.X); err != nil {
		return 0, err
	}
	if err := c.Set("player_x", playerX); err != nil {
		return 0, err
	}
	if err := c.Set("enemy_x", e.X); err != nil {
		return 0, err
	}
	if err := c.Set("enemy_y", e.Y); err != nil {
		return 0, err
	}
	if err := c.Set("enemy_id", e.ID); err != nil {
		return 0, err
	}
	if err := c.Set("dir", 0); err != nil {
		return 0, err
	}
	if err := c.Run(); err != nil {
		return 0, err
	}
	return c.Get("dir").Float(), nil
}
