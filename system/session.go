package system

import (
	"math/rand"
	"time"

	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"go.uber.org/zap"
)

// Session is one play-through of one level. It owns every piece of mutable
// simulation state; two sessions never share entities or timers.
type Session struct {
	cfg Config
	doc *levels.Document
	log *zap.Logger

	input   *obj.Input
	tiles   *obj.TileMap
	camera  *obj.Camera
	player  *obj.Player
	state   *component.PlayerState
	anim    *component.SpriteAnimation
	enemies *obj.EnemyManager
	lava    *obj.LavaSystem
	props   *obj.Props

	ended   bool
	endedMs float64
	deaths  int
}

// Option customizes a session.
type Option func(*sessionOptions)

type sessionOptions struct {
	log   *zap.Logger
	rng   *rand.Rand
	brain obj.Brain
}

// WithLogger sets the session logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *sessionOptions) { o.log = log }
}

// WithRand sets the source for enemy speeds and lava drops.
func WithRand(rng *rand.Rand) Option {
	return func(o *sessionOptions) { o.rng = rng }
}

// WithBrain replaces the default chase behaviour of enemies.
func WithBrain(b obj.Brain) Option {
	return func(o *sessionOptions) { o.brain = b }
}

// NewSession builds a session for doc and places the player at the spawn
// point. doc is copied.
func NewSession(doc *levels.Document, cfg Config, opts ...Option) *Session {
	o := sessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if doc == nil {
		doc = &levels.Document{}
	}
	doc = doc.Clone()
	doc.Normalize()

	s := &Session{
		cfg:    cfg,
		doc:    doc,
		log:    o.log,
		input:  obj.NewInput(),
		camera: obj.NewCamera(cfg.ViewW, cfg.ViewH),
		player: obj.NewPlayer(cfg.PlayerW, cfg.PlayerH),
		state:  component.NewPlayerState(cfg.MaxLives, cfg.MaxHealth, cfg.ImmunityMs),
		anim:   component.NewSpriteAnimation(cfg.ActionMs, doc.ActionURL != ""),
	}
	s.tiles = obj.NewTileMap(doc.Map, doc.GoalTileID, countTileAssets(doc))
	s.tiles.SetDefaultTileSize(cfg.TileSize)
	s.tiles.SetFootInset(cfg.FootInset)
	s.enemies = obj.NewEnemyManager(enemySeeds(doc), s.tiles, cfg.Enemy, o.rng, o.brain, o.log)
	s.lava = obj.NewLavaSystem(cfg.Lava, cfg.ViewW, cfg.ViewH, o.rng, o.log)
	s.props = obj.NewProps(propPlacements(doc), doc.PropURLMap())

	s.Respawn()
	return s
}

// Update advances the session by deltaMs milliseconds of wall time. Any
// delta is accepted; negative values count as zero.
func (s *Session) Update(deltaMs float64) {
	if s == nil {
		return
	}
	if deltaMs < 0 {
		deltaMs = 0
	}
	if s.ended {
		s.endedMs += deltaMs
		return
	}
	dt := deltaMs / 1000

	s.anim.Update(deltaMs, s.input.Walking())
	if s.input.ConsumeJump() {
		s.player.Jump(s.cfg.JumpVelocity)
	}
	if s.input.ConsumeAction() {
		s.anim.StartAction()
		s.lava.Start()
	}

	bounds := s.Bounds()
	s.player.Move(s.input.MoveX(), s.cfg.Speed, dt)
	s.player.ClampX(bounds)
	s.camera.Update(s.player.X, s.player.Y, bounds)

	s.player.Fall(s.cfg.Gravity, dt)
	s.player.Land(s.tiles.ResolveGroundCollision(s.player.X, s.player.Y, s.player.VY, s.player.Width, s.player.Height))

	if s.tiles.GoalReached(s.player.X, s.player.Y, s.player.Width, s.player.Height) {
		s.ended = true
		s.endedMs = 0
		s.log.Info("level ended", zap.String("level", s.doc.Name))
	}

	if s.player.Y > s.deathY() {
		s.die("fell")
		return
	}

	s.state.UpdateImmunity(deltaMs)
	s.enemies.Update(dt, s.player.X)
	s.lava.Update(dt, s.enemies, s.camera.X, s.camera.Y)

	if s.enemies.CheckCollision(s.player.Rect()) && s.state.TakeDamage(s.cfg.ContactDamage) {
		s.die("enemy")
	}
}

func (s *Session) die(cause string) {
	s.deaths++
	s.state.LoseLife()
	s.log.Info("life lost", zap.String("cause", cause), zap.Int("lives", s.state.Lives()))
	s.Respawn()
}

// Respawn puts the player back at the start of the level and clears the
// level-ended state. Enemies, lava and player state are left alone.
func (s *Session) Respawn() {
	if s == nil {
		return
	}
	s.camera.Reset()
	s.player.PlaceAt(s.cfg.SpawnX, 0)
	if y, ok := s.tiles.FindSpawnY(s.player.X, s.player.Width, s.player.Height); ok {
		s.player.Y = y
		s.player.Grounded = true
	} else {
		s.player.Y = s.cfg.ViewH - s.player.Height - s.cfg.SpawnFallbackMargin
	}
	s.camera.Update(s.player.X, s.player.Y, s.Bounds())
	s.ended = false
	s.endedMs = 0
	s.log.Debug("respawn", zap.Float64("x", s.player.X), zap.Float64("y", s.player.Y))
}

// SetTileSize records the loaded tile image size and respawns, since the
// spawn height depends on it.
func (s *Session) SetTileSize(w, h float64) {
	if s == nil {
		return
	}
	s.tiles.SetTileSize(w, h)
	s.Respawn()
}

// Bounds returns the level extents used for clamping. An empty grid uses the
// viewport height.
func (s *Session) Bounds() obj.LevelBounds {
	w, ok := s.tiles.WidthPx()
	h := s.tiles.HeightPx()
	if s.tiles.Rows() == 0 {
		h = s.cfg.ViewH
	}
	return obj.LevelBounds{Width: w, WidthKnown: ok, Height: h}
}

func (s *Session) deathY() float64 {
	return s.Bounds().Height + s.cfg.DeathMargin
}

// PlayerScreen returns where the player sprite is drawn.
func (s *Session) PlayerScreen() (float64, float64) {
	x := s.player.X
	if _, ok := s.tiles.WidthPx(); ok {
		x = s.camera.ScreenX(s.player.X, s.player.Width)
	}
	return x, s.player.Y - s.camera.Y
}

// HUD snapshots the values the HUD paints.
func (s *Session) HUD() obj.HUDState {
	return obj.HUDState{
		Health:    s.state.Health(),
		MaxHealth: s.state.MaxHealth,
		Lives:     s.state.Lives(),
		MaxLives:  s.state.MaxLives,
		Enemies:   s.enemies.Count(),
		Ended:     s.ended,
		EndedMs:   s.endedMs,
	}
}

func (s *Session) Config() Config                        { return s.cfg }
func (s *Session) Document() *levels.Document            { return s.doc }
func (s *Session) Input() *obj.Input                     { return s.input }
func (s *Session) Tiles() *obj.TileMap                   { return s.tiles }
func (s *Session) Camera() *obj.Camera                   { return s.camera }
func (s *Session) Player() *obj.Player                   { return s.player }
func (s *Session) State() *component.PlayerState         { return s.state }
func (s *Session) Animation() *component.SpriteAnimation { return s.anim }
func (s *Session) Enemies() *obj.EnemyManager            { return s.enemies }
func (s *Session) Lava() *obj.LavaSystem                 { return s.lava }
func (s *Session) Props() *obj.Props                     { return s.props }

// Ended reports whether the goal was reached. Only Respawn clears it.
func (s *Session) Ended() bool { return s.ended }

// EndedMs is the time spent in the ended state.
func (s *Session) EndedMs() float64 { return s.endedMs }

// Deaths counts lives lost in this session.
func (s *Session) Deaths() int { return s.deaths }
