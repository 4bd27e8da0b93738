package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/levelstore"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/system"
	"github.com/milk9111/platformer/tuning"
	"go.uber.org/zap"
)

// Options configure a Game.
type Options struct {
	Level      string
	LevelID    string
	Store      *levelstore.Store
	TuningPath string
	AssetDir   string
	Debug      bool
	Watch      bool
}

// binding maps physical keys onto one logical key.
type binding struct {
	key  obj.Key
	keys []ebiten.Key
}

var bindings = []binding{
	{obj.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{obj.KeyRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{obj.KeyJump, []ebiten.Key{ebiten.KeySpace}},
	{obj.KeyAction, []ebiten.Key{ebiten.KeyS}},
}

type Game struct {
	log        *zap.Logger
	debug      bool
	source     levelSource
	tuningPath string
	tuning     *tuning.Tuning

	loader   *assets.Loader[*ebiten.Image]
	renderer *render.Renderer
	brain    obj.Brain
	watcher  *tuning.Watcher

	doc      *levels.Document
	digest   uint64
	session  *system.Session
	tileSize bool

	paused   bool
	pauseUI  *ebitenui.UI
	lastTick time.Time
}

func NewGame(ctx context.Context, opts Options, log *zap.Logger) (*Game, error) {
	t, err := tuning.Load(opts.TuningPath)
	if err != nil {
		log.Warn("tuning unusable, using defaults", zap.String("path", opts.TuningPath), zap.Error(err))
		t = tuning.Default()
	}
	g := &Game{
		log:        log,
		debug:      opts.Debug,
		source:     levelSource{name: opts.Level, id: opts.LevelID, store: opts.Store},
		tuningPath: opts.TuningPath,
		tuning:     t,
		loader:     assets.NewLoader(assets.Source{Dir: opts.AssetDir}, ebiten.NewImageFromImage, log),
	}
	g.renderer = render.New(render.ConfigFrom(t), g.loader)
	g.brain = g.loadBrain()

	doc, err := g.source.load(ctx)
	if err != nil {
		log.Warn("level unusable, playing the default level", zap.String("level", g.source.String()), zap.Error(err))
		g.source = levelSource{}
		if doc, err = g.source.load(ctx); err != nil {
			return nil, fmt.Errorf("load default level: %w", err)
		}
	}
	g.start(doc)
	g.pauseUI = NewPauseUI(g, t.Canvas.Width, t.Canvas.Height)

	if opts.Watch {
		g.watch()
	}
	return g, nil
}

func (g *Game) loadBrain() obj.Brain {
	name := g.tuning.Enemy.Script
	if name == "" {
		return nil
	}
	src, err := tuning.LoadScript(name)
	if err != nil {
		g.log.Warn("enemy script unavailable, enemies chase", zap.String("script", name), zap.Error(err))
		return nil
	}
	b, err := obj.NewScriptBrain(src, g.log)
	if err != nil {
		g.log.Warn("enemy script rejected, enemies chase", zap.String("script", name), zap.Error(err))
		return nil
	}
	return b
}

// start replaces the session with a fresh one for doc.
func (g *Game) start(doc *levels.Document) {
	opts := []system.Option{system.WithLogger(g.log)}
	if g.brain != nil {
		opts = append(opts, system.WithBrain(g.brain))
	}
	g.doc = doc
	g.digest = levels.Digest(doc)
	g.session = system.NewSession(doc, system.ConfigFrom(g.tuning), opts...)
	g.tileSize = false
	g.loader.Request(doc.AssetURLs()...)
	g.lastTick = time.Now()
	g.log.Info("level started",
		zap.String("level", g.source.String()),
		zap.String("digest", levels.DigestString(doc)),
		zap.Int("enemies", len(doc.Enemies)))
}

// restart replays the current document from scratch.
func (g *Game) restart() {
	g.paused = false
	g.start(g.doc)
}

// reload reads the level again from its source.
func (g *Game) reload() {
	doc, err := g.source.load(context.Background())
	if err != nil {
		g.log.Warn("level reload failed", zap.String("level", g.source.String()), zap.Error(err))
		return
	}
	g.start(doc)
}

func (g *Game) resume() {
	g.paused = false
	g.lastTick = time.Now()
}

func (g *Game) togglePause() {
	if g.paused {
		g.resume()
		return
	}
	g.paused = true
	g.session.Input().Reset()
}

// applyTileSize hands the first tile image size to the session once it has
// decoded.
func (g *Game) applyTileSize() {
	if g.tileSize {
		return
	}
	for id := 1; id <= len(g.doc.TileURLs); id++ {
		u, ok := g.doc.TileURL(id)
		if !ok {
			continue
		}
		w, h, ok := g.loader.Size(u)
		if !ok {
			return
		}
		g.session.SetTileSize(float64(w), float64(h))
		g.tileSize = true
		return
	}
}

func (g *Game) feedInput() {
	in := g.session.Input()
	for _, b := range bindings {
		down, pressed := false, false
		for _, k := range b.keys {
			down = down || ebiten.IsKeyPressed(k)
			pressed = pressed || inpututil.IsKeyJustPressed(k)
		}
		syncKey(in, b.key, down, pressed)
	}
}

// syncKey brings one logical key in line with its physical keys. Only a
// fresh press raises jump or action; a key found already down after a pause
// is just marked held.
func syncKey(in *obj.Input, key obj.Key, down, pressed bool) {
	switch {
	case pressed:
		in.Press(key)
	case down && !in.Held(key):
		in.Hold(key)
	case !down && in.Held(key):
		in.Release(key)
	}
}

func (g *Game) Update() error {
	g.drainWatcher()
	g.loader.Poll()
	g.applyTileSize()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.togglePause()
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}

	now := time.Now()
	delta := now.Sub(g.lastTick)
	g.lastTick = now

	g.feedInput()
	g.session.Update(float64(delta) / float64(time.Millisecond))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		p := g.session.Player()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  x=%.0f y=%.0f  deaths=%d  kills=%d",
			ebiten.ActualFPS(), p.X, p.Y, g.session.Deaths(), g.session.Lava().Kills()), 10, 80)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.tuning.Canvas.Width), float64(g.tuning.Canvas.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.loader.Close()
}

func (g *Game) watch() {
	dirs := map[string]bool{}
	if g.tuningPath != "" {
		dirs[filepath.Dir(absPath(g.tuningPath))] = true
	}
	if p, ok := g.source.path(); ok {
		dirs[filepath.Dir(p)] = true
	}
	if s := g.tuning.Enemy.Script; s != "" && filepath.Ext(s) == ".tengo" {
		dirs[filepath.Dir(absPath(s))] = true
	}
	if len(dirs) == 0 {
		g.log.Info("nothing on disk to watch")
		return
	}
	list := make([]string, 0, len(dirs))
	for d := range dirs {
		list = append(list, d)
	}
	w, err := tuning.NewWatcher(list...)
	if err != nil {
		g.log.Warn("hot reload disabled", zap.Error(err))
		return
	}
	g.watcher = w
	g.log.Info("watching for changes", zap.Strings("dirs", list))
}

// drainWatcher applies every pending file change without blocking.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.onFileChanged(absPath(name))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("watcher error", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) onFileChanged(path string) {
	switch {
	case tuning.IsTuningFile(path) && path == absPath(g.tuningPath):
		t, err := tuning.Load(g.tuningPath)
		if err != nil {
			g.log.Warn("tuning reload failed", zap.Error(err))
			return
		}
		g.tuning = t
		g.renderer = render.New(render.ConfigFrom(t), g.loader)
		g.brain = g.loadBrain()
		g.log.Info("tuning reloaded", zap.String("path", path))
		g.start(g.doc)
	case tuning.IsLevelFile(path):
		if p, ok := g.source.path(); !ok || p != path {
			return
		}
		doc, err := g.source.load(context.Background())
		if err != nil {
			g.log.Warn("level reload failed", zap.Error(err))
			return
		}
		if levels.Digest(doc) == g.digest {
			g.log.Debug("level unchanged", zap.String("path", path))
			return
		}
		g.start(doc)
	case tuning.IsScriptFile(path) && path == absPath(g.tuning.Enemy.Script):
		g.brain = g.loadBrain()
		g.log.Info("enemy script reloaded", zap.String("path", path))
		g.start(g.doc)
	}
}

func absPath(p string) string {
	if p == "" {
		return ""
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
