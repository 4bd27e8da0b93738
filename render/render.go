// Package render paints a session with ebiten. It reads simulation state and
// never mutates it.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/system"
	"github.com/milk9111/platformer/tuning"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Images looks up a decoded image by asset url.
type Images interface {
	Image(path string) (*ebiten.Image, bool)
}

// Config holds the drawing-only settings.
type Config struct {
	WalkFPS      float64
	WalkFrames   int
	ActionFrames int
}

func ConfigFrom(t *tuning.Tuning) Config {
	if t == nil {
		t = tuning.Default()
	}
	return Config{
		WalkFPS:      t.Player.WalkFPS,
		WalkFrames:   t.Player.WalkFrames,
		ActionFrames: t.Player.ActionFrames,
	}
}

var (
	lavaColor     = color.NRGBA{R: 0xff, G: 0x5a, B: 0x10, A: 0xff}
	lavaCoreColor = color.NRGBA{R: 0xff, G: 0xd0, B: 0x40, A: 0xff}
	barBackColor  = color.NRGBA{R: 0x40, G: 0x10, B: 0x10, A: 0xff}
)

// Renderer draws layers in a fixed order: background, props, tiles, player,
// enemies, lava, HUD, then the level-ended overlay.
type Renderer struct {
	cfg    Config
	images Images
	face   text.Face
}

func New(cfg Config, images Images) *Renderer {
	return &Renderer{
		cfg:    cfg,
		images: images,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, s *system.Session) {
	if s == nil {
		return
	}
	screen.Fill(colornames.Skyblue)
	r.drawBackground(screen, s)
	r.drawProps(screen, s)
	r.drawTiles(screen, s)
	r.drawPlayer(screen, s)
	r.drawEnemies(screen, s)
	r.drawLava(screen, s)
	r.drawHUD(screen, s)
	r.drawOverlay(screen, s)
}

func (r *Renderer) image(url string) (*ebiten.Image, bool) {
	if url == "" || r.images == nil {
		return nil, false
	}
	return r.images.Image(url)
}

// drawImage scales img to w by h at (x, y), mirrored horizontally if flip.
func drawImage(dst, img *ebiten.Image, x, y, w, h float64, flip bool) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(iw, 0)
	}
	op.GeoM.Scale(w/iw, h/ih)
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

// drawBackground covers the view with the background image, anchored to the
// bottom edge.
func (r *Renderer) drawBackground(screen *ebiten.Image, s *system.Session) {
	img, ok := r.image(s.Document().BackgroundURL)
	if !ok {
		return
	}
	vw, vh := s.Camera().ViewSize()
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := max(vw/iw, vh/ih)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((vw-iw*scale)/2, vh-ih*scale)
	screen.DrawImage(img, op)
}

func (r *Renderer) drawProps(screen *ebiten.Image, s *system.Session) {
	props := s.Props()
	cam := s.Camera()
	vw, vh := cam.ViewSize()
	size := func(id string) (float64, float64, bool) {
		url, ok := props.URL(id)
		if !ok {
			return 0, 0, false
		}
		img, ok := r.image(url)
		if !ok {
			return 0, 0, false
		}
		b := img.Bounds()
		return float64(b.Dx()), float64(b.Dy()), true
	}
	props.EachVisible(cam.X, cam.Y, vw, vh, size, func(p obj.Prop, x, y float64) {
		url, _ := props.URL(p.AssetID)
		img, _ := r.image(url)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	})
}

func (r *Renderer) drawTiles(screen *ebiten.Image, s *system.Session) {
	tiles := s.Tiles()
	if !tiles.SizeKnown() {
		return
	}
	doc := s.Document()
	cam := s.Camera()
	vw, vh := cam.ViewSize()
	tw, th := tiles.TileSize()
	tiles.EachVisible(cam.X, cam.Y, vw, vh, func(id int, x, y float64) {
		url, ok := doc.TileURL(id)
		if !ok {
			return
		}
		if img, ok := r.image(url); ok {
			drawImage(screen, img, x, y, tw, th, false)
		}
	})
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, s *system.Session) {
	doc := s.Document()
	anim := s.Animation()
	url, frames := doc.SpriteURL, r.cfg.WalkFrames
	if anim.Pose() == component.PoseAction {
		url, frames = doc.ActionURL, r.cfg.ActionFrames
	}
	img, ok := r.image(url)
	if !ok {
		return
	}
	frames = max(frames, 1)
	b := img.Bounds()
	fw := b.Dx() / frames
	if fw <= 0 {
		return
	}
	idx := anim.Frame(frames, r.cfg.WalkFPS)
	sub := img.SubImage(image.Rect(b.Min.X+idx*fw, b.Min.Y, b.Min.X+(idx+1)*fw, b.Max.Y)).(*ebiten.Image)

	// Blink while immune.
	if st := s.State(); st.Immune() && int(st.ImmunityRemaining()/100)%2 == 1 {
		return
	}
	p := s.Player()
	x, y := s.PlayerScreen()
	drawImage(screen, sub, x, y, p.Width, p.Height, p.Facing.Flip())
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, s *system.Session) {
	img, ok := r.image(s.Document().EnemyURL)
	if !ok {
		return
	}
	cam := s.Camera()
	cfg := s.Enemies().Config()
	s.Enemies().Each(func(e *obj.Enemy) {
		x, y := cam.WorldToScreen(e.X, e.Y)
		drawImage(screen, img, x, y+cfg.DrawOffsetY, cfg.Width, cfg.Height, e.Facing.Flip())
	})
}

func (r *Renderer) drawLava(screen *ebiten.Image, s *system.Session) {
	lava := s.Lava()
	for _, d := range lava.Drops() {
		rad := float32(d.Size / 2)
		vector.FillCircle(screen, float32(d.Pos.X), float32(d.Pos.Y), rad, lavaColor, true)
		vector.FillCircle(screen, float32(d.Pos.X), float32(d.Pos.Y), rad/2, lavaCoreColor, true)
	}
	for _, b := range lava.Bursts() {
		for _, p := range lava.Particles(b) {
			c := lavaColor
			c.A = uint8(255 * p.Alpha)
			vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(5*p.Scale), c, true)
		}
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s *system.Session) {
	cfg := s.Config().HUD
	hud := s.HUD()
	vector.FillRect(screen, float32(cfg.BarX), float32(cfg.BarY), float32(cfg.BarW), float32(cfg.BarH), barBackColor, false)
	vector.FillRect(screen, float32(cfg.BarX), float32(cfg.BarY), float32(cfg.HealthFill(hud)), float32(cfg.BarH), colornames.Limegreen, false)
	vector.StrokeRect(screen, float32(cfg.BarX), float32(cfg.BarY), float32(cfg.BarW), float32(cfg.BarH), 1, colornames.White, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(cfg.BarX, cfg.BarY+cfg.BarH+6)
	op.ColorScale.ScaleWithColor(colornames.White)
	op.LineSpacing = 16
	msg := fmt.Sprintf("Lives: %d/%d\nEnemies: %d", hud.Lives, hud.MaxLives, hud.Enemies)
	text.Draw(screen, msg, r.face, op)
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, s *system.Session) {
	hud := s.HUD()
	if !hud.Ended {
		return
	}
	o := s.Config().HUD.Overlay(hud.EndedMs)
	vw, vh := s.Camera().ViewSize()
	vector.FillRect(screen, 0, 0, float32(vw), float32(vh), color.NRGBA{A: uint8(255 * o.Alpha)}, false)
	if !o.ShowText || o.TextAlpha <= 0 {
		return
	}
	const msg = "LEVEL ENDED"
	const base = 4.0
	tw, th := text.Measure(msg, r.face, 0)
	scale := base * o.TextScale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((vw-tw*scale)/2, (vh-th*scale)/2)
	op.ColorScale.ScaleWithColor(colornames.White)
	op.ColorScale.ScaleAlpha(float32(o.TextAlpha))
	text.Draw(screen, msg, r.face, op)
}
