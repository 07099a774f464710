// Package render draws a level with flat shapes and the HUD with the built-in
// bitmap font.
package render

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/coinhop/internal/application/hud"
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/domain/level"
	"github.com/younwookim/coinhop/internal/infrastructure/anim"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{135, 206, 235, 255}
	colorGround   = color.RGBA{96, 64, 40, 255}
	colorGrass    = color.RGBA{88, 160, 60, 255}
	colorHero     = color.RGBA{240, 240, 250, 255}
	colorEye      = color.RGBA{20, 20, 30, 255}
	colorSpider   = color.RGBA{60, 40, 70, 255}
	colorSpiderLo = color.RGBA{90, 60, 100, 255}
	colorDying    = color.RGBA{220, 80, 80, 255}
	colorCoin     = color.RGBA{255, 215, 0, 255}
	colorKey      = color.RGBA{255, 180, 40, 255}
	colorDoor     = color.RGBA{120, 70, 30, 255}
	colorDoorOpen = color.RGBA{40, 25, 10, 255}
	colorText     = color.RGBA{255, 255, 255, 255}
	colorShade    = color.RGBA{0, 0, 0, 140}
	colorBoundary = color.RGBA{255, 0, 255, 160}
)

// Renderer draws the playing field
type Renderer struct {
	settings *config.Settings
	bob      *Bob
	face     text.Face

	// Debug draws the invisible boundary markers
	Debug bool
}

// New creates a renderer
func New(settings *config.Settings) *Renderer {
	return &Renderer{
		settings: settings,
		bob:      NewBob(settings.KeyBob.Amplitude, time.Duration(settings.KeyBob.DurationMs)*time.Millisecond),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update advances time-based decoration
func (r *Renderer) Update(dt float64) {
	r.bob.Update(dt)
}

// Draw renders the level, then the HUD on top
func (r *Renderer) Draw(screen *ebiten.Image, lvl *level.Level, frames *anim.Animator, snap hud.Snapshot) {
	screen.Fill(colorBG)
	if lvl == nil {
		r.drawText(screen, "loading...", 20, 20)
		return
	}

	for _, p := range lvl.Platforms {
		c := colorGrass
		if p.Image == "ground" {
			c = colorGround
		}
		fillRect(screen, p.Rect(), c)
	}
	if r.Debug {
		for _, b := range lvl.Boundaries {
			fillRect(screen, b.Rect(), colorBoundary)
		}
	}

	if d := lvl.Door; d != nil {
		c := colorDoor
		if lvl.HasKey() {
			c = colorDoorOpen
		}
		fillRect(screen, d.Rect(), c)
	}
	if k := lvl.Key; k != nil && k.Alive {
		rect := k.Rect()
		rect.Y += r.bob.Offset()
		drawKey(screen, rect, true)
	}
	for _, c := range lvl.Coins() {
		_, frame, _ := frames.Frame(c.ID)
		fillRect(screen, coinRect(c.Rect(), frame), colorCoin)
	}
	for _, e := range lvl.Enemies() {
		name, frame, _ := frames.Frame(e.ID)
		fillRect(screen, e.Rect(), spiderColor(name, frame))
	}
	if p := lvl.Player; p != nil {
		r.drawHero(screen, p)
	}

	r.drawHUD(screen, snap)
}

// DrawPaused shades the screen with a pause banner
func (r *Renderer) DrawPaused(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), colorShade, false)
	r.drawText(screen, "PAUSED - press Esc", float64(w)/2-63, float64(h)/2)
}

func (r *Renderer) drawHero(screen *ebiten.Image, p *entity.Player) {
	rect := p.Rect()
	fillRect(screen, rect, colorHero)

	eyeX := rect.X + rect.W*0.65
	if p.Facing < 0 {
		eyeX = rect.X + rect.W*0.35 - 4
	}
	vector.FillRect(screen, float32(eyeX), float32(rect.Y+rect.H*0.25), 4, 6, colorEye, false)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap hud.Snapshot) {
	icon := r.settings.Sprite(config.SpriteKeyIcon)
	drawKey(screen, entity.Rect{X: 10, Y: 10, W: icon.Width, H: icon.Height}, snap.KeyIconFrame() == 1)

	coin := r.settings.Sprite(config.SpriteCoin)
	x := 10 + icon.Width + 12
	fillRect(screen, entity.Rect{X: x, Y: 14, W: coin.Width, H: coin.Height}, colorCoin)
	r.drawText(screen, snap.CoinText(), x+coin.Width+6, 18)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, s, r.face, op)
}

// drawKey draws a key shape, outlined only when not collected
func drawKey(screen *ebiten.Image, r entity.Rect, filled bool) {
	head := entity.Rect{X: r.X, Y: r.Y, W: r.W * 0.45, H: r.H}
	shaft := entity.Rect{X: r.X + r.W*0.45, Y: r.Y + r.H*0.4, W: r.W * 0.55, H: r.H * 0.2}
	if !filled {
		vector.StrokeRect(screen, float32(head.X), float32(head.Y), float32(head.W), float32(head.H), 2, colorKey, false)
		vector.StrokeRect(screen, float32(shaft.X), float32(shaft.Y), float32(shaft.W), float32(shaft.H), 2, colorKey, false)
		return
	}
	fillRect(screen, head, colorKey)
	fillRect(screen, shaft, colorKey)
}

func fillRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// coinRect narrows the coin to fake a spin: full, half, edge, half
func coinRect(r entity.Rect, frame int) entity.Rect {
	scale := []float64{1, 0.5, 0.15, 0.5}[frame%4]
	w := r.W * scale
	return entity.Rect{X: r.X + (r.W-w)/2, Y: r.Y, W: w, H: r.H}
}

// spiderColor alternates shades while crawling and flashes while dying
func spiderColor(anim string, frame int) color.Color {
	switch {
	case anim == entity.AnimDie && frame%2 == 0:
		return colorDying
	case anim == entity.AnimCrawl && frame == 1:
		return colorSpiderLo
	default:
		return colorSpider
	}
}
