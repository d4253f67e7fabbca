package screen

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"oceandefender/game"
)

const discRadius = 32

var (
	oceanTop    = color.RGBA{0x00, 0x3D, 0x7A, 0xFF}
	oceanMiddle = color.RGBA{0x00, 0x74, 0xD9, 0xFF}
	oceanBottom = color.RGBA{0x39, 0xCC, 0xCC, 0xFF}

	dolphinBody    = color.RGBA{0x39, 0xCC, 0xCC, 0xFF}
	dolphinDark    = color.RGBA{0x00, 0x74, 0xD9, 0xFF}
	dolphinOutline = color.RGBA{0x00, 0x3D, 0x7A, 0xFF}
	dolphinEye     = color.RGBA{0x00, 0x1F, 0x3F, 0xFF}
	trailColor     = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}

	hitboxColor = color.NRGBA{0xFF, 0x00, 0xFF, 0xC0}
)

// Renderer draws a session. It only reads from the session.
type Renderer struct {
	width, height float64

	background    *ebiten.Image
	disc          *ebiten.Image
	hazardSprites map[game.HazardKind]*ebiten.Image

	hud *HUD
}

// NewRenderer prepares the background and sprites for a screen size
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		width:         float64(width),
		height:        float64(height),
		background:    oceanGradient(height),
		disc:          ebiten.NewImage(discRadius*2, discRadius*2),
		hazardSprites: make(map[game.HazardKind]*ebiten.Image),
		hud:           NewHUD(float64(width), float64(height)),
	}
	vector.DrawFilledCircle(r.disc, discRadius, discRadius, discRadius, color.White, true)

	for _, kind := range []game.HazardKind{game.HazardKindBottle, game.HazardKindCan} {
		r.hazardSprites[kind] = hazardSprite(game.GetHazardKindConfig(kind))
	}
	return r
}

// oceanGradient builds a one pixel wide vertical gradient that is stretched across the screen
func oceanGradient(height int) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, height))
	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(height-1, 1))
		var c color.RGBA
		if t < 0.5 {
			c = lerpColor(oceanTop, oceanMiddle, t*2)
		} else {
			c = lerpColor(oceanMiddle, oceanBottom, (t-0.5)*2)
		}
		img.SetRGBA(0, y, c)
	}
	return ebiten.NewImageFromImage(img)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 0xFF}
}

// hazardSprite draws a piece of trash upright; it is rotated when drawn
func hazardSprite(kc game.HazardKindConfig) *ebiten.Image {
	w, h := int(kc.Width), int(kc.Height)
	img := ebiten.NewImage(w, h)
	fw, fh := float32(kc.Width), float32(kc.Height)

	switch kc.Kind {
	case game.HazardKindBottle:
		// Narrow neck with a cap, label band in the middle
		vector.DrawFilledRect(img, 0, fh*0.25, fw, fh*0.75, kc.Color, false)
		vector.DrawFilledRect(img, fw*0.3, 0, fw*0.4, fh*0.25, kc.Color, false)
		vector.DrawFilledRect(img, fw*0.25, 0, fw*0.5, 4, colornames.Darkgreen, false)
		vector.DrawFilledRect(img, 0, fh*0.5, fw, fh*0.2, color.NRGBA{0xFF, 0xFF, 0xFF, 0x80}, false)
	default:
		vector.DrawFilledRect(img, 0, 0, fw, fh, kc.Color, false)
		vector.DrawFilledRect(img, 0, 0, fw, 3, colornames.Lightgray, false)
		vector.DrawFilledRect(img, 0, fh-3, fw, 3, colornames.Lightgray, false)
		vector.DrawFilledRect(img, 0, fh*0.35, fw, fh*0.3, colornames.Firebrick, false)
	}
	return img
}

// Draw renders the whole frame
func (r *Renderer) Draw(dst *ebiten.Image, s *game.Session, backdrop *Backdrop, status Status) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.width, 1)
	dst.DrawImage(r.background, op)

	backdrop.Draw(dst, r)

	if s.State() == game.StateOpening {
		r.hud.DrawOpening(dst, s.OpeningProgress())
		return
	}

	r.drawPlayer(dst, s.Player())
	for _, p := range s.Projectiles() {
		r.drawProjectile(dst, p)
	}
	for _, h := range s.Hazards() {
		r.drawHazard(dst, h)
	}
	r.drawIncoming(dst, s.Hazards())
	for _, b := range s.Buffs() {
		r.drawBuff(dst, b)
	}
	for _, b := range s.Bursts() {
		r.drawBurst(dst, b)
	}

	if GetDebugState().ShowHitboxes {
		r.drawHitboxes(dst, s)
	}

	r.hud.Draw(dst, s, status)
}

// drawEllipse draws a filled ellipse by scaling the cached disc
func (r *Renderer) drawEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-discRadius, -discRadius)
	op.GeoM.Scale(rx/discRadius, ry/discRadius)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(r.disc, op)
}

func (r *Renderer) drawPlayer(dst *ebiten.Image, p *game.Player) {
	if p == nil || !p.Alive {
		return
	}
	dir := p.Facing
	x, y := p.X, p.Y

	if p.HasShield() {
		alpha := 0.3 + math.Sin(float64(p.Shield.Elapsed)*0.1)*0.2
		vector.DrawFilledCircle(dst, float32(x), float32(y), 40, withAlpha(color.RGBA{0x00, 0x96, 0xFF, 0xFF}, alpha*0.2), true)
		vector.StrokeCircle(dst, float32(x), float32(y), 40, 3, withAlpha(color.RGBA{0x00, 0xC8, 0xFF, 0xFF}, alpha), true)
	}

	if p.HasSpeedBoost() {
		for i := 0; i < 3; i++ {
			fi := float64(i)
			r.drawEllipse(dst, x+dir*(-10-fi*8), y, 8-fi*2, 6-fi*1.5, withAlpha(trailColor, 0.3-fi*0.1))
		}
	}

	wave := math.Sin(p.BodyWave) * 2
	tail := math.Sin(p.TailSwing) * 8

	// Tail flukes
	r.drawEllipse(dst, x-dir*31, y+tail-5, 6, 4, dolphinDark)
	r.drawEllipse(dst, x-dir*31, y+tail+5, 6, 4, dolphinDark)

	// Body, belly and dorsal fin
	r.drawEllipse(dst, x+dir*wave, y, 26, 13, dolphinOutline)
	r.drawEllipse(dst, x+dir*wave, y, 25, 12, dolphinBody)
	r.drawEllipse(dst, x+dir*wave, y+5, 20, 8, color.NRGBA{0xFF, 0xFF, 0xFF, 0x66})
	r.drawEllipse(dst, x, y-14, 4, 6, dolphinDark)

	// Eye
	vector.DrawFilledCircle(dst, float32(x+dir*15), float32(y-5), 2.5, dolphinEye, true)
	vector.DrawFilledCircle(dst, float32(x+dir*15.5), float32(y-5.5), 1, color.White, true)
}

func (r *Renderer) drawProjectile(dst *ebiten.Image, p game.Projectile) {
	if !p.Active {
		return
	}
	x, y, rad := float32(p.X), float32(p.Y), float32(p.Radius)
	vector.DrawFilledCircle(dst, x, y, rad, color.NRGBA{0x7F, 0xDB, 0xFF, 0x60}, true)
	vector.StrokeCircle(dst, x, y, rad, 1.5, color.NRGBA{0xFF, 0xFF, 0xFF, 0xCC}, true)
	vector.DrawFilledCircle(dst, x-rad*0.35, y-rad*0.35, rad*0.25, color.White, true)
}

func (r *Renderer) drawHazard(dst *ebiten.Image, h game.Hazard) {
	if !h.Active {
		return
	}
	sprite := r.hazardSprites[h.Kind]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-h.Width/2, -h.Height/2)
	op.GeoM.Rotate(h.Rotation)
	op.GeoM.Translate(h.X, h.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sprite, op)
}

// drawIncoming marks hazards that have spawned but are still above the top
// edge, fading in as they get closer
func (r *Renderer) drawIncoming(dst *ebiten.Image, hazards []game.Hazard) {
	const markerRange = 60.0
	for _, h := range hazards {
		if !h.Active || h.Y+h.Height/2 >= 0 {
			continue
		}
		closeness := clampUnit(1 - (-h.Y-h.Height/2)/markerRange)
		x := float32(math.Max(6, math.Min(r.width-6, h.X)))
		clr := withAlpha(h.Color, 0.3+0.6*closeness)
		vector.StrokeLine(dst, x-6, 2, x, 8, 2, clr, true)
		vector.StrokeLine(dst, x, 8, x+6, 2, 2, clr, true)
	}
}

func (r *Renderer) drawBuff(dst *ebiten.Image, b game.Buff) {
	if !b.Active {
		return
	}
	bc := game.GetBuffKindConfig(b.Kind)
	rad := b.Radius * (1 + math.Sin(b.Pulse)*0.1)

	vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(rad+4), withAlpha(bc.SecondaryColor, 0.3), true)
	vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(rad), bc.Color, true)
	vector.StrokeCircle(dst, float32(b.X), float32(b.Y), float32(rad), 2, color.White, true)

	// Spinning sparkle on the rim
	sx := b.X + math.Cos(b.Rotation)*rad
	sy := b.Y + math.Sin(b.Rotation)*rad
	vector.DrawFilledCircle(dst, float32(sx), float32(sy), 2, color.White, true)

	r.hud.drawCentered(dst, bc.Symbol, b.X, b.Y, 1, dolphinOutline)
}

func (r *Renderer) drawBurst(dst *ebiten.Image, b game.Burst) {
	for _, p := range b.Particles {
		if !p.Active {
			continue
		}
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), withAlpha(p.Color, p.Alpha), true)
	}
}

func (r *Renderer) drawHitboxes(dst *ebiten.Image, s *game.Session) {
	strokeCircle := func(c game.Circle) {
		vector.StrokeCircle(dst, float32(c.X), float32(c.Y), float32(c.Radius), 1, hitboxColor, true)
	}

	if p := s.Player(); p.Alive {
		strokeCircle(p.Bounds())
	}
	for _, p := range s.Projectiles() {
		strokeCircle(p.Bounds())
	}
	for _, h := range s.Hazards() {
		b := h.Bounds()
		vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, hitboxColor, false)
		strokeCircle(b.Circle)
	}
	for _, b := range s.Buffs() {
		strokeCircle(b.Bounds())
	}
}
