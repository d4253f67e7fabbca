package game

import (
	"image/color"
	"math"
)

const (
	// ProjectileSpeed is how far a bubble rises per tick
	ProjectileSpeed = 6.0

	projectileRadius      = 8.0
	projectileWobbleSpeed = 0.15
	wobbleAmplitude       = 0.5

	hazardSpawnY       = -50.0
	hazardMaxSpinSpeed = 0.04 // radians per tick, either direction

	buffSpawnY     = -30.0
	buffRadius     = 16.0
	buffSpeed      = 1.2
	buffFloatSpeed = 0.05
	buffSpinSpeed  = 0.03
	buffPulseSpeed = 0.08
)

// Projectile is a bubble fired upward by the player
type Projectile struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Wobble float64
	Active bool
}

// NewProjectile creates a bubble at the given position
func NewProjectile(x, y float64) Projectile {
	return Projectile{
		X:      x,
		Y:      y,
		Radius: projectileRadius,
		Speed:  ProjectileSpeed,
		Active: true,
	}
}

// Update moves the bubble up with a sideways wobble and deactivates it above the screen
func (p *Projectile) Update() {
	if !p.Active {
		return
	}
	p.Y -= p.Speed
	p.Wobble += projectileWobbleSpeed
	p.X += math.Sin(p.Wobble) * wobbleAmplitude

	if p.OffScreen() {
		p.Active = false
	}
}

// OffScreen reports whether the bubble has left the top of the screen
func (p *Projectile) OffScreen() bool {
	return p.Y < -p.Radius*2
}

// Bounds returns the collision circle
func (p *Projectile) Bounds() Circle {
	return Circle{X: p.X, Y: p.Y, Radius: p.Radius}
}

// Hazard is a piece of falling trash
type Hazard struct {
	X, Y          float64
	Kind          HazardKind
	Width, Height float64
	Speed         float64 // pixels per tick before the speed multiplier
	Rotation      float64
	RotationSpeed float64
	Color         color.RGBA
	Active        bool
}

// NewHazard creates a hazard of the given kind at a random x above the screen
func NewHazard(rng Rand, screenWidth float64, kind HazardKind) Hazard {
	kc := GetHazardKindConfig(kind)
	return Hazard{
		X:             rng.Float64() * screenWidth,
		Y:             hazardSpawnY,
		Kind:          kind,
		Width:         kc.Width,
		Height:        kc.Height,
		Speed:         kc.MinSpeed + rng.Float64()*kc.SpeedSpan,
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64()*2 - 1) * hazardMaxSpinSpeed,
		Color:         kc.Color,
		Active:        true,
	}
}

// Update moves the hazard down, scaled by the global speed multiplier
func (h *Hazard) Update(speedMultiplier float64) {
	h.Y += h.Speed * speedMultiplier
	h.Rotation += h.RotationSpeed
}

// OffScreen reports whether the hazard has fully left the bottom of the screen
func (h *Hazard) OffScreen(screenHeight float64) bool {
	return h.Y-h.Height/2 > screenHeight
}

// Radius is the circumscribing radius used for gameplay collisions
func (h *Hazard) Radius() float64 {
	return math.Max(h.Width, h.Height) / 2
}

// Bounds returns the rectangle footprint together with its circumscribing circle.
// Collisions use the circle.
func (h *Hazard) Bounds() Bounds {
	return Bounds{
		X:         h.X - h.Width/2,
		Y:         h.Y - h.Height/2,
		Width:     h.Width,
		Height:    h.Height,
		HasCircle: true,
		Circle:    Circle{X: h.X, Y: h.Y, Radius: h.Radius()},
	}
}

// Buff is a falling power-up
type Buff struct {
	X, Y     float64
	Kind     BuffKind
	Radius   float64
	Speed    float64
	Float    float64
	Rotation float64
	Pulse    float64
	Color    color.RGBA
	Active   bool
}

// NewBuff creates a buff of the given kind at a random x above the screen
func NewBuff(rng Rand, screenWidth float64, kind BuffKind) Buff {
	return Buff{
		X:      rng.Float64() * screenWidth,
		Y:      buffSpawnY,
		Kind:   kind,
		Radius: buffRadius,
		Speed:  buffSpeed,
		Color:  GetBuffKindConfig(kind).Color,
		Active: true,
	}
}

// Update moves the buff down with a gentle horizontal float
func (b *Buff) Update(speedMultiplier float64) {
	b.Y += b.Speed * speedMultiplier
	b.Rotation += buffSpinSpeed
	b.Pulse += buffPulseSpeed
	b.Float += buffFloatSpeed
	b.X += math.Sin(b.Float) * wobbleAmplitude
}

// OffScreen reports whether the buff has fully left the bottom of the screen
func (b *Buff) OffScreen(screenHeight float64) bool {
	return b.Y-b.Radius > screenHeight
}

// Bounds returns the collision circle
func (b *Buff) Bounds() Circle {
	return Circle{X: b.X, Y: b.Y, Radius: b.Radius}
}
