package game

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

const (
	particleMinSpeed   = 1.0
	particleSpeedSpan  = 4.0
	particleMinRadius  = 2.0
	particleRadiusSpan = 3.0
	particleMinDecay   = 0.02
	particleDecaySpan  = 0.02
	particleDrag       = 0.98

	// Colour buckets: white below the first cut, base colour below the second, red above
	particleWhiteCut = 0.3
	particleBaseCut  = 0.6
)

// Particle is a single fading dot of a burst
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64 // opacity in [0, 1]
	Decay  float64 // alpha lost per tick
	Color  color.RGBA
	Active bool
}

// Update moves the particle, fades it and slows it down
func (p *Particle) Update() {
	if !p.Active {
		return
	}
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= p.Decay

	p.VX *= particleDrag
	p.VY *= particleDrag

	if p.Alpha <= 0 {
		p.Alpha = 0
		p.Active = false
	}
}

// Burst is a short-lived explosion of particles
type Burst struct {
	Particles []Particle
}

// NewBurst creates n particles at x, y tinted from the base colour
func NewBurst(rng Rand, x, y float64, base color.RGBA, n int) Burst {
	b := Burst{Particles: make([]Particle, 0, n)}
	for i := 0; i < n; i++ {
		var clr color.RGBA
		switch r := rng.Float64(); {
		case r < particleWhiteCut:
			clr = colornames.White
		case r < particleBaseCut:
			clr = base
		default:
			clr = colornames.Red
		}

		angle := rng.Float64() * 2 * math.Pi
		speed := particleMinSpeed + rng.Float64()*particleSpeedSpan
		b.Particles = append(b.Particles, Particle{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Radius: particleMinRadius + rng.Float64()*particleRadiusSpan,
			Alpha:  1.0,
			Decay:  particleMinDecay + rng.Float64()*particleDecaySpan,
			Color:  clr,
			Active: true,
		})
	}
	return b
}

// Update advances every particle and drops the ones that have faded out
func (b *Burst) Update() {
	alive := b.Particles[:0]
	for i := range b.Particles {
		p := &b.Particles[i]
		p.Update()
		if p.Active {
			alive = append(alive, *p)
		}
	}
	b.Particles = alive
}

// Active reports whether any particle is still visible
func (b *Burst) Active() bool {
	return len(b.Particles) > 0
}
