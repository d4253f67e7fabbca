package game

import (
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestBurstColourBuckets(t *testing.T) {
	// Each particle draws five values, so cycling three values gives
	// colour draws of 0.1, 0.9 and 0.5 in turn
	rng := &sequenceRand{values: []float64{0.1, 0.5, 0.9}}
	base := color.RGBA{0x12, 0x34, 0x56, 0xFF}

	b := NewBurst(rng, 10, 20, base, 3)
	if len(b.Particles) != 3 {
		t.Fatalf("particles = %d, want 3", len(b.Particles))
	}

	want := []color.RGBA{colornames.White, colornames.Red, base}
	for i, p := range b.Particles {
		if p.Color != want[i] {
			t.Fatalf("particle %d colour = %v, want %v", i, p.Color, want[i])
		}
		if p.X != 10 || p.Y != 20 || p.Alpha != 1 {
			t.Fatalf("particle %d starts at (%f, %f) alpha %f", i, p.X, p.Y, p.Alpha)
		}
	}
}

func TestBurstFadesOut(t *testing.T) {
	b := NewBurst(NewRand(9), 0, 0, colornames.Blue, 15)
	if !b.Active() {
		t.Fatalf("new burst inactive")
	}

	// Decay is at least 0.02 per tick
	for i := 0; i < 60; i++ {
		b.Update()
	}
	if b.Active() {
		t.Fatalf("burst still has %d particles after 60 ticks", len(b.Particles))
	}
}

func TestParticleSlowsDown(t *testing.T) {
	p := Particle{VX: 2, VY: -2, Alpha: 1, Decay: 0.01, Active: true}
	p.Update()
	if p.VX >= 2 || p.VY <= -2 {
		t.Fatalf("velocity after drag = (%f, %f)", p.VX, p.VY)
	}
	if p.X != 2 || p.Y != -2 {
		t.Fatalf("position = (%f, %f), want (2, -2)", p.X, p.Y)
	}
}
