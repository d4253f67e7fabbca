package game

import (
	"math"
	"testing"
)

func TestHazardFallsMonotonically(t *testing.T) {
	rng := NewRand(7)
	for _, kind := range []HazardKind{HazardKindBottle, HazardKindCan} {
		kc := GetHazardKindConfig(kind)
		h := NewHazard(rng, 800, kind)

		if h.Speed < kc.MinSpeed || h.Speed >= kc.MinSpeed+kc.SpeedSpan {
			t.Fatalf("%v speed = %f, want [%f, %f)", kind, h.Speed, kc.MinSpeed, kc.MinSpeed+kc.SpeedSpan)
		}
		if h.Y != hazardSpawnY {
			t.Fatalf("%v spawn y = %f, want %f", kind, h.Y, hazardSpawnY)
		}

		prev := h.Y
		for i := 0; i < 100; i++ {
			h.Update(0.5)
			if h.Y <= prev {
				t.Fatalf("%v y did not increase at tick %d: %f -> %f", kind, i, prev, h.Y)
			}
			prev = h.Y
		}
	}
}

func TestHazardSpeedMultiplier(t *testing.T) {
	h := NewHazard(NewRand(3), 800, HazardKindCan)
	start := h.Y
	h.Update(2)
	if got, want := h.Y-start, h.Speed*2; math.Abs(got-want) > 1e-9 {
		t.Fatalf("fall distance = %f, want %f", got, want)
	}
}

func TestHazardOffScreen(t *testing.T) {
	h := NewHazard(NewRand(3), 800, HazardKindBottle)
	h.Y = 600 + h.Height/2
	if h.OffScreen(600) {
		t.Fatalf("hazard touching the bottom edge reported off screen")
	}
	h.Y += 0.1
	if !h.OffScreen(600) {
		t.Fatalf("hazard past the bottom edge not reported off screen")
	}
}

func TestProjectileLeavesTop(t *testing.T) {
	p := NewProjectile(100, 10)
	for i := 0; i < 4; i++ {
		p.Update()
		if !p.Active {
			t.Fatalf("bubble deactivated early at y=%f", p.Y)
		}
	}
	p.Update()
	if p.Active {
		t.Fatalf("bubble at y=%f still active", p.Y)
	}
}

func TestRandomHazardKindWeight(t *testing.T) {
	rng := NewRand(42)
	const n = 10000

	bottles := 0
	for i := 0; i < n; i++ {
		if RandomHazardKind(rng, 0.7) == HazardKindBottle {
			bottles++
		}
	}
	if frac := float64(bottles) / n; frac < 0.67 || frac > 0.73 {
		t.Fatalf("bottle fraction = %f, want about 0.7", frac)
	}
}

func TestRandomBuffKindUniform(t *testing.T) {
	rng := NewRand(42)
	const n = 10000

	shields := 0
	for i := 0; i < n; i++ {
		if RandomBuffKind(rng) == BuffKindShield {
			shields++
		}
	}
	if frac := float64(shields) / n; frac < 0.47 || frac > 0.53 {
		t.Fatalf("shield fraction = %f, want about 0.5", frac)
	}
}

func TestBuffFallsAndLeaves(t *testing.T) {
	b := NewBuff(NewRand(5), 800, BuffKindShield)
	if b.Color != GetBuffKindConfig(BuffKindShield).Color {
		t.Fatalf("buff colour = %v, want shield colour", b.Color)
	}

	ticks := 0
	for !b.OffScreen(600) {
		b.Update(1)
		ticks++
		if ticks > 1000 {
			t.Fatalf("buff never left the screen, y=%f", b.Y)
		}
	}
	if b.Y-b.Radius <= 600 {
		t.Fatalf("off screen with y=%f", b.Y)
	}
}
