package game

import "testing"

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"same centre", Circle{0, 0, 5}, Circle{0, 0, 1}, true},
		{"overlapping", Circle{0, 0, 5}, Circle{8, 0, 5}, true},
		{"touching", Circle{0, 0, 5}, Circle{10, 0, 5}, false},
		{"apart", Circle{0, 0, 5}, Circle{30, 40, 5}, false},
		{"diagonal", Circle{10, 10, 8}, Circle{20, 20, 8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, tt.b); got != tt.want {
				t.Fatalf("CirclesOverlap(a, b) = %v, want %v", got, tt.want)
			}
			if got := CirclesOverlap(tt.b, tt.a); got != tt.want {
				t.Fatalf("CirclesOverlap(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleRectOverlap(t *testing.T) {
	rect := Bounds{X: 100, Y: 100, Width: 20, Height: 40}

	tests := []struct {
		name string
		c    Circle
		want bool
	}{
		{"inside", Circle{110, 120, 2}, true},
		{"left edge", Circle{95, 120, 6}, true},
		{"left short", Circle{90, 120, 6}, false},
		{"corner near", Circle{97, 97, 5}, true},
		{"corner far", Circle{94, 94, 5}, false},
		{"below", Circle{110, 150, 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleRectOverlap(tt.c, rect); got != tt.want {
				t.Fatalf("CircleRectOverlap(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestCircleRectOverlapUsesCircleWhenPresent(t *testing.T) {
	// Rect corner misses, but the circumscribing circle reaches
	b := Bounds{
		X: 0, Y: 0, Width: 10, Height: 10,
		HasCircle: true,
		Circle:    Circle{X: 5, Y: 5, Radius: 10},
	}
	c := Circle{X: -4, Y: -4, Radius: 4}

	if !CircleRectOverlap(c, b) {
		t.Fatalf("expected circle approximation to report an overlap")
	}
	b.HasCircle = false
	if CircleRectOverlap(c, b) {
		t.Fatalf("expected plain rectangle test to miss")
	}
}
