package game

import "math"

// Circle is a collision circle centred on X, Y
type Circle struct {
	X, Y   float64
	Radius float64
}

// Bounds is an axis-aligned rectangle with an optional circumscribing circle.
// When HasCircle is set, overlap tests use the circle instead of the rectangle.
type Bounds struct {
	// Top-left corner and size
	X, Y          float64
	Width, Height float64

	// Circumscribing circle
	HasCircle bool
	Circle    Circle
}

// CirclesOverlap reports whether the distance between centres is less than the sum of radii
func CirclesOverlap(a, b Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Hypot(dx, dy) < a.Radius+b.Radius
}

// CircleRectOverlap tests a circle against a rectangle. Bounds that expose a
// circumscribing circle are tested circle to circle; otherwise the circle
// centre is clamped to the rectangle and the closest point is compared
// against the radius.
func CircleRectOverlap(c Circle, r Bounds) bool {
	if r.HasCircle {
		return CirclesOverlap(c, r.Circle)
	}

	closestX := math.Max(r.X, math.Min(c.X, r.X+r.Width))
	closestY := math.Max(r.Y, math.Min(c.Y, r.Y+r.Height))
	return math.Hypot(c.X-closestX, c.Y-closestY) < c.Radius
}

// clamp restricts v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
