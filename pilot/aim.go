package pilot

import "math"

// PredictiveAim returns where a moving target will be when a projectile fired
// from the shooter reaches it. Velocities and speed share the same time unit.
func PredictiveAim(shooterX, shooterY, targetX, targetY, targetVX, targetVY, projectileSpeed float64) (predictedX, predictedY float64) {
	dx := targetX - shooterX
	dy := targetY - shooterY

	if math.Abs(targetVX) < 0.01 && math.Abs(targetVY) < 0.01 {
		return targetX, targetY
	}

	distance := math.Hypot(dx, dy)
	if distance < 1.0 || projectileSpeed <= 0 {
		return targetX, targetY
	}

	// Solve |target + v*t - shooter| = speed*t by fixed point iteration,
	// starting from the time to reach the current position
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		px := targetX + targetVX*t
		py := targetY + targetVY*t

		d := math.Hypot(px-shooterX, py-shooterY)
		if d == 0 {
			break
		}
		next := d / projectileSpeed
		if math.Abs(next-t) < 0.001 {
			t = next
			break
		}
		t = next
	}

	return targetX + targetVX*t, targetY + targetVY*t
}

// steer converts a horizontal offset into left/right input with a dead zone
// to prevent jittering around the target
func steer(offset, deadZone float64) (left, right bool) {
	if math.Abs(offset) <= deadZone {
		return false, false
	}
	return offset < 0, offset > 0
}
