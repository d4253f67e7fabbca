package pilot

import (
	"math"

	"oceandefender/game"
)

const (
	// Pixels either side of the aim point where the dolphin stops moving
	autopilotDeadZone = 4.0

	// Extra slack on top of the hazard half width when deciding to fire
	autopilotFireSlack = 4.0
)

// Autopilot hunts the lowest hazard still above the dolphin and drifts toward
// buffs when the sea is clear.
type Autopilot struct {
	DeadZone float64
}

// NewAutopilot creates an autopilot with the default dead zone
func NewAutopilot() *Autopilot {
	return &Autopilot{DeadZone: autopilotDeadZone}
}

// Decide implements Pilot
func (a *Autopilot) Decide(s *game.Session) Decision {
	p := s.Player()
	if p == nil || !p.Alive || s.State() != game.StatePlaying {
		return Decision{}
	}

	if target, ok := lowestHazardAbove(s.Hazards(), p.NoseY()); ok {
		return a.attack(s, p, target)
	}
	if buff, ok := nearestBuff(s.Buffs(), p.X); ok {
		left, right := steer(buff.X-p.X, a.DeadZone)
		return Decision{Left: left, Right: right}
	}
	return Decision{}
}

func (a *Autopilot) attack(s *game.Session, p *game.Player, h game.Hazard) Decision {
	aimX, _ := PredictiveAim(
		p.NoseX(), p.NoseY(),
		h.X, h.Y,
		0, h.Speed*s.SpeedMultiplier(),
		game.ProjectileSpeed,
	)

	// Line the nose up with the aim point, keeping the current facing
	left, right := steer(aimX-p.NoseX(), a.DeadZone)
	aligned := math.Abs(aimX-p.NoseX()) < h.Width/2+autopilotFireSlack

	return Decision{
		Left:  left,
		Right: right,
		Shoot: aligned && p.CanShoot(),
	}
}

// lowestHazardAbove returns the active hazard closest to the bottom whose
// centre is still above y
func lowestHazardAbove(hazards []game.Hazard, y float64) (game.Hazard, bool) {
	var (
		best  game.Hazard
		found bool
	)
	for _, h := range hazards {
		if !h.Active || h.Y >= y {
			continue
		}
		if !found || h.Y > best.Y {
			best = h
			found = true
		}
	}
	return best, found
}

func nearestBuff(buffs []game.Buff, x float64) (game.Buff, bool) {
	var (
		best  game.Buff
		found bool
	)
	for _, b := range buffs {
		if !b.Active {
			continue
		}
		if !found || math.Abs(b.X-x) < math.Abs(best.X-x) {
			best = b
			found = true
		}
	}
	return best, found
}
