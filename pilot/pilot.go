// Package pilot drives a session without a human at the keyboard, either with
// a built-in autopilot or with a user supplied JavaScript decide function.
package pilot

import "oceandefender/game"

// Decision is the input a pilot wants applied for the next tick
type Decision struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Shoot bool `json:"shoot"`
}

// Pilot decides the player's input from the current session state
type Pilot interface {
	Decide(s *game.Session) Decision
}

// Apply forwards a decision to the session the same way the keyboard does
func Apply(s *game.Session, d Decision) {
	s.SetMoveIntent(d.Left, d.Right)
	if d.Shoot {
		s.Shoot()
	}
}
