package game

// State is a phase of the game state machine
type State int

const (
	StateOpening State = iota
	StateReady
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the display name of the state
func (s State) String() string {
	switch s {
	case StateOpening:
		return "Opening"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Simulating reports whether Update advances anything in this state
func (s State) Simulating() bool {
	return s == StateOpening || s == StatePlaying
}
