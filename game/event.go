package game

// EventType identifies something that happened during a tick
type EventType int

const (
	EventShot EventType = iota
	EventHazardDestroyed
	EventHazardEscaped
	EventPlayerHit
	EventShieldBroken
	EventBuffCollected
	EventStateChanged
)

// Event is a notification for the sound and logging collaborators
type Event struct {
	Type EventType
	X, Y float64

	// Set depending on Type
	Hazard HazardKind
	Buff   BuffKind
	From   State
	To     State
}

func (t EventType) String() string {
	switch t {
	case EventShot:
		return "shot"
	case EventHazardDestroyed:
		return "hazard_destroyed"
	case EventHazardEscaped:
		return "hazard_escaped"
	case EventPlayerHit:
		return "player_hit"
	case EventShieldBroken:
		return "shield_broken"
	case EventBuffCollected:
		return "buff_collected"
	case EventStateChanged:
		return "state_changed"
	default:
		return "unknown"
	}
}
