package screen

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowHitboxes bool // Outline collision circles and hazard rectangles
	ShowFPS      bool
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
