package state

// GameState represents the level lifecycle state of a session
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StatePaused
	StateTransitioning
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateTransitioning:
		return "Transitioning"
	default:
		return "Unknown"
	}
}
