package component

// GameState is the scene the game is currently in.
type GameState int

const (
	StateBoot GameState = iota
	StateSplash
	StateGame
)

func (s GameState) String() string {
	switch s {
	case StateBoot:
		return "boot"
	case StateSplash:
		return "splash"
	case StateGame:
		return "game"
	default:
		return "unknown"
	}
}

// GameStateRuntime is the singleton driving scene flow.
type GameStateRuntime struct {
	Current GameState
	// Frames counts ticks spent in Current.
	Frames int
	// Ready records groups that reported loaded at least once.
	Ready map[AssetGroup]bool
	// Requested records groups whose load request was already sent.
	Requested map[AssetGroup]bool
}

// StateChangedEvent is sent on every scene change.
type StateChangedEvent struct {
	From GameState
	To   GameState
}

var GameStateComponent = NewComponent[GameStateRuntime]()
