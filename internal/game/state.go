package game

// State is the turn controller's explicit state enum.
type State int

const (
	StateMenu State = iota
	StateAiming
	StateLaunching
	StateAnimating
	StateGameOver
	StatePaused
	StateSettings
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateAiming:
		return "aiming"
	case StateLaunching:
		return "launching"
	case StateAnimating:
		return "animating"
	case StateGameOver:
		return "gameOver"
	case StatePaused:
		return "paused"
	case StateSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Event drives the main-flow transitions. Modal overlays (paused, settings)
// are not events here; they push onto the controller's overlay stack so
// nested entry (pause then settings) returns through both levels.
type Event int

const (
	EventStart      Event = iota // menu: begin a new game
	EventAimRelease              // aiming: valid aim released
	EventLaunched                // launching: balls instantiated
	EventTurnEnded               // animating: all balls returned, game continues
	EventGameOver                // animating: a brick reached the bottom row
	EventRestart                 // gameOver: back to the menu
)

// Transition returns the next state for the main flow, and whether the
// event is legal in the current state.
func Transition(s State, e Event) (State, bool) {
	switch s {
	case StateMenu:
		if e == EventStart {
			return StateAiming, true
		}
	case StateAiming:
		if e == EventAimRelease {
			return StateLaunching, true
		}
	case StateLaunching:
		if e == EventLaunched {
			return StateAnimating, true
		}
	case StateAnimating:
		switch e {
		case EventTurnEnded:
			return StateAiming, true
		case EventGameOver:
			return StateGameOver, true
		}
	case StateGameOver:
		if e == EventRestart {
			return StateMenu, true
		}
	}
	return s, false
}

// overlayDepthLimit bounds the modal stack: pause may nest settings, and
// nothing nests deeper.
const overlayDepthLimit = 2

// canHostOverlay reports whether a modal overlay may open on top of s.
func canHostOverlay(s State) bool {
	switch s {
	case StateMenu, StateAiming, StateAnimating, StatePaused:
		return true
	default:
		return false
	}
}
