// Package lines implements the rule engine of a Color Lines puzzle: a fixed
// grid of coloured balls, a move state machine, the five-in-a-row matcher and
// the random spawner.
//
// The package is pure and deterministic given its random source. It has no
// knowledge of rendering, input devices or persistence, and a Controller must
// be driven from a single goroutine.
package lines

// State is the phase of a Controller.
type State int

const (
	WaitingForSelection State = iota
	BallSelected
	BallMoving
	ClearLines
	ShootNewBalls
	GameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case WaitingForSelection:
		return "WaitingForSelection"
	case BallSelected:
		return "BallSelected"
	case BallMoving:
		return "BallMoving"
	case ClearLines:
		return "ClearLines"
	case ShootNewBalls:
		return "ShootNewBalls"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transitions are accepted.
func (s State) Terminal() bool {
	return s == GameOver
}
