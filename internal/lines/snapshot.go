package lines

// Snapshot captures the complete controller state for determinism testing
// and rendering.
type Snapshot struct {
	State   State
	Width   int
	Height  int
	Turn    int
	Cleared int
	Balls   []Placement // occupied cells, x outer and y inner

	Selected    Cell
	HasSelected bool

	Moving    Ball
	MovingTo  Cell
	HasMoving bool

	BallsToClear []Cell
	BallsToShoot []Placement
}

// Snapshot returns a copy of the controller state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:        c.state,
		Width:        c.board.Width(),
		Height:       c.board.Height(),
		Turn:         c.turn,
		Cleared:      c.cleared,
		Balls:        c.board.Balls(),
		Selected:     c.selected,
		HasSelected:  c.hasSelected,
		Moving:       c.moving,
		MovingTo:     c.movingTo,
		HasMoving:    c.hasMoving,
		BallsToClear: c.BallsToClear(),
		BallsToShoot: c.BallsToShoot(),
	}
}
