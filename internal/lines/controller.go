package lines

import (
	"slices"
)

// Options tune a Controller.
type Options struct {
	// MinRun is the qualifying run length. Zero means MinRunLength.
	MinRun int
}

// Controller sequences select → move → clear → spawn over a Board.
// It is the board's only writer. A command either applies completely or
// returns an error without touching any field.
//
// Controller is not safe for concurrent use.
type Controller struct {
	board   *Board
	spawner *Spawner
	minRun  int
	state   State

	selected    Cell
	hasSelected bool

	moving    Ball
	movingTo  Cell
	hasMoving bool
	toClear   []Cell
	toShoot   []Placement
	turn      int
	cleared   int
}

// NewController takes ownership of board. The caller must not mutate the
// board afterwards.
func NewController(board *Board, rng Rand, opts Options) *Controller {
	minRun := opts.MinRun
	if minRun < 1 {
		minRun = MinRunLength
	}
	c := &Controller{
		board:   board,
		spawner: NewSpawner(rng),
		minRun:  minRun,
		state:   WaitingForSelection,
	}
	if board.IsFull() {
		c.state = GameOver
	}
	return c
}

// State returns the current phase.
func (c *Controller) State() State {
	return c.state
}

// MinRun returns the qualifying run length in use.
func (c *Controller) MinRun() int {
	return c.minRun
}

// Width returns the board width.
func (c *Controller) Width() int {
	return c.board.Width()
}

// Height returns the board height.
func (c *Controller) Height() int {
	return c.board.Height()
}

// Board returns a copy of the board.
func (c *Controller) Board() *Board {
	return c.board.Clone()
}

// Ball returns the ball at (x, y), if any. Out-of-bounds cells are empty.
func (c *Controller) Ball(x, y int) (Ball, bool) {
	ball, ok, err := c.board.Get(x, y)
	if err != nil {
		return Ball{}, false
	}
	return ball, ok
}

// CanMoveTo reports whether the selected ball may be sent to (x, y).
func (c *Controller) CanMoveTo(x, y int) bool {
	return c.board.CanMoveTo(x, y)
}

// EmptyCells lists the empty cells of the board.
func (c *Controller) EmptyCells() []Cell {
	return c.board.EmptyCells()
}

// Selected returns the selected cell. Meaningful in BallSelected and
// BallMoving.
func (c *Controller) Selected() (Cell, bool) {
	return c.selected, c.hasSelected
}

// Moving returns the ball in transit and its destination. Meaningful in
// BallMoving.
func (c *Controller) Moving() (Ball, Cell, bool) {
	return c.moving, c.movingTo, c.hasMoving
}

// BallsToClear returns the cells matched by the last move, duplicates
// included. Meaningful in ClearLines.
func (c *Controller) BallsToClear() []Cell {
	return slices.Clone(c.toClear)
}

// BallsToShoot returns the spawn placements pending. Meaningful in
// ShootNewBalls.
func (c *Controller) BallsToShoot() []Placement {
	return slices.Clone(c.toShoot)
}

// Turn returns the number of completed moves.
func (c *Controller) Turn() int {
	return c.turn
}

// Cleared returns the number of balls removed by lines so far.
func (c *Controller) Cleared() int {
	return c.cleared
}

// Seed places the opening balls at random empty cells. It is only accepted
// before the first move.
func (c *Controller) Seed(balls []Ball) ([]Placement, error) {
	const op = "seed"
	if c.state != WaitingForSelection || c.turn > 0 || c.hasSelected {
		return nil, preconditionf(op, "state %s, turn %d", c.state, c.turn)
	}

	placed := c.spawner.ChooseSpawnPositions(c.board.EmptyCells(), balls)
	for _, p := range placed {
		//nolint:errcheck // cells come from EmptyCells
		c.board.Set(p.Cell.X, p.Cell.Y, p.Ball)
	}
	if c.board.IsFull() {
		c.state = GameOver
	}
	return slices.Clone(placed), nil
}

// SelectBall selects the ball at (x, y) and returns it. A ball may be
// re-selected while another one is selected.
//
// Out-of-bounds coordinates fail with KindOutOfRange and empty cells with
// KindInvalidSelection; both leave the state unchanged.
func (c *Controller) SelectBall(x, y int) (Ball, error) {
	const op = "select"
	if c.state != WaitingForSelection && c.state != BallSelected {
		return Ball{}, preconditionf(op, "state %s", c.state)
	}
	ball, ok, err := c.board.Get(x, y)
	if err != nil {
		return Ball{}, outOfRange(op, C(x, y))
	}
	if !ok {
		return Ball{}, &Error{Kind: KindInvalidSelection, Op: op, Cell: C(x, y), HasPos: true}
	}

	c.selected = C(x, y)
	c.hasSelected = true
	c.state = BallSelected
	return ball, nil
}

// StartMove lifts the selected ball and sends it towards (x, y).
// Only bounds and occupancy of the destination are checked.
func (c *Controller) StartMove(x, y int) error {
	const op = "start move"
	if c.state != BallSelected || !c.hasSelected {
		return preconditionf(op, "state %s", c.state)
	}
	ball, ok, err := c.board.Get(c.selected.X, c.selected.Y)
	if err != nil || !ok {
		return preconditionAt(op, c.selected, "selected cell is empty")
	}
	if !c.board.CanMoveTo(x, y) {
		return preconditionAt(op, C(x, y), "destination is occupied or off the board")
	}

	//nolint:errcheck // selected cell was just read
	c.board.Clear(c.selected.X, c.selected.Y)
	c.moving = ball
	c.movingTo = C(x, y)
	c.hasMoving = true
	c.state = BallMoving
	return nil
}

// EndMove lands the ball in transit and computes the cells to clear.
func (c *Controller) EndMove() error {
	const op = "end move"
	if c.state != BallMoving || !c.hasMoving {
		return preconditionf(op, "state %s", c.state)
	}

	dest := c.movingTo
	//nolint:errcheck // destination was bounds-checked by StartMove
	c.board.Set(dest.X, dest.Y, c.moving)

	c.moving = Ball{}
	c.movingTo = Cell{}
	c.hasMoving = false
	c.selected = Cell{}
	c.hasSelected = false

	c.toClear = MatchLines(c.board, dest, c.minRun)
	c.turn++
	c.state = ClearLines
	return nil
}

// ClearAndSpawn removes the matched balls and picks cells for newBalls.
// Pass no balls to skip spawning. If the board has no empty cell after
// clearing, nothing changes and a soft error is returned. A move always
// frees its source cell, so that branch is not reachable through
// StartMove and EndMove.
func (c *Controller) ClearAndSpawn(newBalls []Ball) error {
	const op = "clear and spawn"
	if c.state != ClearLines {
		return preconditionf(op, "state %s", c.state)
	}

	toClear := Unique(c.toClear)
	// Clearing any cell leaves room, so the board can only stay full when
	// there is nothing to clear.
	if len(toClear) == 0 && c.board.IsFull() {
		return preconditionf(op, "no empty cells")
	}

	for _, cell := range toClear {
		if c.board.IsOccupied(cell.X, cell.Y) {
			c.cleared++
		}
		//nolint:errcheck // matched cells are on the board
		c.board.Clear(cell.X, cell.Y)
	}
	c.toClear = nil

	c.toShoot = c.spawner.ChooseSpawnPositions(c.board.EmptyCells(), newBalls)
	c.state = ShootNewBalls
	return nil
}

// ApplyNewBallsAndAdvance drops the pending spawns onto the board. Lines
// formed by the new balls are not cleared. The game ends when the board is
// full.
func (c *Controller) ApplyNewBallsAndAdvance() error {
	const op = "apply new balls"
	if c.state != ShootNewBalls {
		return preconditionf(op, "state %s", c.state)
	}

	for _, p := range c.toShoot {
		//nolint:errcheck // placements come from EmptyCells
		c.board.Set(p.Cell.X, p.Cell.Y, p.Ball)
	}
	c.toShoot = nil

	if c.board.IsFull() {
		c.state = GameOver
		return nil
	}
	c.state = WaitingForSelection
	return nil
}
