package colorlines

import "github.com/vovakirdan/tui-lines/internal/lines"

// Snapshot contains the complete game state for replays and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	State      string
	Turn       int
	Score      int
	CursorX    int
	CursorY    int
	PhaseTicks int
	Paused     bool
	GameOver   bool

	Width  int
	Height int

	// Board cells, row-major: -1 for empty, otherwise the colour index
	Cells []int

	// Pending cells: 2 ints per cleared cell (X, Y), 3 per spawn (X, Y, Color)
	ClearData []int
	SpawnData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	es := g.ctrl.Snapshot()

	cells := make([]int, es.Width*es.Height)
	for i := range cells {
		cells[i] = -1
	}
	for _, p := range es.Balls {
		cells[p.Cell.Y*es.Width+p.Cell.X] = int(p.Ball.Color)
	}
	if es.HasMoving {
		cells[es.MovingTo.Y*es.Width+es.MovingTo.X] = int(es.Moving.Color)
	}

	clearData := make([]int, 0, len(es.BallsToClear)*2)
	for _, c := range lines.Unique(es.BallsToClear) {
		clearData = append(clearData, c.X, c.Y)
	}
	spawnData := make([]int, 0, len(es.BallsToShoot)*3)
	for _, p := range es.BallsToShoot {
		spawnData = append(spawnData, p.Cell.X, p.Cell.Y, int(p.Ball.Color))
	}

	return Snapshot{
		Tick:       g.tick,
		State:      es.State.String(),
		Turn:       es.Turn,
		Score:      es.Cleared,
		CursorX:    g.cursor.X,
		CursorY:    g.cursor.Y,
		PhaseTicks: g.phaseTicks,
		Paused:     g.paused,
		GameOver:   g.gameOver,
		Width:      es.Width,
		Height:     es.Height,
		Cells:      cells,
		ClearData:  clearData,
		SpawnData:  spawnData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Turn)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PhaseTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Width)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Height)     //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.GameOver {
		h = h*31 + 2
	}

	for _, v := range snap.Cells {
		h = h*31 + uint64(v+1) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ClearData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.SpawnData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
