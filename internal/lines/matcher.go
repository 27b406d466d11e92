package lines

// MinRunLength is the default number of same-coloured balls in a row that
// clears the row.
const MinRunLength = 5

// Axis is one of the four line directions through a cell. A run is scanned
// along (-DX,-DY) and (DX,DY).
type Axis struct {
	DX, DY int
	Name   string
}

// Axes in evaluation order: horizontal, vertical, the ↘ diagonal and the ↙
// diagonal.
var Axes = [4]Axis{
	{DX: 1, DY: 0, Name: "horizontal"},
	{DX: 0, DY: 1, Name: "vertical"},
	{DX: 1, DY: 1, Name: "diagonal down-right"},
	{DX: 1, DY: -1, Name: "diagonal up-right"},
}

// Run is the maximal stretch of same-coloured balls through a pivot cell
// along one axis. Low and High are the number of steps from the pivot in
// the negative and positive direction.
type Run struct {
	Axis  Axis
	Pivot Cell
	Low   int
	High  int
}

// Len returns the number of cells in the run, pivot included.
func (r Run) Len() int {
	return r.Low + r.High + 1
}

// Cells lists the run from its low end to its high end.
func (r Run) Cells() []Cell {
	cells := make([]Cell, 0, r.Len())
	for i := -r.Low; i <= r.High; i++ {
		cells = append(cells, C(r.Pivot.X+i*r.Axis.DX, r.Pivot.Y+i*r.Axis.DY))
	}
	return cells
}

// RunAt measures the run through at along axis. The colour is taken from the
// ball at at; an empty or out-of-bounds pivot yields a zero-length run.
func RunAt(b *Board, at Cell, axis Axis) (Run, bool) {
	ball, ok, err := b.Get(at.X, at.Y)
	if err != nil || !ok {
		return Run{}, false
	}
	return Run{
		Axis:  axis,
		Pivot: at,
		Low:   b.extent(at, -axis.DX, -axis.DY, ball.Color),
		High:  b.extent(at, axis.DX, axis.DY, ball.Color),
	}, true
}

// extent counts steps from start in direction (dx, dy) while the next cell
// is on the board, occupied and of the given colour.
func (b *Board) extent(start Cell, dx, dy int, color Color) int {
	steps := 0
	x, y := start.X+dx, start.Y+dy
	for b.InBounds(x, y) {
		s := b.slots[b.index(x, y)]
		if !s.full || s.ball.Color != color {
			break
		}
		steps++
		x += dx
		y += dy
	}
	return steps
}

// MatchLines returns the cells to clear after a ball landed at at.
// Every axis whose run holds at least minRun cells contributes all of its
// cells. Axes are evaluated independently, so the pivot and any crossing
// cell appear once per qualifying axis; use Unique before clearing.
// A minRun below 1 falls back to MinRunLength.
func MatchLines(b *Board, at Cell, minRun int) []Cell {
	if minRun < 1 {
		minRun = MinRunLength
	}

	var result []Cell
	for _, axis := range Axes {
		run, ok := RunAt(b, at, axis)
		if !ok {
			return nil
		}
		if run.Len() < minRun {
			continue
		}
		for _, c := range run.Cells() {
			if b.IsOccupied(c.X, c.Y) {
				result = append(result, c)
			}
		}
	}
	return result
}

// Unique drops repeated cells, keeping the first occurrence order.
func Unique(cells []Cell) []Cell {
	if len(cells) == 0 {
		return nil
	}
	seen := make(map[Cell]struct{}, len(cells))
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
