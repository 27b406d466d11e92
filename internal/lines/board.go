package lines

import (
	"fmt"
)

// Cell is a board coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Color is an index into the ball palette.
type Color uint8

// Palette colours in the order Palette hands them out.
const (
	Red Color = iota
	Green
	Blue
	Yellow
	Magenta
	Cyan
	Orange
	White
	Brown
)

// MaxColors is the number of distinct palette colours.
const MaxColors = 9

var colorNames = [MaxColors]string{
	"red", "green", "blue", "yellow", "magenta", "cyan", "orange", "white", "brown",
}

// String returns the colour name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Palette returns the first n colours, clamped to [1, MaxColors].
func Palette(n int) []Color {
	n = max(1, min(n, MaxColors))
	out := make([]Color, n)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Ball is an immutable coloured ball. Two balls of the same colour are
// interchangeable.
type Ball struct {
	Color Color
}

// NewBall returns a ball of the given colour.
func NewBall(c Color) Ball {
	return Ball{Color: c}
}

type slot struct {
	ball Ball
	full bool
}

// Board is a fixed-size grid holding at most one ball per cell.
// Storage is private; every accessor returns values.
type Board struct {
	width  int
	height int
	slots  []slot // row-major, index = y*width + x
}

// NewBoard creates an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("lines: %w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Board{
		width:  width,
		height: height,
		slots:  make([]slot, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// InBounds returns true if (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the ball at (x, y) and whether the cell is occupied.
func (b *Board) Get(x, y int) (Ball, bool, error) {
	if !b.InBounds(x, y) {
		return Ball{}, false, outOfRange("get", C(x, y))
	}
	s := b.slots[b.index(x, y)]
	return s.ball, s.full, nil
}

// Set places ball at (x, y), replacing whatever was there.
// Callers check occupancy first.
func (b *Board) Set(x, y int, ball Ball) error {
	if !b.InBounds(x, y) {
		return outOfRange("set", C(x, y))
	}
	b.slots[b.index(x, y)] = slot{ball: ball, full: true}
	return nil
}

// Clear empties the cell at (x, y).
func (b *Board) Clear(x, y int) error {
	if !b.InBounds(x, y) {
		return outOfRange("clear", C(x, y))
	}
	b.slots[b.index(x, y)] = slot{}
	return nil
}

// IsOccupied returns false for empty and out-of-bounds cells.
func (b *Board) IsOccupied(x, y int) bool {
	return b.InBounds(x, y) && b.slots[b.index(x, y)].full
}

// CanMoveTo reports whether a ball may be moved to (x, y): the cell is on
// the board and empty. Reachability through empty cells is not checked.
func (b *Board) CanMoveTo(x, y int) bool {
	return b.InBounds(x, y) && !b.slots[b.index(x, y)].full
}

// EmptyCells lists the empty cells with x as the outer loop and y as the
// inner one.
func (b *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, len(b.slots))
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if !b.slots[b.index(x, y)].full {
				cells = append(cells, C(x, y))
			}
		}
	}
	return cells
}

// IsFull returns true if no cell is empty.
func (b *Board) IsFull() bool {
	for _, s := range b.slots {
		if !s.full {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, s := range b.slots {
		if s.full {
			n++
		}
	}
	return n
}

// Balls lists every occupied cell with its ball, in EmptyCells order.
func (b *Board) Balls() []Placement {
	out := make([]Placement, 0, len(b.slots))
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if s := b.slots[b.index(x, y)]; s.full {
				out = append(out, Placement{Cell: C(x, y), Ball: s.ball})
			}
		}
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	slots := make([]slot, len(b.slots))
	copy(slots, b.slots)
	return &Board{
		width:  b.width,
		height: b.height,
		slots:  slots,
	}
}
