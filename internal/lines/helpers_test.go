package lines

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand returns queued values from Intn, then 0.
type scriptedRand struct {
	values []int
	next   int
}

var _ Rand = (*scriptedRand)(nil)

func (r *scriptedRand) Intn(n int) int {
	if r.next >= len(r.values) {
		return 0
	}
	v := r.values[r.next]
	r.next++
	return v
}

func newTestBoard(t *testing.T, w, h int) *Board {
	t.Helper()
	b, err := NewBoard(w, h)
	require.NoError(t, err)
	return b
}

func place(t *testing.T, b *Board, color Color, cells ...Cell) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, b.Set(c.X, c.Y, NewBall(color)))
	}
}

func row(y, fromX, toX int) []Cell {
	var cells []Cell
	for x := fromX; x <= toX; x++ {
		cells = append(cells, C(x, y))
	}
	return cells
}
