package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLinesHorizontalRunLength(t *testing.T) {
	for length := 1; length <= 9; length++ {
		b := newTestBoard(t, 9, 9)
		cells := row(4, 0, length-1)
		place(t, b, Red, cells...)

		got := MatchLines(b, cells[len(cells)-1], MinRunLength)
		if length >= MinRunLength {
			assert.Equal(t, cells, got, "run of %d", length)
		} else {
			assert.Empty(t, got, "run of %d", length)
		}
	}
}

func TestMatchLinesAxes(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		pivot Cell
	}{
		{
			name:  "vertical",
			cells: []Cell{C(3, 2), C(3, 3), C(3, 4), C(3, 5), C(3, 6)},
			pivot: C(3, 6),
		},
		{
			name:  "diagonal down-right",
			cells: []Cell{C(0, 0), C(1, 1), C(2, 2), C(3, 3), C(4, 4)},
			pivot: C(4, 4),
		},
		{
			name:  "diagonal up-right, pivot in the middle",
			cells: []Cell{C(0, 4), C(1, 3), C(2, 2), C(3, 1), C(4, 0)},
			pivot: C(2, 2),
		},
		{
			name:  "run touching the far edge",
			cells: row(8, 4, 8),
			pivot: C(4, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, 9, 9)
			place(t, b, Blue, tt.cells...)

			assert.Equal(t, tt.cells, MatchLines(b, tt.pivot, MinRunLength))
		})
	}
}

func TestMatchLinesStopsAtOtherColors(t *testing.T) {
	b := newTestBoard(t, 9, 9)
	place(t, b, Red, row(0, 0, 3)...)
	place(t, b, Green, C(4, 0))
	place(t, b, Red, C(5, 0), C(6, 0))

	assert.Empty(t, MatchLines(b, C(3, 0), MinRunLength))
	assert.Empty(t, MatchLines(b, C(5, 0), MinRunLength))
}

func TestMatchLinesStopsAtGaps(t *testing.T) {
	b := newTestBoard(t, 9, 9)
	place(t, b, Red, C(0, 0), C(1, 0), C(3, 0), C(4, 0), C(5, 0))

	assert.Empty(t, MatchLines(b, C(1, 0), MinRunLength))
	assert.Empty(t, MatchLines(b, C(3, 0), MinRunLength))
}

func TestMatchLinesCrossingRunsKeepDuplicates(t *testing.T) {
	b := newTestBoard(t, 9, 9)
	horizontal := row(4, 2, 6)
	vertical := []Cell{C(4, 2), C(4, 3), C(4, 4), C(4, 5), C(4, 6)}
	place(t, b, Cyan, horizontal...)
	place(t, b, Cyan, vertical...)

	got := MatchLines(b, C(4, 4), MinRunLength)
	assert.Equal(t, append(horizontal, vertical...), got)
	assert.Len(t, Unique(got), 9)
}

func TestMatchLinesCustomThreshold(t *testing.T) {
	b := newTestBoard(t, 7, 7)
	place(t, b, Orange, row(0, 0, 3)...)

	assert.Len(t, MatchLines(b, C(3, 0), 4), 4)
	assert.Empty(t, MatchLines(b, C(3, 0), 5))
	// non-positive threshold falls back to the default
	assert.Empty(t, MatchLines(b, C(3, 0), 0))
}

func TestMatchLinesEmptyPivot(t *testing.T) {
	b := newTestBoard(t, 9, 9)
	place(t, b, Red, row(0, 0, 4)...)

	assert.Nil(t, MatchLines(b, C(5, 5), MinRunLength))
	assert.Nil(t, MatchLines(b, C(-1, 0), MinRunLength))
}

func TestRunAt(t *testing.T) {
	b := newTestBoard(t, 9, 9)
	place(t, b, White, row(2, 1, 6)...)

	run, ok := RunAt(b, C(3, 2), Axes[0])
	assert.True(t, ok)
	assert.Equal(t, 2, run.Low)
	assert.Equal(t, 3, run.High)
	assert.Equal(t, 6, run.Len())
	assert.Equal(t, row(2, 1, 6), run.Cells())

	run, ok = RunAt(b, C(3, 2), Axes[1])
	assert.True(t, ok)
	assert.Equal(t, 1, run.Len())
}

func TestUnique(t *testing.T) {
	assert.Nil(t, Unique(nil))
	assert.Equal(t,
		[]Cell{C(1, 1), C(0, 0), C(2, 2)},
		Unique([]Cell{C(1, 1), C(0, 0), C(1, 1), C(2, 2), C(0, 0)}),
	)
}
