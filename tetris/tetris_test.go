package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(DefaultWidth, DefaultHeight)
	require.NoError(t, err, "unable to create board")
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("new board starts empty", func(t *testing.T) {
		b := newTestBoard(t)
		assert.Equal(t, 0, b.Occupied())
		assert.Equal(t, 10, b.Width())
		assert.Equal(t, 20, b.Height())
	})

	t.Run("non positive sizes are rejected", func(t *testing.T) {
		for _, size := range [][2]int{{0, 20}, {10, 0}, {-1, 5}} {
			_, err := NewBoard(size[0], size[1])
			assert.ErrorIs(t, err, ErrInvalidSize, "size %v", size)
		}
	})
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		wantErr  bool
	}{
		{name: "top left", col: 0, row: 0},
		{name: "bottom right", col: 9, row: 19},
		{name: "column past width", col: 10, row: 0, wantErr: true},
		{name: "row past height", col: 0, row: 20, wantErr: true},
		{name: "negative column", col: -1, row: 3, wantErr: true},
		{name: "negative row", col: 3, row: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBoard(t)
			_, getErr := b.Get(tt.col, tt.row)
			_, setErr := b.Set(tt.col, tt.row, T)
			for _, err := range []error{getErr, setErr} {
				if tt.wantErr {
					assert.ErrorIs(t, err, ErrOutOfBounds)
				} else {
					assert.NoError(t, err)
				}
			}
		})
	}

	t.Run("every cell in range is addressable", func(t *testing.T) {
		b := newTestBoard(t)
		for row := range b.Height() {
			for col := range b.Width() {
				_, err := b.Set(col, row, L)
				require.NoError(t, err, "set (%d, %d)", col, row)
				got, err := b.Get(col, row)
				require.NoError(t, err, "get (%d, %d)", col, row)
				require.Equal(t, L, got, "get (%d, %d)", col, row)
			}
		}
	})
}

func TestSetReturnsPrevious(t *testing.T) {
	b := newTestBoard(t)
	old, _ := b.Set(4, 7, S)
	assert.Equal(t, Empty, old)
	old, _ = b.Set(4, 7, Z)
	assert.Equal(t, S, old)
	old, _ = b.Set(4, 7, Empty)
	assert.Equal(t, Z, old)
}

func TestPut(t *testing.T) {
	tests := []struct {
		name        string
		shape       Shape
		rotation    Rotation
		column      int
		updateBoard func(b *Board)
		wantColumn  int
		wantRow     int
		wantCells   [][2]int
	}{
		{
			name: "O drops to the floor",
			// .	0 1
			// 18	O O
			// 19	O O
			shape:      O,
			column:     0,
			wantColumn: 0,
			wantRow:    18,
			wantCells:  [][2]int{{0, 18}, {1, 18}, {0, 19}, {1, 19}},
		},
		{
			name: "I is clamped to the right wall",
			// .	0 1 2 3 4 5 6 7 8 9
			// 19	X X X X X X O O O O
			shape:      I,
			column:     9,
			wantColumn: 6,
			wantRow:    19,
			wantCells:  [][2]int{{6, 19}, {7, 19}, {8, 19}, {9, 19}},
		},
		{
			name:       "vertical I is one column wide",
			shape:      I,
			rotation:   Clockwise,
			column:     9,
			wantColumn: 9,
			wantRow:    16,
			wantCells:  [][2]int{{9, 16}, {9, 17}, {9, 18}, {9, 19}},
		},
		{
			name: "J rests on the block below",
			// .	0 1 2 3 4 5 6 7 8 9
			// 17	. . . O . . . . . .
			// 18	. . . O O O . . . .
			// 19	. . . . . X . . . .
			shape:       J,
			column:      3,
			updateBoard: func(b *Board) { b.Set(5, 19, Z) }, //nolint:errcheck
			wantColumn:  3,
			wantRow:     17,
			wantCells:   [][2]int{{3, 17}, {3, 18}, {4, 18}, {5, 18}},
		},
		{
			name:        "T lands on a filled row",
			shape:       T,
			column:      4,
			updateBoard: func(b *Board) { FillRow(b, 19, J, 0) },
			wantColumn:  4,
			wantRow:     17,
			wantCells:   [][2]int{{5, 17}, {4, 18}, {5, 18}, {6, 18}},
		},
		{
			name: "piece stops above an overhang",
			// the drop is simulated from the top so the O can't reach the
			// free cells under the block at (1, 10).
			shape:       O,
			column:      0,
			updateBoard: func(b *Board) { b.Set(1, 10, S) }, //nolint:errcheck
			wantColumn:  0,
			wantRow:     8,
			wantCells:   [][2]int{{0, 8}, {1, 8}, {0, 9}, {1, 9}},
		},
		{
			name: "J counter-clockwise keeps its foot",
			// .	0 1
			// 17	X O
			// 18	X O
			// 19	O O
			shape:      J,
			rotation:   CounterClockwise,
			column:     0,
			wantColumn: 0,
			wantRow:    17,
			wantCells:  [][2]int{{1, 17}, {1, 18}, {0, 19}, {1, 19}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBoard(t)
			if tt.updateBoard != nil {
				tt.updateBoard(b)
			}
			before := b.Occupied()
			p, err := b.Put(tt.column, tt.rotation, tt.shape)
			require.NoError(t, err)
			assert.Equal(t, tt.wantColumn, p.Column, "column")
			assert.Equal(t, tt.wantRow, p.Row, "row")
			assert.Equal(t, tt.wantCells, p.Cells())
			for _, c := range tt.wantCells {
				got, _ := b.Get(c[0], c[1])
				assert.Equal(t, tt.shape, got, "cell %v", c)
			}
			assert.Equal(t, before+4, b.Occupied())
		})
	}
}

func TestPutFailuresLeaveBoardUntouched(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		shape    Shape
		rotation Rotation
		column   int
		wantErr  error
	}{
		{name: "empty shape", width: 10, shape: Empty, wantErr: ErrUnknownShape},
		{name: "unknown shape", width: 10, shape: Shape(42), wantErr: ErrUnknownShape},
		{name: "unknown rotation", width: 10, shape: T, rotation: Rotation(4), wantErr: ErrInvalidRotation},
		{name: "negative column", width: 10, shape: T, column: -1, wantErr: ErrOutOfBounds},
		{name: "wider than the board", width: 3, shape: I, wantErr: ErrPieceTooLarge},
		{name: "blocked on the top row", width: 10, shape: O, column: 0, wantErr: ErrBlockedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard(tt.width, 20)
			require.NoError(t, err)
			b.Set(1, 0, Z)  //nolint:errcheck
			b.Set(2, 15, Z) //nolint:errcheck
			want := b.String()

			_, err = b.Put(tt.column, tt.rotation, tt.shape)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, want, b.String(), "board was modified")
		})
	}
}

func TestResolveDoesNotCommit(t *testing.T) {
	b := newTestBoard(t)
	p, err := b.Resolve(2, OneEighty, L)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Column)
	assert.Equal(t, 18, p.Row)
	assert.Equal(t, 0, b.Occupied())
}

func TestClearLines(t *testing.T) {
	t.Run("single full row on an empty board", func(t *testing.T) {
		b := newTestBoard(t)
		FillRow(b, 19, I)
		assert.Equal(t, 1, b.ClearLines())
		assert.Equal(t, 0, b.Occupied(), "wanted empty board, got\n%s", b)
	})

	t.Run("partial rows are kept", func(t *testing.T) {
		b := newTestBoard(t)
		FillRow(b, 19, I, 4)
		want := b.String()
		assert.Equal(t, 0, b.ClearLines())
		assert.Equal(t, want, b.String())
	})

	t.Run("stacked full rows drop the rows above", func(t *testing.T) {
		// .	0 1 2 3 4 5 6 7 8 9
		// 16	T . . . . . . . . .
		// 17	O O O O O O O O O O
		// 18	O O O O O O O O O O
		// 19	O O O O O O O O O O
		b := newTestBoard(t)
		FillRow(b, 17, O)
		FillRow(b, 18, O)
		FillRow(b, 19, O)
		b.Set(0, 16, T) //nolint:errcheck

		assert.Equal(t, 3, b.ClearLines())
		want, _ := NewBoard(10, 20)
		want.Set(0, 19, T) //nolint:errcheck
		assert.Equal(t, want.Rows(), b.Rows())
		assert.Equal(t, 1, b.Occupied(), "the single non full cell survives")
	})

	t.Run("non adjacent rows", func(t *testing.T) {
		// .	0 1 2 3 4 5 6 7 8 9
		// 16	. . . . . S . . . .
		// 17	J J J J J J J J J J
		// 18	. . Z . . . . . . .
		// 19	L L L L L L L L L L
		b := newTestBoard(t)
		b.Set(5, 16, S) //nolint:errcheck
		FillRow(b, 17, J)
		b.Set(2, 18, Z) //nolint:errcheck
		FillRow(b, 19, L)

		assert.Equal(t, 2, b.ClearLines())
		want, _ := NewBoard(10, 20)
		want.Set(5, 18, S) //nolint:errcheck
		want.Set(2, 19, Z) //nolint:errcheck
		assert.Equal(t, want.Rows(), b.Rows())
	})

	t.Run("same result as clearing the lowest full row repeatedly", func(t *testing.T) {
		b := newTestBoard(t)
		for row := 5; row < 20; row++ {
			if row%3 == 0 {
				FillRow(b, row, T)
				continue
			}
			b.Set(row%10, row, S) //nolint:errcheck
		}
		want := newTestBoard(t)
		copy(want.cells, b.cells)
		for rows := want.FullRows(); len(rows) > 0; rows = want.FullRows() {
			removeRow(want, rows[len(rows)-1])
		}

		b.ClearLines()
		assert.Equal(t, want.Rows(), b.Rows())
	})

	t.Run("full top row is replaced by an empty one", func(t *testing.T) {
		b := newTestBoard(t)
		FillRow(b, 0, Z)
		b.Set(3, 1, I) //nolint:errcheck
		assert.Equal(t, 1, b.ClearLines())
		got, _ := b.Get(3, 1)
		assert.Equal(t, I, got, "I stays at (3, 1)")
		assert.Equal(t, 1, b.Occupied())
	})
}

// removeRow deletes a single row by shifting everything above it down.
func removeRow(b *Board, row int) {
	for r := row; r > 0; r-- {
		for c := range b.Width() {
			v, _ := b.Get(c, r-1)
			b.Set(c, r, v) //nolint:errcheck
		}
	}
	for c := range b.Width() {
		b.Set(c, 0, Empty) //nolint:errcheck
	}
}

func TestCellAtPixel(t *testing.T) {
	tests := []struct {
		name           string
		layout         Layout
		x, y           float64
		wantCol, wantR int
		wantOK         bool
	}{
		{name: "origin", layout: Layout{X: 10, Y: 20, CellSize: 8}, x: 10, y: 20, wantOK: true},
		{name: "top edge belongs to the row below it", layout: Layout{X: 10, Y: 20, CellSize: 8}, x: 30, y: 28, wantCol: 2, wantR: 1, wantOK: true},
		{name: "left edge belongs to the column right of it", layout: Layout{X: 10, Y: 20, CellSize: 8}, x: 18, y: 30, wantCol: 1, wantR: 1, wantOK: true},
		{name: "middle", layout: Layout{X: 10, Y: 20, CellSize: 8}, x: 50, y: 100, wantCol: 5, wantR: 10, wantOK: true},
		{name: "last cell", layout: Layout{X: 10, Y: 20, CellSize: 8}, x: 89.9, y: 179.9, wantCol: 9, wantR: 19, wantOK: true},
		{name: "left of the board", layout: Layout{X: 10, Y: 20, CellSize: 8}, x: 9.9, y: 30},
		{name: "above the board", layout: Layout{X: 10, Y: 20, CellSize: 8}, x: 30, y: 19},
		{name: "right edge", layout: Layout{X: 10, Y: 20, CellSize: 8}, x: 90, y: 30},
		{name: "bottom edge", layout: Layout{X: 10, Y: 20, CellSize: 8}, x: 30, y: 180},
		{name: "no cell size", layout: Layout{}, x: 1, y: 1},
		{name: "fractional cell size", layout: Layout{CellSize: 8.5}, x: 84.9, y: 169.9, wantCol: 9, wantR: 19, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBoard(t)
			b.Layout = tt.layout
			col, row, ok := b.CellAtPixel(tt.x, tt.y)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCol, col, "column")
			assert.Equal(t, tt.wantR, row, "row")
		})
	}
}

func TestRotationForRow(t *testing.T) {
	tests := []struct {
		row    int
		want   Rotation
		wantOK bool
	}{
		{row: 15},
		{row: 16, want: OneEighty, wantOK: true},
		{row: 17, want: Clockwise, wantOK: true},
		{row: 18, want: Normal, wantOK: true},
		{row: 19, want: CounterClockwise, wantOK: true},
		{row: 20},
		{row: 0},
	}
	b := newTestBoard(t)
	for _, tt := range tests {
		got, ok := b.RestingRotationForRow(tt.row)
		assert.Equal(t, tt.wantOK, ok, "row %d", tt.row)
		assert.Equal(t, tt.want, got, "row %d", tt.row)
	}

	r, ok := RotationForRow(8, 4)
	assert.True(t, ok)
	assert.Equal(t, OneEighty, r, "8 row board")
}

func TestBoardString(t *testing.T) {
	b, _ := NewBoard(3, 2)
	b.Set(0, 1, I) //nolint:errcheck
	b.Set(2, 1, T) //nolint:errcheck
	assert.Equal(t, "...\nI.T\n", b.String())
}
