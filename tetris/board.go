package tetris

import (
	"fmt"
	"math"
	"strings"

	"github.com/kamstrup/intmap"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Layout places the board in the pixel space of whatever draws it.
type Layout struct {
	X, Y     float64 // top-left corner
	CellSize float64
}

// Board is the playfield.
// Columns are 0 > width-1 left to right.
// Rows are 0 > height-1 top to bottom; pieces fall toward higher rows.
// A cell holds the Shape that covered it, or Empty.
type Board struct {
	Layout Layout

	width, height int
	cells         []Shape
}

func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Shape, width*height),
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) index(col, row int) (int, error) {
	if col < 0 || row < 0 || col >= b.width || row >= b.height {
		return 0, fmt.Errorf("cell (%d, %d) on a %dx%d board: %w", col, row, b.width, b.height, ErrOutOfBounds)
	}
	return row*b.width + col, nil
}

// Get returns the shape occupying the cell, Empty if free.
func (b *Board) Get(col, row int) (Shape, error) {
	i, err := b.index(col, row)
	if err != nil {
		return Empty, err
	}
	return b.cells[i], nil
}

// Set writes s into the cell and returns the previous occupant.
func (b *Board) Set(col, row int, s Shape) (Shape, error) {
	i, err := b.index(col, row)
	if err != nil {
		return Empty, err
	}
	old := b.cells[i]
	b.cells[i] = s
	return old, nil
}

// Placement is where a piece came to rest.
type Placement struct {
	Shape    Shape
	Rotation Rotation
	Column   int // after clamping
	Row      int // top row of the rotated matrix
	Matrix   Matrix
}

// Cells returns the board coordinates (col, row) covered by the placement.
func (p Placement) Cells() [][2]int {
	var out [][2]int
	for ir, r := range p.Matrix {
		for ic, c := range r {
			if c != 0 {
				out = append(out, [2]int{p.Column + ic, p.Row + ir})
			}
		}
	}
	return out
}

// Resolve computes where Put would leave the piece without touching the
// board.
//
// The rotated piece is pushed left until it fits the board's width, then
// dropped from the top row: it keeps falling while every filled cell
// lands on a free cell and rests on the last row that was clear.
//
// .	0 1 2 3 4 5 6 7 8 9		column 3, J Normal
// 16	. . . . . . . . . .
// 17	. . . O . . . . . .		<- rests on row 17
// 18	. . . O O O . . . .
// 19	. . . . . X . . . .		<- row 18 would collide here
func (b *Board) Resolve(column int, r Rotation, s Shape) (Placement, error) {
	if !s.Valid() {
		return Placement{}, fmt.Errorf("%w: %v", ErrUnknownShape, s)
	}
	if !r.Valid() {
		return Placement{}, fmt.Errorf("%w: %v", ErrInvalidRotation, r)
	}
	if column < 0 {
		return Placement{}, fmt.Errorf("column %d: %w", column, ErrOutOfBounds)
	}

	m := Rotate(s.Matrix(), r)
	if !m.wellFormed() {
		return Placement{}, fmt.Errorf("%w: malformed matrix for %v", ErrUnknownShape, s)
	}
	mw, mh := m.Width(), m.Height()
	if mw > b.width || mh > b.height {
		return Placement{}, fmt.Errorf("%v %v is %dx%d: %w", s, r, mw, mh, ErrPieceTooLarge)
	}
	if column > b.width-mw {
		column = b.width - mw
	}

	y := 0
	for ; y <= b.height-mh; y++ {
		if b.collides(m, column, y) {
			break
		}
	}
	y--
	if y < 0 {
		return Placement{}, fmt.Errorf("%v at column %d: %w", s, column, ErrBlockedOut)
	}

	return Placement{
		Shape:    s,
		Rotation: r,
		Column:   column,
		Row:      y,
		Matrix:   m,
	}, nil
}

// collides expects a matrix that already fits the board at (col, row).
func (b *Board) collides(m Matrix, col, row int) bool {
	for ir, r := range m {
		for ic, c := range r {
			if c != 0 && b.cells[(row+ir)*b.width+col+ic] != Empty {
				return true
			}
		}
	}
	return false
}

// Put drops the piece at column and commits its cells. On error the
// board is left untouched.
func (b *Board) Put(column int, r Rotation, s Shape) (Placement, error) {
	p, err := b.Resolve(column, r, s)
	if err != nil {
		return Placement{}, err
	}
	for _, c := range p.Cells() {
		b.cells[c[1]*b.width+c[0]] = s
	}
	return p, nil
}

func (b *Board) rowFull(row int) bool {
	for _, c := range b.cells[row*b.width : (row+1)*b.width] {
		if c == Empty {
			return false
		}
	}
	return true
}

// FullRows returns the complete rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for row := range b.height {
		if b.rowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearLines removes every full row, shifting the rows above each one
// down. Vacated rows at the top are emptied. It returns the number of
// rows removed.
func (b *Board) ClearLines() int {
	full := intmap.NewSet[int](b.height)
	for row := range b.height {
		if b.rowFull(row) {
			full.Add(row)
		}
	}
	if full.Len() == 0 {
		return 0
	}

	// walk up from the floor copying every surviving row to the lowest free slot.
	dst := b.height - 1
	for src := b.height - 1; src >= 0; src-- {
		if full.Has(src) {
			continue
		}
		if dst != src {
			copy(b.cells[dst*b.width:(dst+1)*b.width], b.cells[src*b.width:(src+1)*b.width])
		}
		dst--
	}
	clear(b.cells[:(dst+1)*b.width])

	return full.Len()
}

// CellAtPixel maps a point in the layout's pixel space to the cell
// containing it. A cell owns its left and top edges, so a point exactly
// on the board's origin maps to (0, 0); the right and bottom edges of the
// board are outside. Callers that treat the top-left edge as outside must
// reject it before calling.
func (b *Board) CellAtPixel(x, y float64) (col, row int, ok bool) {
	l := b.Layout
	if l.CellSize <= 0 {
		return 0, 0, false
	}
	if x < l.X || y < l.Y ||
		x >= l.X+float64(b.width)*l.CellSize ||
		y >= l.Y+float64(b.height)*l.CellSize {
		return 0, 0, false
	}
	col = int(math.Floor((x - l.X) / l.CellSize))
	row = int(math.Floor((y - l.Y) / l.CellSize))
	if col >= b.width || row >= b.height {
		return 0, 0, false
	}
	return col, row, true
}

// RestingRotationForRow applies RotationForRow with the board's height.
func (b *Board) RestingRotationForRow(row int) (Rotation, bool) {
	return RotationForRow(b.height, row)
}

// RotationForRow picks a rotation from how far the cursor row sits from
// the bottom edge of a board with the given height:
//
//	distance 4  OneEighty
//	distance 3  Clockwise
//	distance 2  Normal
//	distance 1  CounterClockwise
//
// Any other row selects nothing.
func RotationForRow(height, row int) (Rotation, bool) {
	switch height - row {
	case 4:
		return OneEighty, true
	case 3:
		return Clockwise, true
	case 2:
		return Normal, true
	case 1:
		return CounterClockwise, true
	}
	return Normal, false
}

// Occupied counts the non-empty cells.
func (b *Board) Occupied() int {
	var n int
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid indexed [row][col].
func (b *Board) Rows() [][]Shape {
	rows := make([][]Shape, b.height)
	for i := range rows {
		rows[i] = make([]Shape, b.width)
		copy(rows[i], b.cells[i*b.width:(i+1)*b.width])
	}
	return rows
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// String renders the grid with one character per cell, '.' for Empty.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for _, c := range b.cells[row*b.width : (row+1)*b.width] {
			if c == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
