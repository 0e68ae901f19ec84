package tetris

import (
	"fmt"
	"image/color"
)

// Shape is the kind of a tetromino. The zero value Empty marks a free cell.
type Shape uint8

const (
	Empty Shape = iota
	I
	J
	L
	O
	S
	T
	Z
)

// BagSize is the number of distinct tetromino kinds.
const BagSize = 7

var shapeNames = [...]string{
	Empty: "",
	I:     "I",
	J:     "J",
	L:     "L",
	O:     "O",
	S:     "S",
	T:     "T",
	Z:     "Z",
}

// Shapes returns the seven tetromino kinds in catalog order.
func Shapes() []Shape {
	return []Shape{I, J, L, O, S, T, Z}
}

// Valid reports whether s is one of the seven tetromino kinds.
func (s Shape) Valid() bool { return s >= I && s <= Z }

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ParseShape is the inverse of String. The empty string parses as Empty.
func ParseShape(v string) (Shape, error) {
	for i, n := range shapeNames {
		if n == v {
			return Shape(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownShape, v)
}

/*
The matrices below are the Normal rotation of every tetromino. Rows go
top to bottom, columns left to right.

.	I			J		L		O		S		T		Z

.	0 1 2 3		0 1 2	0 1 2	0 1		0 1 2	0 1 2	0 1 2

0	O O O O		O X X	X X O	O O		X O O	X O X	O O X

1				O O O	O O O	O O		O O X	O O O	X O O
*/
var matrices = [...]Matrix{
	I: {
		{1, 1, 1, 1},
	},
	J: {
		{1, 0, 0},
		{1, 1, 1},
	},
	L: {
		{0, 0, 1},
		{1, 1, 1},
	},
	O: {
		{1, 1},
		{1, 1},
	},
	S: {
		{0, 1, 1},
		{1, 1, 0},
	},
	T: {
		{0, 1, 0},
		{1, 1, 1},
	},
	Z: {
		{1, 1, 0},
		{0, 1, 1},
	},
}

var colors = [...]color.RGBA{
	I: {R: 65, G: 175, B: 222, A: 255},
	J: {R: 25, G: 131, B: 191, A: 255},
	L: {R: 239, G: 149, B: 53, A: 255},
	O: {R: 247, G: 211, B: 62, A: 255},
	S: {R: 102, G: 198, B: 92, A: 255},
	T: {R: 180, G: 81, B: 172, A: 255},
	Z: {R: 239, G: 98, B: 77, A: 255},
}

// Matrix returns a copy of the shape's cells in the Normal rotation.
// Empty and unknown shapes have no cells.
func (s Shape) Matrix() Matrix {
	if !s.Valid() {
		return nil
	}
	return matrices[s].Clone()
}

// Color returns the display color of the shape. Empty is transparent.
func (s Shape) Color() color.RGBA {
	if !s.Valid() {
		return color.RGBA{}
	}
	return colors[s]
}

// Matrix is a rows x columns grid of 0/1 flags describing the cells a
// piece occupies relative to its top-left corner.
type Matrix [][]uint8

func (m Matrix) Height() int { return len(m) }

func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Cells counts the filled cells.
func (m Matrix) Cells() int {
	var n int
	for _, r := range m {
		for _, c := range r {
			if c != 0 {
				n++
			}
		}
	}
	return n
}

func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]uint8, len(m[i]))
		copy(out[i], m[i])
	}
	return out
}

func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// wellFormed reports whether every row has the same non-zero width.
func (m Matrix) wellFormed() bool {
	if len(m) == 0 || len(m[0]) == 0 {
		return false
	}
	for _, r := range m {
		if len(r) != len(m[0]) {
			return false
		}
	}
	return true
}
