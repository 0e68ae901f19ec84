package tetris

import "fmt"

// Rotation is the orientation a piece is placed with, always measured
// from the shape's Normal matrix.
type Rotation uint8

const (
	Normal           Rotation = iota // 0°
	Clockwise                        // 90°
	OneEighty                        // 180°
	CounterClockwise                 // 270°
)

var rotationNames = [...]string{
	Normal:           "normal",
	Clockwise:        "cw",
	OneEighty:        "180",
	CounterClockwise: "ccw",
}

func (r Rotation) Valid() bool { return r <= CounterClockwise }

func (r Rotation) String() string {
	if r.Valid() {
		return rotationNames[r]
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// Next returns the state 90° clockwise of r.
func (r Rotation) Next() Rotation { return (r + 1) % 4 }

// Prev returns the state 90° counter-clockwise of r.
func (r Rotation) Prev() Rotation { return (r + 3) % 4 }

func ParseRotation(v string) (Rotation, error) {
	for i, n := range rotationNames {
		if n == v {
			return Rotation(i), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrInvalidRotation, v)
}

// Rotate returns a new matrix with m turned by r. The input is never
// modified. Non-square matrices swap their dimensions on quarter turns.
//
//	Normal		Clockwise	OneEighty	CounterClockwise
//
//	O X X		O O			O O O		X O
//	O O O		O X			X X O		X O
//				O X						O O
func Rotate(m Matrix, r Rotation) Matrix {
	rows, cols := m.Height(), m.Width()
	switch r {
	case OneEighty:
		out := make(Matrix, rows)
		for ir := range m {
			out[rows-ir-1] = make([]uint8, cols)
			for ic, c := range m[ir] {
				out[rows-ir-1][cols-ic-1] = c
			}
		}
		return out
	case Clockwise:
		out := make(Matrix, cols)
		for row := range out {
			out[row] = make([]uint8, rows)
			for col := range out[row] {
				out[row][col] = m[rows-col-1][row]
			}
		}
		return out
	case CounterClockwise:
		out := make(Matrix, cols)
		for row := range out {
			out[row] = make([]uint8, rows)
			for col := range out[row] {
				out[row][col] = m[col][cols-row-1]
			}
		}
		return out
	default:
		return m.Clone()
	}
}
