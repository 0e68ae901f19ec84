// Package tetris contains the placement engine of the game: the shape
// catalog, matrix rotation, the board with its drop resolution and line
// clears, the piece generators and a thin controller tying them together.
package tetris

import "errors"

var (
	// ErrOutOfBounds is returned for any column/row outside the board.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrUnknownShape is returned when placing Empty or an unknown kind.
	ErrUnknownShape = errors.New("unknown shape")
	// ErrInvalidRotation is returned for rotation values past CounterClockwise.
	ErrInvalidRotation = errors.New("invalid rotation")
	// ErrPieceTooLarge is returned when the rotated piece can't fit the board at all.
	ErrPieceTooLarge = errors.New("piece larger than board")
	// ErrBlockedOut is returned when the piece is obstructed on the top row.
	ErrBlockedOut = errors.New("no room to place piece")
	// ErrGameOver is returned by the controller once the stack has topped out.
	ErrGameOver = errors.New("game over")
	// ErrInvalidSize is returned for boards with a non-positive dimension.
	ErrInvalidSize = errors.New("invalid board size")
)
