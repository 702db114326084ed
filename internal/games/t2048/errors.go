package t2048

import "errors"

var (
	// ErrInvalidDirection is returned when a move is requested with a
	// value outside the four defined directions.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrBoardFull is returned when a tile is spawned on a board with no empty cell.
	ErrBoardFull = errors.New("board full")

	// ErrDimensionMismatch is returned when merged lines do not fit the grid they are written into.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
