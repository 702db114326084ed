package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction in declaration order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Offset returns the per-step delta used when reading a line, starting
// from the edge the tiles slide toward.
func (d Direction) Offset() (dRow, dCol int, err error) {
	switch d {
	case DirUp:
		return 1, 0, nil
	case DirDown:
		return -1, 0, nil
	case DirLeft:
		return 0, 1, nil
	case DirRight:
		return 0, -1, nil
	default:
		return 0, 0, fmt.Errorf("t2048: %v: %w", d, ErrInvalidDirection)
	}
}

// vertical reports whether lines for d are columns.
func (d Direction) vertical() bool {
	return d == DirUp || d == DirDown
}

// reversed reports whether lines for d are read against the natural
// row/column order (bottom-to-top or right-to-left).
func (d Direction) reversed() bool {
	return d == DirDown || d == DirRight
}

// ParseDirection converts a name or single-letter code (u, d, l, r) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return DirUp, nil
	case "d", "down":
		return DirDown, nil
	case "l", "left":
		return DirLeft, nil
	case "r", "right":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("t2048: unknown direction %q: %w", s, ErrInvalidDirection)
	}
}

// ParseMoves converts a move string such as "LLUR" or "l,l,u,r" to directions.
// Whitespace and commas are ignored.
func ParseMoves(s string) ([]Direction, error) {
	var dirs []Direction
	for _, r := range s {
		if r == ',' || r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		d, err := ParseDirection(string(r))
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
