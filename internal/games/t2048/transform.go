package t2048

import "fmt"

// startCells returns the first cell of every line affected by a move in d,
// i.e. the cells on the edge the tiles slide toward.
func startCells(g Grid, d Direction) []Cell {
	var cells []Cell
	switch d {
	case DirUp:
		for c := range g.width {
			cells = append(cells, Cell{Row: 0, Col: c})
		}
	case DirDown:
		for c := range g.width {
			cells = append(cells, Cell{Row: g.height - 1, Col: c})
		}
	case DirLeft:
		for r := range g.height {
			cells = append(cells, Cell{Row: r, Col: 0})
		}
	case DirRight:
		for r := range g.height {
			cells = append(cells, Cell{Row: r, Col: g.width - 1})
		}
	}
	return cells
}

// lineLength returns the number of cells in each line for d.
func lineLength(g Grid, d Direction) int {
	if d.vertical() {
		return g.height
	}
	return g.width
}

// LinesFor extracts every row (LEFT/RIGHT) or column (UP/DOWN) of g,
// oriented so that index 0 is the edge the tiles slide toward.
// DOWN columns are read bottom-to-top and RIGHT rows right-to-left.
func LinesFor(g Grid, d Direction) ([][]int, error) {
	dRow, dCol, err := d.Offset()
	if err != nil {
		return nil, err
	}

	starts := startCells(g, d)
	length := lineLength(g, d)
	lines := make([][]int, len(starts))
	for i, start := range starts {
		line := make([]int, length)
		for k := range length {
			line[k] = g.At(start.Row+k*dRow, start.Col+k*dCol)
		}
		lines[i] = line
	}
	return lines, nil
}

// Rebuild writes lines back into a copy of g using the same walk LinesFor
// used to read them, which undoes the DOWN/RIGHT reversal.
// g itself is not modified.
func Rebuild(g Grid, d Direction, lines [][]int) (Grid, error) {
	dRow, dCol, err := d.Offset()
	if err != nil {
		return Grid{}, err
	}

	starts := startCells(g, d)
	if len(lines) != len(starts) {
		return Grid{}, fmt.Errorf("t2048: %d lines for %v, want %d: %w",
			len(lines), d, len(starts), ErrDimensionMismatch)
	}

	length := lineLength(g, d)
	out := g.Clone()
	for i, start := range starts {
		line := lines[i]
		if len(line) != length {
			return Grid{}, fmt.Errorf("t2048: line %d has %d cells, want %d: %w",
				i, len(line), length, ErrDimensionMismatch)
		}
		for k, v := range line {
			out.Set(start.Row+k*dRow, start.Col+k*dCol, v)
		}
	}
	return out, nil
}

// ApplyMove slides and merges every line of g in direction d and returns
// the resulting grid. g is never modified.
func ApplyMove(g Grid, d Direction) (Grid, error) {
	lines, err := LinesFor(g, d)
	if err != nil {
		return Grid{}, err
	}

	for i, line := range lines {
		lines[i] = Merge(line)
	}

	return Rebuild(g, d, lines)
}
