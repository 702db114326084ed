package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

// Grid is a fixed-size rectangle of tile values stored row-major.
// 0 is an empty cell. Copying a Grid shares its buffer; use Clone
// for an independent snapshot.
type Grid struct {
	height int
	width  int
	cells  []int
}

// NewGrid creates an empty grid. It panics if either dimension is not positive.
func NewGrid(height, width int) Grid {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("t2048: invalid grid size %dx%d", height, width))
	}
	return Grid{
		height: height,
		width:  width,
		cells:  make([]int, height*width),
	}
}

// GridFromRows builds a grid from row slices. All rows must share one length.
func GridFromRows(rows [][]int) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("t2048: empty grid: %w", ErrDimensionMismatch)
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.width {
			return Grid{}, fmt.Errorf("t2048: row %d has %d cells, want %d: %w",
				r, len(row), g.width, ErrDimensionMismatch)
		}
		copy(g.cells[r*g.width:], row)
	}
	return g, nil
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

func (g Grid) index(row, col int) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("t2048: cell (%d, %d) out of range for %dx%d grid", row, col, g.height, g.width))
	}
	return row*g.width + col
}

// At returns the value at (row, col). It panics on out-of-range coordinates.
func (g Grid) At(row, col int) int {
	return g.cells[g.index(row, col)]
}

// Set writes value at (row, col). It panics on out-of-range coordinates
// or a negative value.
func (g *Grid) Set(row, col, value int) {
	if value < 0 {
		panic(fmt.Sprintf("t2048: negative tile value %d", value))
	}
	g.cells[g.index(row, col)] = value
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := g
	c.cells = make([]int, len(g.cells))
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and values.
func (g Grid) Equal(other Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid as row slices.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for r := range g.height {
		rows[r] = make([]int, g.width)
		copy(rows[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return rows
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for i, v := range g.cells {
		if v == 0 {
			cells = append(cells, Cell{Row: i / g.width, Col: i % g.width})
		}
	}
	return cells
}

// CountEmpty returns the number of empty cells.
func (g Grid) CountEmpty() int {
	n := 0
	for _, v := range g.cells {
		if v == 0 {
			n++
		}
	}
	return n
}

// MaxTile returns the largest tile value, or 0 for an empty grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// MirrorHorizontal returns a copy with each row reversed.
func (g Grid) MirrorHorizontal() Grid {
	m := NewGrid(g.height, g.width)
	for r := range g.height {
		for c := range g.width {
			m.Set(r, g.width-1-c, g.At(r, c))
		}
	}
	return m
}

// MirrorVertical returns a copy with the row order reversed.
func (g Grid) MirrorVertical() Grid {
	m := NewGrid(g.height, g.width)
	for r := range g.height {
		for c := range g.width {
			m.Set(g.height-1-r, c, g.At(r, c))
		}
	}
	return m
}

// String renders the grid as right-aligned rows, for debugging and the replay command.
func (g Grid) String() string {
	cellW := len(strconv.Itoa(g.MaxTile()))
	var sb strings.Builder
	for r := range g.height {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.width {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := g.At(r, c)
			s := strconv.Itoa(v)
			if v == 0 {
				s = "."
			}
			sb.WriteString(strings.Repeat(" ", cellW-len(s)))
			sb.WriteString(s)
		}
	}
	return sb.String()
}
