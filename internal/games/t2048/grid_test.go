package t2048

import (
	"errors"
	"testing"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(3, 5)

	if g.Height() != 3 || g.Width() != 5 {
		t.Fatalf("size = %dx%d, want 3x5", g.Height(), g.Width())
	}
	if g.CountEmpty() != 15 {
		t.Errorf("CountEmpty() = %d, want 15", g.CountEmpty())
	}
}

func TestNewGridInvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 4) should panic")
		}
	}()
	NewGrid(0, 4)
}

func TestGridFromRowsRagged(t *testing.T) {
	_, err := GridFromRows([][]int{{2, 0}, {4}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("GridFromRows(ragged) error = %v, want ErrDimensionMismatch", err)
	}

	_, err = GridFromRows(nil)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("GridFromRows(nil) error = %v, want ErrDimensionMismatch", err)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	c := g.Clone()
	c.Set(0, 0, 2)

	if g.At(0, 0) != 0 {
		t.Error("modifying a clone changed the original")
	}
	if g.Equal(c) {
		t.Error("grids with different values should not be equal")
	}
}

func TestGridEqualDifferentSizes(t *testing.T) {
	if NewGrid(2, 3).Equal(NewGrid(3, 2)) {
		t.Error("grids of different sizes should not be equal")
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(4, 4)
	cells := []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 4}}

	for _, c := range cells {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d, %d) should panic", c.Row, c.Col)
				}
			}()
			g.At(c.Row, c.Col)
		}()
	}
}

func TestEmptyCells(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	cells := g.EmptyCells()
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != (Cell{Row: 0, Col: 1}) || cells[7] != (Cell{Row: 3, Col: 2}) {
		t.Errorf("EmptyCells should be row-major, got first %v last %v", cells[0], cells[7])
	}
	for _, c := range cells {
		if g.At(c.Row, c.Col) != 0 {
			t.Errorf("cell %v is not empty", c)
		}
	}
}

func TestMaxTile(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})

	if got := g.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestMirrors(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	if want := mustGrid(t, [][]int{{3, 2, 1}, {6, 5, 4}}); !g.MirrorHorizontal().Equal(want) {
		t.Errorf("MirrorHorizontal = \n%v", g.MirrorHorizontal())
	}
	if want := mustGrid(t, [][]int{{4, 5, 6}, {1, 2, 3}}); !g.MirrorVertical().Equal(want) {
		t.Errorf("MirrorVertical = \n%v", g.MirrorVertical())
	}
}

func TestGridString(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0},
		{16, 4},
	})

	want := " 2  .\n16  4"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
