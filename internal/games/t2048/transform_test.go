package t2048

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func mustGrid(t *testing.T, rows [][]int) Grid {
	t.Helper()
	g, err := GridFromRows(rows)
	if err != nil {
		t.Fatalf("GridFromRows(%v): %v", rows, err)
	}
	return g
}

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		input    [][]int
		expected [][]int
	}{
		{
			name: "left",
			dir:  DirLeft,
			input: [][]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
		},
		{
			name: "right",
			dir:  DirRight,
			input: [][]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
		},
		{
			name: "up",
			dir:  DirUp,
			input: [][]int{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "down",
			dir:  DirDown,
			input: [][]int{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
		},
		{
			name: "down merges the pair nearest the bottom",
			dir:  DirDown,
			input: [][]int{
				{2},
				{2},
				{2},
			},
			expected: [][]int{
				{0},
				{2},
				{4},
			},
		},
		{
			name: "right merges the pair nearest the right edge",
			dir:  DirRight,
			input: [][]int{
				{2, 2, 2},
			},
			expected: [][]int{
				{0, 2, 4},
			},
		},
		{
			name: "rectangular left",
			dir:  DirLeft,
			input: [][]int{
				{2, 0, 2},
				{4, 4, 4},
			},
			expected: [][]int{
				{4, 0, 0},
				{8, 4, 0},
			},
		},
		{
			name: "rectangular up",
			dir:  DirUp,
			input: [][]int{
				{2, 0, 2},
				{4, 4, 4},
			},
			expected: [][]int{
				{2, 4, 2},
				{4, 0, 4},
			},
		},
		{
			name: "rectangular down is a no-op",
			dir:  DirDown,
			input: [][]int{
				{2, 0, 2},
				{4, 4, 4},
			},
			expected: [][]int{
				{2, 0, 2},
				{4, 4, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.input)
			result, err := ApplyMove(g, tt.dir)
			if err != nil {
				t.Fatalf("ApplyMove: %v", err)
			}
			if want := mustGrid(t, tt.expected); !result.Equal(want) {
				t.Errorf("ApplyMove(%v): got\n%v\nwant\n%v", tt.dir, result, want)
			}
		})
	}
}

func TestApplyMoveDoesNotModifyInput(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2, 0, 0},
		{0, 4, 0, 4},
	})
	before := g.Clone()

	for _, d := range Directions {
		if _, err := ApplyMove(g, d); err != nil {
			t.Fatalf("ApplyMove(%v): %v", d, err)
		}
		if !g.Equal(before) {
			t.Fatalf("ApplyMove(%v) modified its input:\n%v", d, g)
		}
	}
}

func TestApplyMoveInvalidDirection(t *testing.T) {
	g := NewGrid(4, 4)
	if _, err := ApplyMove(g, Direction(42)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ApplyMove(42) error = %v, want ErrInvalidDirection", err)
	}
	if _, err := LinesFor(g, Direction(-1)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("LinesFor(-1) error = %v, want ErrInvalidDirection", err)
	}
}

func TestLinesFor(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	tests := []struct {
		dir      Direction
		expected [][]int
	}{
		{DirUp, [][]int{{1, 4}, {2, 5}, {3, 6}}},
		{DirDown, [][]int{{4, 1}, {5, 2}, {6, 3}}},
		{DirLeft, [][]int{{1, 2, 3}, {4, 5, 6}}},
		{DirRight, [][]int{{3, 2, 1}, {6, 5, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			lines, err := LinesFor(g, tt.dir)
			if err != nil {
				t.Fatalf("LinesFor: %v", err)
			}
			if !slices.EqualFunc(lines, tt.expected, func(a, b []int) bool { return slices.Equal(a, b) }) {
				t.Errorf("LinesFor(%v) = %v, want %v", tt.dir, lines, tt.expected)
			}
		})
	}
}

func TestRebuildInvertsLinesFor(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
	})

	for _, d := range Directions {
		lines, err := LinesFor(g, d)
		if err != nil {
			t.Fatalf("LinesFor(%v): %v", d, err)
		}
		rebuilt, err := Rebuild(NewGrid(2, 3), d, lines)
		if err != nil {
			t.Fatalf("Rebuild(%v): %v", d, err)
		}
		if !rebuilt.Equal(g) {
			t.Errorf("Rebuild(%v) = \n%v\nwant\n%v", d, rebuilt, g)
		}
	}
}

func TestRebuildDimensionMismatch(t *testing.T) {
	g := NewGrid(2, 3)

	if _, err := Rebuild(g, DirLeft, [][]int{{1, 2, 3}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("too few lines: error = %v, want ErrDimensionMismatch", err)
	}
	if _, err := Rebuild(g, DirUp, [][]int{{1, 2}, {3, 4}, {5}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short line: error = %v, want ErrDimensionMismatch", err)
	}
}

func randomGrid(rng *rand.Rand, height, width int) Grid {
	g := NewGrid(height, width)
	for r := range height {
		for c := range width {
			if rng.Intn(3) > 0 {
				g.Set(r, c, 1<<(1+rng.Intn(4)))
			}
		}
	}
	return g
}

func TestDirectionalSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := range 500 {
		g := randomGrid(rng, 1+rng.Intn(6), 1+rng.Intn(6))

		right, _ := ApplyMove(g, DirRight)
		leftOfMirror, _ := ApplyMove(g.MirrorHorizontal(), DirLeft)
		if !right.MirrorHorizontal().Equal(leftOfMirror) {
			t.Fatalf("case %d: RIGHT and mirrored LEFT disagree for\n%v", i, g)
		}

		down, _ := ApplyMove(g, DirDown)
		upOfMirror, _ := ApplyMove(g.MirrorVertical(), DirUp)
		if !down.MirrorVertical().Equal(upOfMirror) {
			t.Fatalf("case %d: DOWN and mirrored UP disagree for\n%v", i, g)
		}
	}
}
