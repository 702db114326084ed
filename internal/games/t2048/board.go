package t2048

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultSpawnFourProbability is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawnFourProbability = 0.10

// RandomSource supplies the randomness used to spawn tiles.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// Spawn describes a tile placed by NewTile.
type Spawn struct {
	Cell
	Value int
}

// Board owns the canonical grid and is the only part of the game that
// touches randomness.
type Board struct {
	grid       Grid
	rng        RandomSource
	spawn4Prob float64
	lastSpawn  *Spawn
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithSpawnFourProbability sets the chance of spawning a 4. Values are clamped to [0, 1].
func WithSpawnFourProbability(p float64) BoardOption {
	return func(b *Board) {
		b.spawn4Prob = max(0, min(1, p))
	}
}

// NewBoard creates an empty height x width board. A nil rng falls back to
// a time-seeded source. It panics if either dimension is not positive.
func NewBoard(height, width int, rng RandomSource, opts ...BoardOption) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := &Board{
		grid:       NewGrid(height, width),
		rng:        rng,
		spawn4Prob: DefaultSpawnFourProbability,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.grid.Height()
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.grid.Width()
}

// Grid returns a snapshot of the current grid.
func (b *Board) Grid() Grid {
	return b.grid.Clone()
}

// GetTile returns the value at (row, col). It panics on out-of-range coordinates.
func (b *Board) GetTile(row, col int) int {
	return b.grid.At(row, col)
}

// SetTile writes value at (row, col). It panics on out-of-range coordinates.
func (b *Board) SetTile(row, col, value int) {
	b.grid.Set(row, col, value)
}

// Reset clears every cell.
func (b *Board) Reset() {
	b.grid = NewGrid(b.grid.Height(), b.grid.Width())
	b.lastSpawn = nil
}

// CountEmptyTiles returns the number of empty cells.
func (b *Board) CountEmptyTiles() int {
	return b.grid.CountEmpty()
}

// Move slides the board in direction d. A tile is spawned if and only if
// the grid changed. changed reports whether it did.
func (b *Board) Move(d Direction) (changed bool, err error) {
	after, err := ApplyMove(b.grid, d)
	if err != nil {
		return false, err
	}
	if after.Equal(b.grid) {
		return false, nil
	}

	b.grid = after
	if _, err := b.NewTile(); err != nil {
		return true, err
	}
	return true, nil
}

// NewTile places a 2 (or a 4, with the configured probability) on a
// uniformly chosen empty cell. It returns ErrBoardFull when no cell is empty.
func (b *Board) NewTile() (Spawn, error) {
	empty := b.grid.EmptyCells()
	if len(empty) == 0 {
		return Spawn{}, fmt.Errorf("t2048: cannot spawn tile: %w", ErrBoardFull)
	}

	cell := empty[b.rng.Intn(len(empty))]

	value := 2
	if b.rng.Float64() < b.spawn4Prob {
		value = 4
	}

	b.SetTile(cell.Row, cell.Col, value)
	spawn := Spawn{Cell: cell, Value: value}
	b.lastSpawn = &spawn
	return spawn, nil
}

// LastSpawn returns the most recently spawned tile, if any since the last Reset.
func (b *Board) LastSpawn() (Spawn, bool) {
	if b.lastSpawn == nil {
		return Spawn{}, false
	}
	return *b.lastSpawn, true
}

// String renders the grid for debugging.
func (b *Board) String() string {
	return b.grid.String()
}
