package t2048

import (
	"fmt"

	"github.com/vovakirdan/tile2048/internal/core"
)

// ReplayResult summarizes a headless replay.
type ReplayResult struct {
	Applied int // Moves that changed the board
	Skipped int // Moves that left the board unchanged
}

// LookupVariant returns the built-in variant with the given id.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Replay starts a game of the given variant from seed and applies moves in order.
// The same variant, seed and moves always produce the same board.
func Replay(v Variant, seed int64, moves []Direction) (*Game, ReplayResult, error) {
	g := New(v)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)

	var res ReplayResult
	for i, d := range moves {
		changed, err := g.Apply(d)
		if err != nil {
			return g, res, fmt.Errorf("t2048: replay move %d: %w", i+1, err)
		}
		if changed {
			res.Applied++
		} else {
			res.Skipped++
		}
	}
	return g, res, nil
}
