// Package registry keeps the playable board variants.
// Variants register themselves in init() functions so the CLI and the SSH
// server can list and create them by id.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tile2048/internal/core"
)

// Game is the interface the platform drives. It is a caller of the board
// rules: it turns input frames into moves and draws the board.
type Game interface {
	// ID returns the variant identifier (e.g., "2048", "2048_5x5").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset clears the board and spawns the opening tiles.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick, applying at most one move.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current board into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID     string
	Title  string
	Height int
	Width  int
}

// Factory creates a new instance of a variant.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered variants sorted by board area, then ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		ai := result[i].Height * result[i].Width
		aj := result[j].Height * result[j].Width
		if ai != aj {
			return ai < aj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of a registered variant.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a variant by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
