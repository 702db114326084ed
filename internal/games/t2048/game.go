// Package t2048 implements the rules of the 2048 sliding-tile puzzle:
// line merging, direction-aware grid transforms and a board that spawns
// tiles after every move that changes it. Game adapts the board to the
// platform's tick loop.
package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/registry"
)

// DefaultVariantID is the variant whose size comes from the configuration.
const DefaultVariantID = "2048"

// Variant is a registered board size. Zero dimensions mean "use the configured size".
type Variant struct {
	ID     string
	Title  string
	Height int
	Width  int
}

// Variants lists the board sizes offered by the registry.
var Variants = []Variant{
	{ID: DefaultVariantID, Title: "2048"},
	{ID: "2048_3x3", Title: "2048 (3x3)", Height: 3, Width: 3},
	{ID: "2048_5x5", Title: "2048 (5x5)", Height: 5, Width: 5},
	{ID: "2048_6x6", Title: "2048 (6x6)", Height: 6, Width: 6},
}

// Package-level configuration shared by every game instance.
var settings = config.DefaultT2048Config()

// SetConfig replaces the configuration used by games reset after this call.
func SetConfig(cfg config.T2048Config) {
	settings = cfg
}

// Config returns the configuration currently in use.
func Config() config.T2048Config {
	return settings
}

func init() {
	for _, v := range Variants {
		info := registry.GameInfo{ID: v.ID, Title: v.Title, Height: v.Height, Width: v.Width}
		if v.Height == 0 || v.Width == 0 {
			def := config.DefaultT2048Config()
			info.Height, info.Width = def.Board.Height, def.Board.Width
		}
		registry.Register(info, func() registry.Game {
			return New(v)
		})
	}
}

// Game drives a Board from platform input frames.
type Game struct {
	variant Variant
	rng     *rand.Rand
	board   *Board
	tick    uint64
	moves   int

	lastMove    Direction
	hasLastMove bool
	lastErr     error // Unexpected error from the last move, shown in the HUD

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewSized creates a game with an explicit board size.
func NewSized(height, width int) *Game {
	return New(Variant{
		ID:     fmt.Sprintf("2048_%dx%d", height, width),
		Title:  fmt.Sprintf("2048 (%dx%d)", height, width),
		Height: height,
		Width:  width,
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// size returns the board dimensions for this game.
func (g *Game) size() (height, width int) {
	if g.variant.Height > 0 && g.variant.Width > 0 {
		return g.variant.Height, g.variant.Width
	}
	return settings.Board.Height, settings.Board.Width
}

// Reset creates a fresh board and spawns the opening tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	height, width := g.size()
	g.board = NewBoard(height, width, g.rng, WithSpawnFourProbability(settings.Spawn.FourProbability))
	g.restart()

	g.checkScreenSize()
}

// restart clears the board and spawns the opening tiles, keeping the RNG stream.
func (g *Game) restart() {
	g.board.Reset()
	g.moves = 0
	g.hasLastMove = false
	g.lastErr = nil

	for range settings.Spawn.InitialTiles {
		if _, err := g.board.NewTile(); err != nil {
			break
		}
	}
}

// Board returns the underlying board.
func (g *Game) Board() *Board {
	return g.board
}

// LastSpawnInfo reports the most recently spawned tile for harness logging.
func (g *Game) LastSpawnInfo() (row, col, value int, ok bool) {
	if g.board == nil {
		return 0, 0, 0, false
	}
	sp, ok := g.board.LastSpawn()
	return sp.Row, sp.Col, sp.Value, ok
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = !core.NewRect(0, 0, w, h).Fits(g.screenW, g.screenH)
}

// directionFor maps the first movement action in the frame to a direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// Step applies at most one move per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State(), Changed: true}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	changed, _ := g.Apply(dir)
	return core.StepResult{State: g.State(), Changed: changed}
}

// Apply performs one move on the board and records it in the move counter.
// Reset must have been called first.
func (g *Game) Apply(dir Direction) (bool, error) {
	changed, err := g.board.Move(dir)
	g.lastErr = err
	if changed {
		g.moves++
		g.lastMove = dir
		g.hasLastMove = true
	}
	return changed, err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	empty := g.board.CountEmptyTiles()
	return core.GameState{
		Moves:  g.moves,
		Empty:  empty,
		Full:   empty == 0,
		Paused: g.paused || g.tooSmall,
	}
}
