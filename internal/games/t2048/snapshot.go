package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateBoardFull   GameStateType = "board_full"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Moves   int
	Grid    [][]int
	Empty   int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.board.CountEmptyTiles() == 0:
		state = StateBoardFull
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Moves:   g.moves,
		Grid:    g.board.grid.Rows(),
		Empty:   g.board.CountEmptyTiles(),
		MaxTile: g.board.grid.MaxTile(),
		State:   state,
	}
}
