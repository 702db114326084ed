// Package tui provides the Bubble Tea harness for the game: the input
// loop, key bindings, rendering and an SSH server that serves the same
// harness to remote players.
package tui

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/registry"
)

// TickMsg triggers a simulation tick. ID ties it to the loop that scheduled it
// so a stale loop from a previous game is ignored.
type TickMsg struct {
	ID   int64
	Time time.Time
}

// tickIDs hands out loop ids. SSH sessions create models concurrently.
var tickIDs atomic.Int64

// tickCmd returns a command that sends a tick message at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// spawnReporter is implemented by games that can report their last spawned tile.
type spawnReporter interface {
	LastSpawnInfo() (row, col, value int, ok bool)
}

// Options configures a Model.
type Options struct {
	Logger   *log.Logger
	ShowHelp bool
	// Embedded models report Back instead of quitting the program.
	Embedded bool
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	opts       Options
	logger     *log.Logger
	tickID     int64
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg.ScreenH = gameHeight(cfg.ScreenH, opts.ShowHelp)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		opts:       opts,
		logger:     logger.With("game", game.ID()),
		tickID:     tickIDs.Add(1),
	}
}

// gameHeight leaves room for the help line below the game screen.
func gameHeight(h int, showHelp bool) int {
	if showHelp && h > 1 {
		return h - 1
	}
	return h
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "screen", [2]int{m.config.ScreenW, m.config.ScreenH})
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.back = true
		if m.opts.Embedded {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("game ended", "moves", m.gameState.Moves)
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize updates the screen size. The board is kept as is.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = gameHeight(msg.Height, m.opts.ShowHelp)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(interface{ Resize(w, h int) }); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.inputFrame.Empty() {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		m.logger.Debug("step",
			"actions", len(m.inputFrame.Actions),
			"changed", result.Changed,
			"moves", result.State.Moves,
			"empty", result.State.Empty,
		)
		if sr, ok := m.game.(spawnReporter); ok && result.Changed {
			if row, col, value, ok := sr.LastSpawnInfo(); ok {
				m.logger.Debug("spawn", "row", row, "col", col, "value", value)
			}
		}
		if result.State.Full {
			m.logger.Debug("board full")
		}
	} else {
		m.gameState = m.game.State()
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.tickID, m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.opts.ShowHelp {
		view += "\n" + centerText(m.help.View(m.keys), m.config.ScreenW)
	}
	return view
}

// BackToMenu returns true if the player asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
// It reports whether the player left with the back key rather than quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
