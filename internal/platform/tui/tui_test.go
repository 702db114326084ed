package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"wasd w", runeKey('w'), core.ActionUp, false},
		{"wasd a", runeKey('a'), core.ActionLeft, false},
		{"vim j", runeKey('j'), core.ActionDown, false},
		{"vim l", runeKey('l'), core.ActionRight, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"quit q", runeKey('q'), core.ActionQuit, true},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := keys.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line %q is missing text", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("second line %q is missing text", lines[1])
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}

func newTestModel(t *testing.T, opts Options) (Model, *t2048.Game) {
	t.Helper()
	game := t2048.New(t2048.Variants[0])
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(game, cfg, opts)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule a tick")
	}
	return m, game
}

// changingKey returns a key that moves at least one tile on the current board.
func changingKey(t *testing.T, game *t2048.Game) tea.KeyMsg {
	t.Helper()
	grid := game.Board().Grid()
	keys := map[t2048.Direction]tea.KeyMsg{
		t2048.DirUp:    {Type: tea.KeyUp},
		t2048.DirDown:  {Type: tea.KeyDown},
		t2048.DirLeft:  {Type: tea.KeyLeft},
		t2048.DirRight: {Type: tea.KeyRight},
	}
	for _, d := range t2048.Directions {
		next, err := t2048.ApplyMove(grid, d)
		if err != nil {
			t.Fatalf("ApplyMove: %v", err)
		}
		if !next.Equal(grid) {
			return keys[d]
		}
	}
	t.Fatal("no direction changes the opening board")
	return tea.KeyMsg{}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelAppliesMoveOnTick(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = update(t, m, changingKey(t, game))
	if game.State().Moves != 0 {
		t.Fatal("move applied before the tick")
	}

	m, cmd := update(t, m, TickMsg{ID: m.tickID})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.gameState.Moves != 1 {
		t.Errorf("expected 1 move, got %d", m.gameState.Moves)
	}
	if !m.inputFrame.Empty() {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelIgnoresStaleTick(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = update(t, m, changingKey(t, game))
	m, cmd := update(t, m, TickMsg{ID: m.tickID - 1})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if game.State().Moves != 0 {
		t.Error("stale tick should not step the game")
	}
	if m.inputFrame.Empty() {
		t.Error("pending input should survive a stale tick")
	}
}

func TestModelPause(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{ID: m.tickID})
	if !m.gameState.Paused {
		t.Fatal("expected paused state")
	}

	m, _ = update(t, m, changingKey(t, game))
	_, _ = update(t, m, TickMsg{ID: m.tickID})
	if game.State().Moves != 0 {
		t.Error("moves should be ignored while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Error("expected quitting")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackWhenEmbedded(t *testing.T) {
	m, _ := newTestModel(t, Options{Embedded: true})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("expected back to menu")
	}
	if m.IsQuitting() {
		t.Error("embedded model should not quit on back")
	}
	if cmd != nil {
		t.Error("embedded back should not return a command")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m, game := newTestModel(t, Options{ShowHelp: true})
	before := game.Board().Grid()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
	if !game.Board().Grid().Equal(before) {
		t.Error("resize should not touch the board")
	}
	if !strings.Contains(m.View(), "Moves") {
		t.Error("view should contain the HUD")
	}
}

func TestMenuSelect(t *testing.T) {
	menu := NewMenuModel(core.DefaultConfig())
	if len(menu.items) == 0 {
		t.Fatal("menu should list registered variants")
	}

	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu = next.(MenuModel)
	if menu.cursor != 1 {
		t.Errorf("cursor = %d, want 1", menu.cursor)
	}

	next, cmd := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu = next.(MenuModel)
	if cmd == nil {
		t.Error("select should end the menu program")
	}
	if menu.Selected() == nil || menu.Selected().GameID != menu.items[1].GameID {
		t.Errorf("selected = %+v, want %s", menu.Selected(), menu.items[1].GameID)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	menu := NewMenuModel(core.DefaultConfig())

	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyUp})
	menu = next.(MenuModel)
	if menu.cursor != 0 {
		t.Errorf("cursor moved above the first item: %d", menu.cursor)
	}

	for range len(menu.items) + 3 {
		next, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
		menu = next.(MenuModel)
	}
	if menu.cursor != len(menu.items)-1 {
		t.Errorf("cursor = %d, want %d", menu.cursor, len(menu.items)-1)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(core.DefaultConfig(), Options{})
	if s.SessionID() == "" {
		t.Fatal("session id should be set")
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.gameModel == nil {
		t.Fatal("expected game to start after select")
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.gameModel != nil {
		t.Error("expected return to menu")
	}
	if s.quitting {
		t.Error("back should not end the session")
	}
	if !strings.Contains(s.View(), "Select a board") {
		t.Error("menu view expected after back")
	}
}
