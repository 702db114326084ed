package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/platform/tui"
	"github.com/vovakirdan/tile2048/internal/registry"
)

var (
	flagHeight int
	flagWidth  int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the specified board variant. Without a variant
(and without --height/--width) a menu lets you pick one.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P                - Pause
  R                - Clear the board and start over
  Esc/B            - Back to the menu
  ?                - More keys
  Q/Ctrl+C         - Quit

Moves and spawns are logged at debug level when --log-file is set.

Examples:
  t2048 play
  t2048 play 2048
  t2048 play 2048_6x6 --seed 42
  t2048 play --height 3 --width 7
  t2048 play --log-level debug --log-file t2048.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides the variant)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides the variant)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs only go to --log-file.
	logger, closer, err := newLogger(io.Discard, "t2048")
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size early for the menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(),
		Seed:     flagSeed,
	}
	opts := tui.Options{
		Logger:   logger,
		ShowHelp: settings.UI.ShowHelp,
	}

	if flagHeight > 0 || flagWidth > 0 {
		h, w := settings.Board.Height, settings.Board.Width
		if flagHeight > 0 {
			h = flagHeight
		}
		if flagWidth > 0 {
			w = flagWidth
		}
		_, err := tui.Run(t2048.NewSized(h, w), cfg, opts)
		return err
	}

	if len(args) == 1 {
		gameID := args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown variant %q, run 't2048 list' to see available variants", gameID)
		}
		if info, ok := registry.Info(gameID); ok {
			logger.Info("starting variant", "id", info.ID, "height", info.Height, "width", info.Width, "seed", cfg.Seed)
		}
		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}
		_, err = tui.Run(game, cfg, opts)
		return err
	}

	return runMenuLoop(cfg, opts)
}

// runMenuLoop shows the variant picker until the player quits.
// Leaving a game with the back key returns to the menu.
func runMenuLoop(cfg core.RuntimeConfig, opts tui.Options) error {
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		back, err := tui.Run(game, cfg, opts)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
