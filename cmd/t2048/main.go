// t2048 is the 2048 sliding-tile game for the terminal.
//
// Usage:
//
//	t2048 list                 - List board variants
//	t2048 play [variant]       - Play a variant (menu when omitted)
//	t2048 serve                - Start SSH server for remote play
//	t2048 replay --moves LLUR  - Apply moves headlessly and print the board
//	t2048 config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// settings is the loaded configuration, set before any command runs.
	settings config.T2048Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile game for the terminal.

Every move slides all tiles toward one edge, merging equal neighbours
once per move. A new tile (2, sometimes 4) appears after every move
that changed the board.

Available commands:
  list     - Show all board variants
  play     - Play a variant directly, or pick one from a menu
  serve    - Start SSH server for remote play
  replay   - Apply a move string headlessly and print the board
  config   - Print the effective configuration

Examples:
  t2048 list
  t2048 play
  t2048 play 2048_5x5
  t2048 play --height 3 --width 7
  t2048 replay --seed 42 --moves LLURDD
  t2048 serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads the config file and hands it to the game package.
func loadSettings(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return err
	}
	settings = cfg
	t2048.SetConfig(cfg)
	return nil
}

// tickRate returns the --fps flag, falling back to the configured rate.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return settings.UI.TickRate
}

// newLogger builds a logger at the --log-level writing to w, or to --log-file when set.
// The returned closer must be called when done.
func newLogger(w io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closer = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
