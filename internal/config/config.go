// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	UI    UIConfig    `yaml:"ui"`
}

// BoardConfig defines the default board dimensions.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance of a 4 instead of a 2 (0.0-1.0)
	InitialTiles    int     `yaml:"initial_tiles"`    // Tiles spawned on reset
}

// UIConfig defines terminal harness options.
type UIConfig struct {
	TickRate int  `yaml:"tick_rate"`
	ShowHelp bool `yaml:"show_help"`
}

// Validate checks that the configuration describes a playable board.
func (c T2048Config) Validate() error {
	if c.Board.Height <= 0 || c.Board.Width <= 0 {
		return fmt.Errorf("config: board size %dx%d must be positive: %w",
			c.Board.Height, c.Board.Width, ErrInvalid)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("config: four_probability %v outside [0, 1]: %w",
			c.Spawn.FourProbability, ErrInvalid)
	}
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > c.Board.Height*c.Board.Width {
		return fmt.Errorf("config: initial_tiles %d does not fit a %dx%d board: %w",
			c.Spawn.InitialTiles, c.Board.Height, c.Board.Width, ErrInvalid)
	}
	if c.UI.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate %d must be positive: %w", c.UI.TickRate, ErrInvalid)
	}
	return nil
}
