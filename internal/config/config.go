// Package config provides YAML-based game configuration loading for the
// 2048 game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Board size limits accepted by Validate.
const (
	MinBoardSize = 2
	MaxBoardSize = 8
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board    BoardConfig `yaml:"board"`
	Spawn    SpawnConfig `yaml:"spawn"`
	WinValue int         `yaml:"win_value"`
}

// BoardConfig defines the board parameters.
type BoardConfig struct {
	Size       int `yaml:"size"`
	StartTiles int `yaml:"start_tiles"`
}

// SpawnConfig defines how new tiles are drawn.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
}

// Validate checks the configuration values.
func (c T2048Config) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("%w: board.size %d not in [%d, %d]",
			ErrInvalidConfig, c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if cells := c.Board.Size * c.Board.Size; c.Board.StartTiles < 1 || c.Board.StartTiles > cells {
		return fmt.Errorf("%w: board.start_tiles %d not in [1, %d]",
			ErrInvalidConfig, c.Board.StartTiles, cells)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: spawn.four_probability %v not in [0, 1]",
			ErrInvalidConfig, c.Spawn.FourProbability)
	}
	if c.WinValue < 4 || c.WinValue&(c.WinValue-1) != 0 {
		return fmt.Errorf("%w: win_value %d is not a power of two >= 4",
			ErrInvalidConfig, c.WinValue)
	}
	return nil
}
