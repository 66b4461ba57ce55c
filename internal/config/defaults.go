package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var default2048YAML []byte

// DefaultT2048Config returns the classic 4x4 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size:       4,
			StartTiles: 2,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.1,
		},
		WinValue: 2048,
	}
}
