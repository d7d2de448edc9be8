package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{
			Size:         4,
			WinTile:      2048,
			Spawn4Chance: 0.10,
		},
		Timing: T2048Timing{
			SettleLockMS:    150,
			ComboWindowMS:   2000,
			TimeLimitSec:    120,
			CountdownTickMS: 100,
		},
		History: T2048History{
			Depth: 10,
		},
		PowerUps: map[string]T2048PowerUp{
			"undo":    {Uses: 3, Cooldown: 0},
			"shuffle": {Uses: 2, Cooldown: 5},
			"remove":  {Uses: 3, Cooldown: 3},
			"bomb":    {Uses: 1, Cooldown: 10},
		},
	}
}
