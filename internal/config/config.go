// Package config provides YAML-based game configuration loading and
// difficulty presets for 2048.
package config

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board    T2048Board              `yaml:"board"`
	Timing   T2048Timing             `yaml:"timing"`
	History  T2048History            `yaml:"history"`
	PowerUps map[string]T2048PowerUp `yaml:"power_ups"`
}

// T2048Board defines board parameters.
type T2048Board struct {
	Size         int     `yaml:"size"`
	WinTile      int     `yaml:"win_tile"`
	Spawn4Chance float64 `yaml:"spawn4_chance"` // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// T2048Timing defines wall-clock timings.
type T2048Timing struct {
	SettleLockMS    int `yaml:"settle_lock_ms"`
	ComboWindowMS   int `yaml:"combo_window_ms"`
	TimeLimitSec    int `yaml:"time_limit_sec"`
	CountdownTickMS int `yaml:"countdown_tick_ms"`
}

// T2048History defines the undo buffer.
type T2048History struct {
	Depth int `yaml:"depth"`
}

// T2048PowerUp defines the budget of one power-up.
type T2048PowerUp struct {
	Uses     int `yaml:"uses"`
	Cooldown int `yaml:"cooldown"` // In moves
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
