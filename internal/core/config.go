package core

import "time"

// RuntimeConfig contains configuration passed to the game front-end at startup.
// The platform layer uses it to size the board view and drive the clock.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	TickRate time.Duration // Interval between countdown ticks
	Seed     int64         // RNG seed for deterministic tile spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100 * time.Millisecond,
		Seed:     0, // 0 means use current time in game layer
	}
}

// FitsBoard reports whether a board of the given size fits on screen.
// Each cell renders 7 columns wide and 3 rows tall plus a border.
func (c RuntimeConfig) FitsBoard(size int) bool {
	return size*7+2 <= c.ScreenW && size*3+2 <= c.ScreenH
}
