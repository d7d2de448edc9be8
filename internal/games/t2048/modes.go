// Package t2048 implements the 2048 sliding-tile engine and the session state
// machine around it: combo scoring, power-ups, undo history and the classic,
// time attack and zen modes.
package t2048

import (
	"strings"
	"time"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic    Mode = "classic"
	ModeTimeAttack Mode = "timeAttack"
	ModeZen        Mode = "zen"
)

// DefaultTimeLimit is the time attack budget.
const DefaultTimeLimit = 120 * time.Second

// ModeInfo describes a game mode for menus.
type ModeInfo struct {
	Mode        Mode
	Name        string
	Description string
}

// Modes lists the game modes in menu order.
var Modes = []ModeInfo{
	{Mode: ModeClassic, Name: "Classic", Description: "Original 2048 experience"},
	{Mode: ModeTimeAttack, Name: "Time Attack", Description: "2 minutes to get highest score"},
	{Mode: ModeZen, Name: "Zen", Description: "No game over, just relax"},
}

// ParseMode accepts a mode id or name, case-insensitively.
// "time-attack" and "timeattack" are accepted for ModeTimeAttack.
func ParseMode(s string) (Mode, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for _, info := range Modes {
		if key == strings.ToLower(string(info.Mode)) {
			return info.Mode, true
		}
	}
	return "", false
}

// Info returns the menu entry for m. Unknown modes describe themselves as classic.
func (m Mode) Info() ModeInfo {
	for _, info := range Modes {
		if info.Mode == m {
			return info
		}
	}
	return Modes[0]
}

// Timed reports whether the mode runs a countdown.
func (m Mode) Timed() bool {
	return m == ModeTimeAttack
}

// Endless reports whether the board can never end the game.
func (m Mode) Endless() bool {
	return m == ModeZen
}

// Next returns the following mode in menu order, wrapping around.
func (m Mode) Next() Mode {
	for i, info := range Modes {
		if info.Mode == m {
			return Modes[(i+1)%len(Modes)].Mode
		}
	}
	return ModeClassic
}

// ModeNames returns the display names of all modes.
func ModeNames() []string {
	names := make([]string, len(Modes))
	for i, info := range Modes {
		names[i] = info.Name
	}
	return names
}
