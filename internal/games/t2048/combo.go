package t2048

import (
	"math"
	"time"
)

// DefaultComboWindow is how long a combo survives without a new merge.
const DefaultComboWindow = 2 * time.Second

// ComboMultiplier returns the score multiplier for a combo count.
func ComboMultiplier(combo int) float64 {
	switch {
	case combo <= 1:
		return 1.0
	case combo <= 3:
		return 1.5
	case combo <= 5:
		return 2.0
	case combo <= 10:
		return 3.0
	default:
		return 4.0
	}
}

// ComboScore applies the multiplier for combo to a raw merge score, rounding down.
func ComboScore(raw, combo int) int {
	return int(math.Floor(float64(raw) * ComboMultiplier(combo)))
}

// nextCombo returns the combo count after a move that produced merges merges.
// Moves without merges leave the combo to the decay timer.
func nextCombo(current, merges int) int {
	if merges <= 0 {
		return current
	}
	return current + merges
}
