package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - slide tiles up
	ActionDown               // S, Down arrow - slide tiles down
	ActionLeft               // A, Left arrow - slide tiles left
	ActionRight              // D, Right arrow - slide tiles right
	ActionUndo               // 1, U - undo power-up
	ActionShuffle            // 2 - shuffle power-up
	ActionRemove             // 3 - remove-lowest power-up
	ActionBomb               // 4 - bomb power-up
	ActionNewGame            // N, R - start a new session
	ActionKeepPlaying        // K - continue after reaching the win tile
	ActionCycleMode          // M - switch to the next mode
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUndo:
		return "Undo"
	case ActionShuffle:
		return "Shuffle"
	case ActionRemove:
		return "Remove"
	case ActionBomb:
		return "Bomb"
	case ActionNewGame:
		return "NewGame"
	case ActionKeepPlaying:
		return "KeepPlaying"
	case ActionCycleMode:
		return "CycleMode"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action slides the board.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// IsPowerUp reports whether the action triggers a power-up.
func (a Action) IsPowerUp() bool {
	return a >= ActionUndo && a <= ActionBomb
}
