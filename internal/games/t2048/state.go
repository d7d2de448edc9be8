package t2048

import (
	"math/rand"
	"time"
)

// Status is the session's position in its state machine.
type Status string

const (
	StatusActive   Status = "active"
	StatusWon      Status = "won"       // Win reached, waiting for keep-playing
	StatusGameOver Status = "game_over" // Terminal
)

// GameState is the complete per-session game state.
type GameState struct {
	SessionID string
	Grid      *Grid
	Score     int
	BestScore int

	GameOver    bool
	Won         bool // Set once the win tile appears; kept for statistics
	KeepPlaying bool // Player dismissed the win and carried on

	MoveCount     int
	StartTime     time.Time
	TimeRemaining *time.Duration // Only set in timed modes
	Mode          Mode

	ComboCount     int
	PeakCombo      int // Highest ComboCount reached this session
	LastMergeValue int
}

// Status derives the state machine position from the flags.
func (s GameState) Status() Status {
	switch {
	case s.GameOver:
		return StatusGameOver
	case s.Won && !s.KeepPlaying:
		return StatusWon
	default:
		return StatusActive
	}
}

// Clone returns a deep copy.
func (s GameState) Clone() GameState {
	c := s.shallow()
	if s.Grid != nil {
		c.Grid = s.Grid.Clone()
	}
	return c
}

// shallow copies everything except the grid, which stays shared.
func (s GameState) shallow() GameState {
	if s.TimeRemaining != nil {
		r := *s.TimeRemaining
		s.TimeRemaining = &r
	}
	return s
}

// turn is the slice of session data a single event may replace.
type turn struct {
	state    GameState
	history  *History
	powerUps PowerUps
}

// deps are the collaborators transitions draw randomness and ids from.
type deps struct {
	rng   *rand.Rand
	ids   *IDGenerator
	rules Rules
}

// MoveOutcome reports what a move attempt did.
type MoveOutcome struct {
	Moved         bool
	RawScore      int // Sum of merged values
	Points        int // RawScore after the combo multiplier
	MergeCount    int
	MaxMergeValue int
	Spawned       *Tile
	NewlyWon      bool
	NewlyOver     bool
}

// PowerUpOutcome reports what a power-up attempt did.
type PowerUpOutcome struct {
	Success bool
	Removed int // Tiles deleted by remove or bomb
}

// newSessionState builds the opening state of a session with two spawned tiles.
func newSessionState(mode Mode, sessionID string, bestScore int, now time.Time, d deps) GameState {
	grid := NewGrid(d.rules.Size)
	SpawnTile(grid, d.rng, d.ids, d.rules.Spawn4Chance)
	SpawnTile(grid, d.rng, d.ids, d.rules.Spawn4Chance)

	st := GameState{
		SessionID: sessionID,
		Grid:      grid,
		BestScore: bestScore,
		StartTime: now,
		Mode:      mode,
	}
	if mode.Timed() {
		remaining := d.rules.TimeLimit
		st.TimeRemaining = &remaining
	}
	return st
}

// moveAllowed reports whether the state accepts move input at all.
func moveAllowed(st GameState) bool {
	if st.GameOver && !st.Mode.Endless() {
		return false
	}
	if st.Won && !st.KeepPlaying {
		return false
	}
	return true
}

// applyMove resolves a move. The input turn is never modified; when nothing
// changes the same turn is returned.
func applyMove(t turn, dir Direction, d deps) (turn, MoveOutcome) {
	if !moveAllowed(t.state) || !dir.Valid() {
		return t, MoveOutcome{}
	}

	res := Move(t.state.Grid.Clone(), dir, d.ids)
	if !res.Moved {
		// A stuck board ends the game on the next attempt, except in zen.
		if !t.state.Mode.Endless() && !t.state.GameOver && !MovesAvailable(t.state.Grid) {
			next := t
			next.state = t.state.Clone()
			next.state.GameOver = true
			return next, MoveOutcome{NewlyOver: true}
		}
		return t, MoveOutcome{}
	}

	history := t.history.Clone()
	history.Push(HistoryEntry{Grid: t.state.Grid, Score: t.state.Score, MoveCount: t.state.MoveCount})

	st := t.state.shallow()
	st.Grid = res.Grid
	st.ComboCount = nextCombo(st.ComboCount, res.MergeCount)
	st.PeakCombo = max(st.PeakCombo, st.ComboCount)

	out := MoveOutcome{
		Moved:         true,
		RawScore:      res.Score,
		Points:        ComboScore(res.Score, st.ComboCount),
		MergeCount:    res.MergeCount,
		MaxMergeValue: res.MaxMergeValue,
	}
	st.Score += out.Points
	st.BestScore = max(st.BestScore, st.Score)
	st.MoveCount++
	if res.MaxMergeValue > 0 {
		st.LastMergeValue = res.MaxMergeValue
	}

	if spawned, ok := SpawnTile(st.Grid, d.rng, d.ids, d.rules.Spawn4Chance); ok {
		out.Spawned = &spawned
	}

	if HasReached(st.Grid, d.rules.WinTile) && !st.Won {
		st.Won = true
		out.NewlyWon = true
	}
	if !st.Mode.Endless() && !MovesAvailable(st.Grid) {
		st.GameOver = true
		out.NewlyOver = true
	}

	return turn{state: st, history: history, powerUps: t.powerUps.coolDown()}, out
}

// powerUpAllowed reports whether the state accepts power-up input.
func powerUpAllowed(st GameState) bool {
	return st.Mode.Endless() || st.Status() == StatusActive
}

// applyPowerUp runs one power-up against copies of the turn's data.
func applyPowerUp(t turn, id PowerUpID, d deps) (turn, PowerUpOutcome) {
	p, ok := t.powerUps.Find(id)
	if !ok || !p.Ready() || !powerUpAllowed(t.state) {
		return t, PowerUpOutcome{}
	}

	next := turn{state: t.state.shallow(), history: t.history, powerUps: t.powerUps}
	var out PowerUpOutcome

	switch id {
	case PowerUndo:
		history := t.history.Clone()
		entry, ok := history.Pop()
		if !ok {
			return t, PowerUpOutcome{}
		}
		next.history = history
		next.state.Grid = entry.Grid.Clone()
		next.state.Score = entry.Score
		next.state.MoveCount = entry.MoveCount
		next.state.GameOver = false
		out.Success = true

	case PowerShuffle:
		grid := t.state.Grid.Clone()
		if !ShuffleTiles(grid, d.rng) {
			return t, PowerUpOutcome{}
		}
		next.state.Grid = grid
		out.Success = true

	case PowerRemove:
		grid := t.state.Grid.Clone()
		if !RemoveLowestTile(grid, d.rng) {
			return t, PowerUpOutcome{}
		}
		next.state.Grid = grid
		out = PowerUpOutcome{Success: true, Removed: 1}

	case PowerBomb:
		grid := t.state.Grid.Clone()
		removed := BombTiles(grid)
		if removed == 0 {
			return t, PowerUpOutcome{}
		}
		next.state.Grid = grid
		out = PowerUpOutcome{Success: true, Removed: removed}

	default:
		return t, PowerUpOutcome{}
	}

	next.powerUps = t.powerUps.consume(id)
	return next, out
}

// applyTick advances the time attack countdown to now. It reports true when
// this tick ran the clock out.
func applyTick(st GameState, now time.Time, rules Rules) (GameState, bool) {
	if !st.Mode.Timed() || st.Status() != StatusActive {
		return st, false
	}

	remaining := max(rules.TimeLimit-now.Sub(st.StartTime), 0)
	next := st.shallow()
	next.TimeRemaining = &remaining
	if remaining > 0 {
		return next, false
	}
	next.GameOver = true
	return next, true
}

// applyComboDecay ends the current combo streak.
func applyComboDecay(st GameState) GameState {
	next := st.shallow()
	next.ComboCount = 0
	return next
}

// applyKeepPlaying dismisses a win so play can continue.
func applyKeepPlaying(st GameState) (GameState, bool) {
	if st.Status() != StatusWon {
		return st, false
	}
	next := st.shallow()
	next.KeepPlaying = true
	return next, true
}
