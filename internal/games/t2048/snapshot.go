package t2048

// Snapshot is a read-only copy of everything a front end needs after an event.
type Snapshot struct {
	SessionID   string
	Mode        Mode
	Status      Status
	State       GameState
	Board       [][]int // Row-major values, 0 for empty
	Tiles       []Tile
	HighestTile int
	Multiplier  float64 // Multiplier the current combo would apply
	PowerUps    PowerUps
	Stats       GameStats
	UndoDepth   int
	Locked      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.state.Clone()
	return Snapshot{
		SessionID:   st.SessionID,
		Mode:        st.Mode,
		Status:      st.Status(),
		State:       st,
		Board:       st.Grid.Values(),
		Tiles:       st.Grid.Tiles(),
		HighestTile: HighestTile(st.Grid),
		Multiplier:  ComboMultiplier(st.ComboCount),
		PowerUps:    g.powerUps.Clone(),
		Stats:       g.stats.Clone(),
		UndoDepth:   g.history.Len(),
		Locked:      g.Locked(),
	}
}
