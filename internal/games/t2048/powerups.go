package t2048

import "math/rand"

// PowerUpID names a power-up.
type PowerUpID string

const (
	PowerUndo    PowerUpID = "undo"
	PowerShuffle PowerUpID = "shuffle"
	PowerRemove  PowerUpID = "remove"
	PowerBomb    PowerUpID = "bomb"
)

// PowerUpIDs lists the power-ups in display order.
var PowerUpIDs = []PowerUpID{PowerUndo, PowerShuffle, PowerRemove, PowerBomb}

// ParsePowerUpID validates a power-up name.
func ParsePowerUpID(s string) (PowerUpID, bool) {
	for _, id := range PowerUpIDs {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

// PowerUp is a limited-use action gated by a cooldown counted in moves.
type PowerUp struct {
	ID          PowerUpID
	Name        string
	Description string

	Uses            int // Uses left
	MaxUses         int
	Cooldown        int // Moves to wait after each use
	CurrentCooldown int // Moves left before the next use
}

// Ready reports whether the power-up has uses left and is off cooldown.
func (p PowerUp) Ready() bool {
	return p.Uses > 0 && p.CurrentCooldown == 0
}

// PowerUpBudget sets the budget for one power-up.
type PowerUpBudget struct {
	Uses     int
	Cooldown int
}

// DefaultPowerUpBudgets returns the stock budget for each power-up.
func DefaultPowerUpBudgets() map[PowerUpID]PowerUpBudget {
	return map[PowerUpID]PowerUpBudget{
		PowerUndo:    {Uses: 3, Cooldown: 0},
		PowerShuffle: {Uses: 2, Cooldown: 5},
		PowerRemove:  {Uses: 3, Cooldown: 3},
		PowerBomb:    {Uses: 1, Cooldown: 10},
	}
}

var powerUpText = map[PowerUpID][2]string{
	PowerUndo:    {"Undo", "Undo last move"},
	PowerShuffle: {"Shuffle", "Shuffle all tiles"},
	PowerRemove:  {"Remove", "Remove lowest tile"},
	PowerBomb:    {"Bomb", "Remove all lowest value tiles"},
}

// PowerUps is the set of power-ups available in a session, in display order.
type PowerUps []PowerUp

// NewPowerUps builds a full set from budgets. Missing budgets fall back to defaults.
func NewPowerUps(budgets map[PowerUpID]PowerUpBudget) PowerUps {
	defaults := DefaultPowerUpBudgets()
	out := make(PowerUps, 0, len(PowerUpIDs))
	for _, id := range PowerUpIDs {
		budget, ok := budgets[id]
		if !ok {
			budget = defaults[id]
		}
		text := powerUpText[id]
		out = append(out, PowerUp{
			ID:          id,
			Name:        text[0],
			Description: text[1],
			Uses:        budget.Uses,
			MaxUses:     budget.Uses,
			Cooldown:    budget.Cooldown,
		})
	}
	return out
}

// Find returns the power-up with the given id.
func (ps PowerUps) Find(id PowerUpID) (PowerUp, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return PowerUp{}, false
}

// Clone returns an independent copy.
func (ps PowerUps) Clone() PowerUps {
	return append(PowerUps(nil), ps...)
}

// coolDown returns a copy with every cooldown reduced by one move.
func (ps PowerUps) coolDown() PowerUps {
	out := ps.Clone()
	for i := range out {
		out[i].CurrentCooldown = max(0, out[i].CurrentCooldown-1)
	}
	return out
}

// consume returns a copy where id has spent one use and restarted its cooldown.
func (ps PowerUps) consume(id PowerUpID) PowerUps {
	out := ps.Clone()
	for i := range out {
		if out[i].ID == id {
			out[i].Uses--
			out[i].CurrentCooldown = out[i].Cooldown
		}
	}
	return out
}

// ShuffleTiles moves every tile to a random permutation of the occupied
// positions, keeping ids and values. It reports false on an empty grid.
func ShuffleTiles(g *Grid, rng *rand.Rand) bool {
	tiles := g.Tiles()
	if len(tiles) == 0 {
		return false
	}

	positions := make([]Position, len(tiles))
	for i, t := range tiles {
		positions[i] = t.Position
	}
	// Fisher-Yates
	for i := len(positions) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}

	for _, t := range tiles {
		g.Remove(t.Position)
	}
	for i, t := range tiles {
		prev := t.Position
		t.PreviousPosition = &prev
		t.Position = positions[i]
		t.IsNew = false
		g.Insert(t)
	}
	return true
}

// RemoveLowestTile deletes one random tile among those holding the lowest
// value. It reports false on an empty grid.
func RemoveLowestTile(g *Grid, rng *rand.Rand) bool {
	lowest, ok := LowestTile(g)
	if !ok {
		return false
	}

	var candidates []Position
	for _, t := range g.Tiles() {
		if t.Value == lowest {
			candidates = append(candidates, t.Position)
		}
	}
	return g.Remove(candidates[rng.Intn(len(candidates))])
}

// BombTiles deletes every tile holding the lowest value and returns how many
// were removed.
func BombTiles(g *Grid) int {
	lowest, ok := LowestTile(g)
	if !ok {
		return 0
	}

	removed := 0
	for _, t := range g.Tiles() {
		if t.Value == lowest && g.Remove(t.Position) {
			removed++
		}
	}
	return removed
}
