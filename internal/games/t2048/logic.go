package t2048

import (
	"math/rand"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// WinValue is the tile value that wins a game.
const WinValue = 2048

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection converts a symbolic direction (up/down/left/right) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return 0, false
	}
}

// vector returns the unit step for the direction.
func (d Direction) vector() Position {
	switch d {
	case DirUp:
		return Position{X: 0, Y: -1}
	case DirDown:
		return Position{X: 0, Y: 1}
	case DirLeft:
		return Position{X: -1, Y: 0}
	default:
		return Position{X: 1, Y: 0}
	}
}

// MoveResult is the outcome of resolving one move over a grid.
type MoveResult struct {
	Grid          *Grid
	Score         int // Sum of merged values, before any multiplier
	Moved         bool
	MergeCount    int
	MaxMergeValue int
}

// traversals returns the visiting order for each axis.
// Tiles nearest the destination edge come first.
func traversals(size int, vec Position) (xs, ys []int) {
	xs = make([]int, size)
	ys = make([]int, size)
	for i := range size {
		xs[i] = i
		ys[i] = i
	}
	if vec.X == 1 {
		reverse(xs)
	}
	if vec.Y == 1 {
		reverse(ys)
	}
	return xs, ys
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// findFarthest walks from cell along vec until it leaves the board or hits a tile.
// It returns the last free cell and, if a tile blocked the walk, its position.
func findFarthest(g *Grid, cell, vec Position) (farthest, next Position, blocked bool) {
	previous := cell
	current := cell.Add(vec)
	for g.Within(current) && g.at(current) == nil {
		previous = current
		current = current.Add(vec)
	}
	return previous, current, g.Within(current)
}

// prepareTiles clears per-move markers and records where each tile started.
func prepareTiles(g *Grid) {
	for y := range g.size {
		for x := range g.size {
			t := g.cells[y][x]
			if t == nil {
				continue
			}
			t.MergedFrom = nil
			t.IsNew = false
			prev := t.Position
			t.PreviousPosition = &prev
		}
	}
}

// Move slides every tile in dir, merging equal neighbours at most once each.
// The grid is modified in place and returned in the result; callers pass a copy
// they own. New merged tiles draw IDs from ids. Move never spawns tiles.
func Move(g *Grid, dir Direction, ids *IDGenerator) MoveResult {
	result := MoveResult{Grid: g}
	if !dir.Valid() {
		return result
	}

	vec := dir.vector()
	xs, ys := traversals(g.size, vec)
	prepareTiles(g)

	for _, x := range xs {
		for _, y := range ys {
			cell := Position{X: x, Y: y}
			tile := g.at(cell)
			if tile == nil {
				continue
			}

			farthest, next, blocked := findFarthest(g, cell, vec)
			var nextTile *Tile
			if blocked {
				nextTile = g.at(next)
			}

			if nextTile != nil && nextTile.Value == tile.Value && !nextTile.Merged() {
				tile.Position = next
				value := tile.Value * 2
				merged := &Tile{
					ID:               ids.Next(),
					Value:            value,
					Position:         next,
					PreviousPosition: &cell,
					MergedFrom:       []Tile{*tile.clone(), *nextTile.clone()},
				}
				g.put(cell, nil)
				g.put(next, merged)

				result.Score += value
				result.MergeCount++
				result.MaxMergeValue = max(result.MaxMergeValue, value)
				result.Moved = true
				continue
			}

			if farthest != cell {
				g.put(cell, nil)
				tile.Position = farthest
				g.put(farthest, tile)
				result.Moved = true
			}
		}
	}

	return result
}

// SpawnTile places a 2 (or a 4 with probability spawn4) at a uniformly random
// empty cell. It returns the new tile, or false when the board is full.
func SpawnTile(g *Grid, rng *rand.Rand, ids *IDGenerator, spawn4 float64) (Tile, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	cell := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < spawn4 {
		value = 4
	}

	t := Tile{ID: ids.Next(), Value: value, Position: cell, IsNew: true}
	g.Insert(t)
	return t, true
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g *Grid) bool {
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] == nil {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold equal values.
func HasPossibleMerge(g *Grid) bool {
	for y := range g.size {
		for x := range g.size {
			t := g.cells[y][x]
			if t == nil {
				continue
			}
			// Check right neighbor
			if x < g.size-1 {
				if r := g.cells[y][x+1]; r != nil && r.Value == t.Value {
					return true
				}
			}
			// Check bottom neighbor
			if y < g.size-1 {
				if b := g.cells[y+1][x]; b != nil && b.Value == t.Value {
					return true
				}
			}
		}
	}
	return false
}

// MovesAvailable returns true if any move is possible.
func MovesAvailable(g *Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// HasWon reports whether some tile has reached WinValue.
func HasWon(g *Grid) bool {
	return HasReached(g, WinValue)
}

// HasReached reports whether some tile value is at least target.
func HasReached(g *Grid, target int) bool {
	return HighestTile(g) >= target
}

// HighestTile returns the maximum tile value on the board, 0 when empty.
func HighestTile(g *Grid) int {
	highest := 0
	for y := range g.size {
		for x := range g.size {
			if t := g.cells[y][x]; t != nil && t.Value > highest {
				highest = t.Value
			}
		}
	}
	return highest
}

// LowestTile returns the minimum tile value on the board and false when empty.
func LowestTile(g *Grid) (int, bool) {
	lowest, found := 0, false
	for y := range g.size {
		for x := range g.size {
			t := g.cells[y][x]
			if t == nil {
				continue
			}
			if !found || t.Value < lowest {
				lowest, found = t.Value, true
			}
		}
	}
	return lowest, found
}
