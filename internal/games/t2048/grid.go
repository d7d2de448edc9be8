package t2048

// DefaultBoardSize is the default board dimension.
const DefaultBoardSize = 4

// Position is a cell coordinate. X grows to the right, Y grows downwards.
type Position struct {
	X, Y int
}

// Add returns the position offset by v.
func (p Position) Add(v Position) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Tile is a single board-resident value.
type Tile struct {
	ID       uint64
	Value    int
	Position Position

	// PreviousPosition is where the tile was before the last move, if anywhere.
	PreviousPosition *Position

	// MergedFrom holds the two source tiles when this tile was produced by a
	// merge during the current move. A non-nil value also marks the tile as
	// already merged, so it cannot merge again in the same move.
	MergedFrom []Tile

	IsNew bool
}

// Merged reports whether the tile was produced by a merge in the last move.
func (t *Tile) Merged() bool {
	return t.MergedFrom != nil
}

// clone returns a deep copy of the tile.
func (t *Tile) clone() *Tile {
	c := *t
	if t.PreviousPosition != nil {
		prev := *t.PreviousPosition
		c.PreviousPosition = &prev
	}
	if t.MergedFrom != nil {
		c.MergedFrom = make([]Tile, len(t.MergedFrom))
		for i := range t.MergedFrom {
			c.MergedFrom[i] = *t.MergedFrom[i].clone()
		}
	}
	return &c
}

// IDGenerator hands out tile IDs for one session.
// IDs are unique and strictly increasing; the zero value starts at 1.
type IDGenerator struct {
	last uint64
}

// Next returns a fresh tile ID.
func (g *IDGenerator) Next() uint64 {
	g.last++
	return g.last
}

// Grid is a square board of cells, each holding at most one tile.
// Cells are indexed [y][x].
type Grid struct {
	size  int
	cells [][]*Tile
}

// NewGrid creates an empty size x size grid.
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = DefaultBoardSize
	}
	cells := make([][]*Tile, size)
	for y := range cells {
		cells[y] = make([]*Tile, size)
	}
	return &Grid{size: size, cells: cells}
}

// GridFromValues builds a grid from a row-major value matrix. Zero means empty.
// Tiles get IDs from ids in row-major order.
func GridFromValues(values [][]int, ids *IDGenerator) *Grid {
	g := NewGrid(len(values))
	for y, row := range values {
		for x, v := range row {
			if v == 0 || x >= g.size {
				continue
			}
			g.Insert(Tile{ID: ids.Next(), Value: v, Position: Position{X: x, Y: y}})
		}
	}
	return g
}

// Size returns the board dimension.
func (g *Grid) Size() int {
	return g.size
}

// Within reports whether p lies on the board.
func (g *Grid) Within(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// at returns the tile stored at p, or nil. p must be within bounds.
func (g *Grid) at(p Position) *Tile {
	return g.cells[p.Y][p.X]
}

// put stores t at p (t may be nil). p must be within bounds.
func (g *Grid) put(p Position, t *Tile) {
	g.cells[p.Y][p.X] = t
}

// Cell returns a copy of the tile at p and whether the cell was occupied.
func (g *Grid) Cell(p Position) (Tile, bool) {
	if !g.Within(p) {
		return Tile{}, false
	}
	t := g.at(p)
	if t == nil {
		return Tile{}, false
	}
	return *t.clone(), true
}

// Occupied reports whether a tile sits at p.
func (g *Grid) Occupied(p Position) bool {
	return g.Within(p) && g.at(p) != nil
}

// Insert places t at t.Position, replacing whatever was there.
// Positions outside the board are ignored.
func (g *Grid) Insert(t Tile) {
	if !g.Within(t.Position) {
		return
	}
	g.put(t.Position, t.clone())
}

// Remove clears the cell at p and reports whether a tile was removed.
func (g *Grid) Remove(p Position) bool {
	if !g.Occupied(p) {
		return false
	}
	g.put(p, nil)
	return true
}

// EmptyCells returns all free positions, column by column.
func (g *Grid) EmptyCells() []Position {
	var cells []Position
	for x := range g.size {
		for y := range g.size {
			if g.cells[y][x] == nil {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// Tiles returns copies of all tiles, column by column.
func (g *Grid) Tiles() []Tile {
	var tiles []Tile
	for x := range g.size {
		for y := range g.size {
			if t := g.cells[y][x]; t != nil {
				tiles = append(tiles, *t.clone())
			}
		}
	}
	return tiles
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	n := 0
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] != nil {
				n++
			}
		}
	}
	return n
}

// Sum returns the total value of all tiles.
func (g *Grid) Sum() int {
	sum := 0
	for y := range g.size {
		for x := range g.size {
			if t := g.cells[y][x]; t != nil {
				sum += t.Value
			}
		}
	}
	return sum
}

// Values returns the board as a row-major value matrix, zero for empty cells.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.size)
	for y := range g.size {
		out[y] = make([]int, g.size)
		for x := range g.size {
			if t := g.cells[y][x]; t != nil {
				out[y][x] = t.Value
			}
		}
	}
	return out
}

// Clone returns a deep copy that shares nothing with g.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.size)
	for y := range g.size {
		for x := range g.size {
			if t := g.cells[y][x]; t != nil {
				c.cells[y][x] = t.clone()
			}
		}
	}
	return c
}
