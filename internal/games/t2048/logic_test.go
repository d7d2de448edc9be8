package t2048

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestMoveRow(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		input    [4]int
		expected [4]int
		score    int
		merges   int
	}{
		{
			name:     "simple merge",
			dir:      DirLeft,
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "merge with trailing tile",
			dir:      DirLeft,
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "double merge",
			dir:      DirLeft,
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
			merges:   2,
		},
		{
			name:     "no chain merge",
			dir:      DirLeft,
			input:    [4]int{4, 4, 4, 4},
			expected: [4]int{8, 8, 0, 0},
			score:    16,
			merges:   2,
		},
		{
			name:     "merged tile does not merge again",
			dir:      DirLeft,
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "no merge possible",
			dir:      DirLeft,
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			dir:      DirLeft,
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "slide with multiple gaps",
			dir:      DirLeft,
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
			merges:   1,
		},
		{
			name:     "right merges nearest the edge first",
			dir:      DirRight,
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{0, 0, 2, 4},
			score:    4,
			merges:   1,
		},
		{
			name:     "right double merge",
			dir:      DirRight,
			input:    [4]int{2, 2, 4, 4},
			expected: [4]int{0, 0, 4, 8},
			score:    12,
			merges:   2,
		},
		{
			name:     "empty row",
			dir:      DirLeft,
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids IDGenerator
			values := [][]int{tt.input[:], make([]int, 4), make([]int, 4), make([]int, 4)}
			res := Move(GridFromValues(values, &ids), tt.dir, &ids)

			got := res.Grid.Values()[0]
			if !reflect.DeepEqual(got, tt.expected[:]) {
				t.Errorf("Move(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if res.Score != tt.score {
				t.Errorf("score = %d, want %d", res.Score, tt.score)
			}
			if res.MergeCount != tt.merges {
				t.Errorf("merges = %d, want %d", res.MergeCount, tt.merges)
			}
			if res.Moved != !reflect.DeepEqual(tt.input, tt.expected) {
				t.Errorf("moved = %v for %v -> %v", res.Moved, tt.input, tt.expected)
			}
		})
	}
}

func TestMoveVertical(t *testing.T) {
	var ids IDGenerator
	g := GridFromValues([][]int{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{4, 0, 0, 8},
	}, &ids)

	res := Move(g, DirUp, &ids)
	want := [][]int{
		{4, 0, 0, 8},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if !reflect.DeepEqual(res.Grid.Values(), want) {
		t.Errorf("Up = %v, want %v", res.Grid.Values(), want)
	}
	if res.Score != 12 || res.MaxMergeValue != 8 {
		t.Errorf("score = %d, max merge = %d, want 12 and 8", res.Score, res.MaxMergeValue)
	}

	res = Move(res.Grid, DirDown, &ids)
	want = [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{4, 0, 0, 0},
		{8, 0, 0, 8},
	}
	if !reflect.DeepEqual(res.Grid.Values(), want) {
		t.Errorf("Down = %v, want %v", res.Grid.Values(), want)
	}
}

func TestMoveTileBookkeeping(t *testing.T) {
	var ids IDGenerator
	g := GridFromValues([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, &ids)
	before := ids.last

	res := Move(g, DirLeft, &ids)
	tile, ok := res.Grid.Cell(Position{X: 0, Y: 0})
	if !ok {
		t.Fatal("expected merged tile at (0,0)")
	}
	if !tile.Merged() || len(tile.MergedFrom) != 2 {
		t.Fatalf("expected merged tile with two sources, got %+v", tile)
	}
	if tile.ID <= before {
		t.Errorf("merged tile id %d should be fresh (last was %d)", tile.ID, before)
	}
	if tile.PreviousPosition == nil || *tile.PreviousPosition != (Position{X: 1, Y: 0}) {
		t.Errorf("merged tile previous position = %v, want (1,0)", tile.PreviousPosition)
	}

	// The next move clears merge markers
	res = Move(res.Grid, DirRight, &ids)
	tile, _ = res.Grid.Cell(Position{X: 3, Y: 0})
	if tile.Merged() {
		t.Error("merge marker should be cleared on the next move")
	}
	if tile.PreviousPosition == nil || *tile.PreviousPosition != (Position{X: 0, Y: 0}) {
		t.Errorf("previous position = %v, want (0,0)", tile.PreviousPosition)
	}
}

func TestMoveConservesValue(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for i := range 200 {
		var ids IDGenerator
		g := NewGrid(4)
		for range 1 + rng.Intn(16) {
			SpawnTile(g, rng, &ids, 0.3)
		}
		count, sum := g.TileCount(), g.Sum()

		res := Move(g, dirs[i%len(dirs)], &ids)
		if got := res.Grid.TileCount(); got != count-res.MergeCount {
			t.Fatalf("tile count %d, want %d - %d", got, count, res.MergeCount)
		}
		if got := res.Grid.Sum(); got != sum {
			t.Fatalf("sum %d, want %d", got, sum)
		}
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	var ids IDGenerator
	g := GridFromValues([][]int{{2, 2}, {0, 0}}, &ids)
	res := Move(g, Direction(9), &ids)
	if res.Moved {
		t.Error("invalid direction should not move")
	}
}

func TestSpawnTile(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var ids IDGenerator
	g := NewGrid(4)

	for i := range 16 {
		tile, ok := SpawnTile(g, rng, &ids, DefaultSpawn4Chance)
		if !ok {
			t.Fatalf("spawn %d failed on a non-full board", i)
		}
		if tile.Value != 2 && tile.Value != 4 {
			t.Errorf("spawned value %d, want 2 or 4", tile.Value)
		}
		if !tile.IsNew {
			t.Error("spawned tile should be marked new")
		}
	}

	if _, ok := SpawnTile(g, rng, &ids, DefaultSpawn4Chance); ok {
		t.Error("spawn should fail on a full board")
	}
	if g.TileCount() != 16 {
		t.Errorf("tile count = %d, want 16", g.TileCount())
	}
}

func TestSpawnTileProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	var ids IDGenerator
	fours := 0
	const n = 5000
	for range n {
		g := NewGrid(4)
		if tile, _ := SpawnTile(g, rng, &ids, 0.1); tile.Value == 4 {
			fours++
		}
	}
	ratio := float64(fours) / n
	if ratio < 0.07 || ratio > 0.13 {
		t.Errorf("4 spawn ratio = %.3f, want about 0.1", ratio)
	}
}

func TestMovesAvailable(t *testing.T) {
	tests := []struct {
		name   string
		values [][]int
		want   bool
	}{
		{
			name:   "empty cell",
			values: [][]int{{2, 4}, {8, 0}},
			want:   true,
		},
		{
			name:   "horizontal merge",
			values: [][]int{{2, 2}, {4, 8}},
			want:   true,
		},
		{
			name:   "vertical merge",
			values: [][]int{{2, 4}, {2, 8}},
			want:   true,
		},
		{
			name:   "stuck",
			values: [][]int{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids IDGenerator
			if got := MovesAvailable(GridFromValues(tt.values, &ids)); got != tt.want {
				t.Errorf("MovesAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasWon(t *testing.T) {
	var ids IDGenerator
	g := GridFromValues([][]int{{1024, 512}, {0, 0}}, &ids)
	if HasWon(g) {
		t.Error("1024 should not win")
	}
	g.Insert(Tile{ID: ids.Next(), Value: 2048, Position: Position{X: 0, Y: 1}})
	if !HasWon(g) {
		t.Error("2048 should win")
	}
	if HighestTile(g) != 2048 {
		t.Errorf("HighestTile() = %d, want 2048", HighestTile(g))
	}
	if low, ok := LowestTile(g); !ok || low != 512 {
		t.Errorf("LowestTile() = %d, %v, want 512, true", low, ok)
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"up", "down", "left", "right"} {
		dir, ok := ParseDirection(name)
		if !ok || dir.String() != name {
			t.Errorf("ParseDirection(%q) = %v, %v", name, dir, ok)
		}
	}
	if _, ok := ParseDirection("diagonal"); ok {
		t.Error("unknown direction should not parse")
	}
	if dir, ok := ParseDirection(" LEFT "); !ok || dir != DirLeft {
		t.Errorf("ParseDirection is case-insensitive, got %v, %v", dir, ok)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	var ids IDGenerator
	g := GridFromValues([][]int{{2, 0}, {0, 4}}, &ids)
	c := g.Clone()
	c.Remove(Position{X: 0, Y: 0})

	if !g.Occupied(Position{X: 0, Y: 0}) {
		t.Error("removing from a clone changed the original")
	}
	if c.TileCount() != 1 || g.TileCount() != 2 {
		t.Errorf("tile counts = %d/%d, want 1/2", c.TileCount(), g.TileCount())
	}
}
