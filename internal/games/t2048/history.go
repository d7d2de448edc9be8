package t2048

// DefaultHistoryDepth is how many snapshots undo can reach back.
const DefaultHistoryDepth = 10

// HistoryEntry is a snapshot of the board taken just before a move.
type HistoryEntry struct {
	Grid      *Grid
	Score     int
	MoveCount int
}

// History is a bounded stack of snapshots. When full, pushing drops the oldest.
type History struct {
	depth   int
	entries []HistoryEntry
}

// NewHistory creates an empty history holding at most depth entries.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Push stores a copy of e.
func (h *History) Push(e HistoryEntry) {
	e.Grid = e.Grid.Clone()
	if len(h.entries) == h.depth {
		h.entries = append(h.entries[:0], h.entries[1:]...)
	}
	h.entries = append(h.entries, e)
}

// Pop removes and returns the most recent entry.
func (h *History) Pop() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Depth returns the capacity.
func (h *History) Depth() int {
	return h.depth
}

// Clone returns an independent copy.
func (h *History) Clone() *History {
	c := &History{depth: h.depth, entries: make([]HistoryEntry, len(h.entries))}
	for i, e := range h.entries {
		e.Grid = e.Grid.Clone()
		c.entries[i] = e
	}
	return c
}
