// Package gridgraph provides utilities to treat a 2D grid of symbols
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of equal symbols
//   - Area, perimeter and fencing price of every component
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(cells [][]rune, opts GridOptions) (*GridGraph, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]rune, h)
	for y := 0; y < h; y++ {
		cp[y] = make([]rune, w)
		copy(cp[y], cells[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:   w,
		Height:  h,
		Cells:   cp,
		Conn:    opts.Conn,
		offsets: offsets,
	}, nil
}

// From2D is shorthand for NewGridGraph with the given connectivity.
func From2D(cells [][]rune, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(cells, GridOptions{Conn: conn})
}

// FromLines builds a Conn4 GridGraph with one row per string.
func FromLines(lines ...string) (*GridGraph, error) {
	cells := make([][]rune, len(lines))
	for y, l := range lines {
		cells[y] = []rune(l)
	}
	return From2D(cells, Conn4)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
