package gridgraph

import "fmt"

// ConnectedComponents finds all contiguous regions of cells holding the same
// symbol, according to gg.Conn connectivity. Every cell belongs to exactly one
// component. Components are listed in the row-major order of their first
// cell; each is a slice of cell indices (row-major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	comps, _ := gg.label()
	return comps
}

// label runs the BFS and also returns the component number of every cell.
func (gg *GridGraph) label() ([][]int, []int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to collect component
			id := len(comps)
			sym := gg.Cells[y][x]
			queue := []int{i0}
			labels[i0] = id

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || gg.Cells[vy][vx] != sym {
						continue
					}
					vi := gg.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps, labels
}

// Regions measures every component: its symbol, its area, and its perimeter,
// the number of unit cell edges shared with a different component or lying on
// the grid border. Results are in ConnectedComponents order.
//
// Perimeter is always measured across the four orthogonal sides of a cell,
// whatever the connectivity.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (gg *GridGraph) Regions() []RegionStats {
	comps, labels := gg.label()
	stats := make([]RegionStats, len(comps))
	sides := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for id, comp := range comps {
		x0, y0 := gg.Coordinate(comp[0])
		s := RegionStats{Symbol: gg.Cells[y0][x0], Area: len(comp)}
		for _, u := range comp {
			ux, uy := gg.Coordinate(u)
			for _, d := range sides {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) || labels[gg.index(vx, vy)] != id {
					s.Perimeter++
				}
			}
		}
		stats[id] = s
	}
	return stats
}

// Region returns the stats of component i.
// Returns ErrComponentIndex if i is out of range.
func (gg *GridGraph) Region(i int) (RegionStats, error) {
	stats := gg.Regions()
	if i < 0 || i >= len(stats) {
		return RegionStats{}, fmt.Errorf("%w: %d not in [0,%d)", ErrComponentIndex, i, len(stats))
	}
	return stats[i], nil
}

// TotalPrice returns the sum of area × perimeter over all components.
func (gg *GridGraph) TotalPrice() int {
	total := 0
	for _, s := range gg.Regions() {
		total += s.Area * s.Perimeter
	}
	return total
}
