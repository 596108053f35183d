package garden

import "github.com/katalvlaran/plotfence/region"

// Cost sums area × perimeter over regions. An empty slice costs 0.
func Cost(regions []region.Region) int {
	total := 0
	for _, r := range regions {
		total += r.Cost()
	}
	return total
}
