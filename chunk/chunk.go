package chunk

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Split groups consecutive equal symbols of row into runs.
// The runs are sorted left to right, pairwise disjoint, and together cover
// every column of row. An empty row yields nil.
// Complexity: O(len(row)).
func Split(row []rune) []Run {
	if len(row) == 0 {
		return nil
	}
	runs := make([]Run, 0, 8)
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x] == row[start] {
			continue
		}
		runs = append(runs, Run{Symbol: row[start], Start: start, End: x})
		start = x
	}

	return runs
}

// SplitAll chunks every row of rows using at most workers goroutines.
// out[y] always holds the runs of rows[y], whatever order the workers finish in.
// Returns ErrBadWorkers if workers <= 0, or ctx.Err() if ctx is cancelled
// before all rows are chunked.
func SplitAll(ctx context.Context, rows [][]rune, workers int) ([][]Run, error) {
	return splitAll(ctx, rows, workers, Split)
}

// splitAll fans rows out to split; each worker writes only its own slot of out.
func splitAll(ctx context.Context, rows [][]rune, workers int, split func([]rune) []Run) ([][]Run, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, workers)
	}
	out := make([][]Run, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := range rows {
		// cancellation check (once per row)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[y] = split(rows[y])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done after Wait; only the caller's ctx tells a real cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
