package garden

import (
	"fmt"
	"time"

	"github.com/katalvlaran/plotfence/chunk"
)

// TotalPrice parses text as a garden map and returns the sum of
// area × perimeter over all of its regions.
// Malformed input is rejected before any row is merged; no partial total is
// ever returned alongside an error.
func TotalPrice(text string, opts ...Option) (int, error) {
	rep, err := Analyze(text, opts...)
	if err != nil {
		return 0, err
	}

	return rep.Total, nil
}

// Analyze parses text and prices it, returning every region alongside the total.
func Analyze(text string, opts ...Option) (*Report, error) {
	grid, err := ParseGrid(text)
	if err != nil {
		return nil, err
	}

	return AnalyzeGrid(grid, opts...)
}

// AnalyzeGrid prices an already parsed grid.
// Returns ErrEmptyInput or ErrRaggedRows for malformed grids,
// ErrOptionViolation for bad options, or the chunk stage's cancellation error.
func AnalyzeGrid(grid [][]rune, opts ...Option) (*Report, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	w, h, err := validateGrid(grid)
	if err != nil {
		return nil, err
	}
	m, err := NewMerger(opts...)
	if err != nil {
		return nil, err
	}

	t0 := time.Now()
	split := chunk.Split
	var cache *chunk.Cache
	if o.CacheSize > 0 {
		if cache, err = chunk.NewCache(o.CacheSize); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
		}
		split = cache.Split
	}

	if o.Workers > 0 {
		var rows [][]chunk.Run
		if cache != nil {
			rows, err = cache.SplitAll(o.Ctx, grid, o.Workers)
		} else {
			rows, err = chunk.SplitAll(o.Ctx, grid, o.Workers)
		}
		if err != nil {
			return nil, fmt.Errorf("garden: chunking rows: %w", err)
		}
		for _, runs := range rows {
			if err := m.Step(runs); err != nil {
				return nil, err
			}
		}
	} else {
		for _, row := range grid {
			if err := m.Step(split(row)); err != nil {
				return nil, err
			}
		}
	}

	regions := m.Regions()
	rep := &Report{Width: w, Height: h, Regions: regions, Total: Cost(regions)}
	o.Logger.Info("garden priced",
		"width", w, "height", h,
		"regions", len(regions), "merges", m.Merges(),
		"total", rep.Total, "elapsed", time.Since(t0))

	return rep, nil
}
