package chunk

import "errors"

// Sentinel errors for chunk operations.
var (
	// ErrBadWorkers indicates a non-positive worker count for SplitAll.
	ErrBadWorkers = errors.New("chunk: worker count must be positive")
	// ErrBadCacheSize indicates a non-positive LRU size for NewCache.
	ErrBadCacheSize = errors.New("chunk: cache size must be positive")
)

// Run is a maximal horizontal stretch of one symbol within a row.
// Columns are half-open: the run covers Start, Start+1, ..., End-1.
type Run struct {
	Symbol     rune
	Start, End int
}

// Len returns the number of cells covered by r.
func (r Run) Len() int {
	return r.End - r.Start
}

// Overlap returns the number of columns shared by r and o.
// The result is zero or negative when the ranges are disjoint.
// Symbols are ignored.
func (r Run) Overlap(o Run) int {
	return min(r.End, o.End) - max(r.Start, o.Start)
}
