// Package chunk splits grid rows into runs: maximal horizontal stretches
// of one repeated symbol.
//
// What:
//
//   - Run describes one stretch as a symbol plus a half-open column range [Start, End).
//   - Split turns a single row into its ordered, disjoint runs covering the whole row.
//   - SplitAll chunks many rows concurrently and hands them back in row order.
//   - Cache memoises Split by row text with a fixed-size LRU.
//
// Why:
//
//   - Region analysis only ever needs to compare runs of adjacent rows, so a
//     row of W cells usually collapses to far fewer comparisons.
//   - Runs carry no region identity, so rows can be chunked ahead of time, in
//     parallel, or shared between identical rows.
//
// Complexity:
//
//   - Split:    O(W) time, O(R) memory (R = number of runs).
//   - SplitAll: O(W×H / workers) wall time, O(R×H) memory.
//
// Errors:
//
//   - ErrBadWorkers: SplitAll called with a non-positive worker count.
//   - ErrBadCacheSize: NewCache called with a non-positive size.
package chunk
