// Package garden prices the fencing of a garden map: a rectangular grid of
// plant symbols whose maximal 4-connected groups of equal symbols form
// regions. The price of a region is area × perimeter; the price of the
// garden is the sum over every region.
//
// What:
//
//   - ParseGrid validates text input into a rectangular [][]rune.
//   - Merger streams a grid row by row: each row is chunked into runs, the
//     runs are merge-joined against the previous row with a two-pointer
//     sweep, and regions are created, extended or merged in a region.Registry.
//   - Cost sums area × perimeter over finalised regions.
//   - TotalPrice and Analyze wire the stages together.
//
// Why streaming:
//
//   - Only the previous row's runs and the live region totals are kept, so
//     memory is O(W + regions) instead of O(W×H) visited flags.
//   - Rows may be chunked ahead of time, concurrently, or from a cache; only
//     the merge itself is a strict top-to-bottom fold.
//
// Complexity:
//
//   - Merger.Step: O(Rc + Rp) per row (runs in current and previous row),
//     plus near-constant redirect resolution.
//   - TotalPrice:  O(W×H) time, O(W + regions) merge state.
//
// Options:
//
//   - WithLogger:     structured log sink (default discards).
//   - WithWorkers:    chunk rows with N goroutines before merging.
//   - WithChunkCache: memoise chunking of repeated rows.
//   - WithContext:    cancellation for the parallel chunk stage.
//   - WithOnRow, WithOnMerge: observation hooks.
//
// Errors:
//
//   - ErrEmptyInput, ErrRaggedRows: malformed input, rejected before merging.
//   - ErrRowShape: runs handed to Step do not tile a row of the grid's width.
//   - ErrInvariant: internal accounting fault; never expected for valid input.
//   - ErrOptionViolation: an Option was given an invalid value.
package garden
