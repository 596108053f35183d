// Package gridgraph treats a 2D grid of symbols as a graph, enabling
// whole-grid region analysis by flood fill.
//
// What:
//
//   - GridGraph wraps a rectangular [][]rune grid.
//   - Identifies connected components of cells holding the same symbol.
//   - Measures each component's area and perimeter and the total fencing price.
//
// Why:
//
//   - Reference answer: it keeps every cell in memory and labels it, so it is a
//     simple, independent cross-check for the streaming analysis in package garden.
//   - Labelled output: callers that need to know which cell belongs to which
//     region get it from ConnectedComponents.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Regions, TotalPrice: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
