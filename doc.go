// Package plotfence prices the fencing of garden maps: rectangular grids
// of plant symbols whose 4-connected groups of equal symbols form regions,
// each costing area × perimeter.
//
// Under the hood, everything is organized under four subpackages:
//
//	chunk/     — splits rows into runs of one symbol; parallel and cached variants
//	region/    — registry of live region totals plus redirects of merged-away IDs
//	garden/    — streaming row merger, cost aggregation and the TotalPrice entry point
//	gridgraph/ — whole-grid flood-fill analysis, used as an independent reference
//
// Quick ASCII example:
//
//	A B A
//	A A A
//
//	is one A region (area 5, perimeter 12) around one B cell (area 1,
//	perimeter 4): 5·12 + 1·4 = 64.
//
// The command in cmd/plotfence reads a map from a file or stdin and prints
// its price.
package plotfence
