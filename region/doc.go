// Package region keeps the running area/perimeter totals of the regions
// discovered while a grid is streamed row by row.
//
// A Registry maps a region ID to its live Region accumulator, plus a
// redirect table for IDs whose region was later found to be part of
// another one. The redirect table is a lightweight union-find: lookups
// follow redirects to the surviving ID and compress the chain as they go.
//
// IDs are the (row, column) of the first run that opened the region, so
// they are unique without a global counter. A retired ID is never live
// again.
package region
