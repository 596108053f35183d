package region

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry operations.
var (
	// ErrDuplicateID is returned by Create when the ID is live or was retired.
	ErrDuplicateID = errors.New("region: id already used")
	// ErrUnknownID is returned when an ID is neither live nor redirected.
	ErrUnknownID = errors.New("region: unknown id")
	// ErrSymbolMismatch is returned by Merge when the two regions hold different symbols.
	ErrSymbolMismatch = errors.New("region: cannot merge regions of different symbols")
	// ErrBadRegion is returned by Create for a non-positive area or negative perimeter.
	ErrBadRegion = errors.New("region: area must be positive and perimeter non-negative")
)

// ID identifies a region by the row and starting column of its first run.
type ID struct {
	Row, Col int
}

// String formats the ID as "row:col".
func (id ID) String() string {
	return fmt.Sprintf("%d:%d", id.Row, id.Col)
}

// less orders IDs top to bottom, then left to right.
func (id ID) less(o ID) bool {
	if id.Row != o.Row {
		return id.Row < o.Row
	}
	return id.Col < o.Col
}

// Region accumulates the area (cell count) and perimeter (boundary edge
// count) of one connected group of equal symbols.
type Region struct {
	Symbol    rune
	Area      int
	Perimeter int
}

// Cost returns the fencing price of r: Area × Perimeter.
func (r Region) Cost() int {
	return r.Area * r.Perimeter
}
