package garden

import (
	"fmt"
	"strings"
)

// ParseGrid splits text into one row of symbols per line.
// Trailing line breaks and "\r\n" endings are tolerated.
// Returns ErrEmptyInput if there is no row or the first row is empty,
// ErrRaggedRows if any row length differs from the first.
func ParseGrid(text string) ([][]rune, error) {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil, ErrEmptyInput
	}
	lines := strings.Split(text, "\n")
	grid := make([][]rune, len(lines))
	for y, line := range lines {
		grid[y] = []rune(strings.TrimSuffix(line, "\r"))
	}
	if _, _, err := validateGrid(grid); err != nil {
		return nil, err
	}

	return grid, nil
}

// validateGrid checks grid is non-empty and rectangular and returns its size.
func validateGrid(grid [][]rune) (w, h int, err error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, 0, ErrEmptyInput
	}
	w, h = len(grid[0]), len(grid)
	for y, row := range grid {
		if len(row) != w {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRaggedRows, y, len(row), w)
		}
	}

	return w, h, nil
}
