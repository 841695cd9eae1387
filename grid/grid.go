package grid

import "fmt"

// Dims returns the height (rows) and width (columns) of g.
// The width of an empty grid is 0. Dims does not check that g is rectangular.
// Complexity: O(1).
func Dims(g [][]int) (h, w int) {
	if len(g) == 0 {
		return 0, 0
	}

	return len(g), len(g[0])
}

// InBounds reports whether c addresses an existing cell of g.
// The column is checked against the length of c's own row, so ragged
// grids never cause an index panic.
// Complexity: O(1).
func InBounds(g [][]int, c Cell) bool {
	return c.Row >= 0 && c.Row < len(g) && c.Col >= 0 && c.Col < len(g[c.Row])
}

// Clone returns a deep copy of g. Rows of the copy never share backing
// arrays with g. A nil grid clones to an empty, non-nil grid.
// Complexity: O(H×W) time and memory.
func Clone(g [][]int) [][]int {
	out := make([][]int, len(g))
	for r, row := range g {
		out[r] = make([]int, len(row))
		copy(out[r], row)
	}

	return out
}

// Equal reports whether a and b have identical shape and values.
// Complexity: O(H×W).
func Equal(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}

	return true
}

// Validate checks that g is a well-formed unlabeled grid.
//
// Order:
//  1. Shape: every row has the length of row 0 (ErrShape).
//  2. Domain: every cell is Water or Land (ErrDomain).
//
// A grid with no rows, or with rows of length zero, is valid.
// Complexity: O(H×W), no allocation on success.
func Validate(g [][]int) error {
	if err := ValidateShape(g); err != nil {
		return err
	}

	return ValidateDomain(g)
}

// ValidateShape checks only that g is rectangular.
func ValidateShape(g [][]int) error {
	_, w := Dims(g)
	for r, row := range g {
		if len(row) != w {
			return fmt.Errorf("grid: row %d has %d columns, want %d: %w", r, len(row), w, ErrShape)
		}
	}

	return nil
}

// ValidateDomain checks only that every cell of g is Water or Land.
// It assumes g is rectangular (see ValidateShape).
func ValidateDomain(g [][]int) error {
	for r, row := range g {
		for c, v := range row {
			if v != Water && v != Land {
				return fmt.Errorf("grid: cell (%d,%d) = %d: %w", r, c, v, ErrDomain)
			}
		}
	}

	return nil
}
