package labeler

import (
	"fmt"

	"github.com/katalvlaran/islands/grid"
)

// Islands groups the cells of a labeled grid by island id.
// The result is ordered by ID; Cells within each island are row-major and
// Origin is the first of them.
//
// Errors:
//   - grid.ErrShape if labeled is ragged.
//   - grid.ErrDomain if a cell is positive (unlabeled land).
//   - ErrLabelGap if the first occurrence of ids in row-major order is not 1, 2, 3, ….
//
// Complexity: O(H×W).
func Islands(labeled [][]int) ([]Island, error) {
	if err := grid.ValidateShape(labeled); err != nil {
		return nil, err
	}

	var out []Island
	for r, row := range labeled {
		for c, v := range row {
			switch {
			case v == grid.Water:
				continue
			case v > 0:
				return nil, fmt.Errorf("labeler: cell (%d,%d) = %d is unlabeled land: %w", r, c, v, grid.ErrDomain)
			}
			cell := grid.Cell{Row: r, Col: c}
			id := -v
			switch {
			case id <= len(out):
				out[id-1].Cells = append(out[id-1].Cells, cell)
			case id == len(out)+1:
				out = append(out, Island{ID: id, Origin: cell, Cells: []grid.Cell{cell}})
			default:
				return nil, fmt.Errorf("labeler: id %d at (%d,%d) before id %d: %w", id, r, c, len(out)+1, ErrLabelGap)
			}
		}
	}

	return out, nil
}
