package labeler

import (
	"github.com/katalvlaran/islands/grid"
)

// CountIslands returns the number of 4-connected land components of g and a
// labeled copy in which every land cell of the k-th island (row-major
// discovery order) holds -k and every water cell holds 0.
//
// Steps:
//  1. Apply options; an invalid option fails with ErrOptionViolation.
//  2. grid.Validate(g): grid.ErrShape or grid.ErrDomain, before any labeling.
//  3. Copy g (fused mode) or allocate visited flags and a blank label grid
//     (WithSeparateVisited). g itself is never written.
//  4. Scan row-major; each unvisited land cell opens island count+1 and is
//     flooded with the configured traversal.
//
// On error the labeled grid is nil and the count is 0.
// Complexity: O(H×W) time; O(H×W) memory.
func CountIslands(g [][]int, opts ...Option) (int, [][]int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, nil, err
	}
	if err = grid.Validate(g); err != nil {
		return 0, nil, err
	}

	m := newMarker(g, o)
	count := 0
	for r, row := range m.src {
		for c := range row {
			origin := grid.Cell{Row: r, Col: c}
			if !m.claimable(origin) {
				continue
			}
			count++
			size := m.mark(origin, count)
			if o.Logger != nil {
				o.Logger.Debug("island labeled", "id", count, "row", r, "col", c, "size", size)
			}
		}
	}

	if o.Logger != nil {
		h, w := grid.Dims(g)
		o.Logger.Info("grid labeled", "rows", h, "cols", w, "islands", count, "traversal", o.Traversal)
	}

	return count, m.dst, nil
}

// Count is CountIslands without the labeled grid.
func Count(g [][]int, opts ...Option) (int, error) {
	n, _, err := CountIslands(g, opts...)

	return n, err
}
