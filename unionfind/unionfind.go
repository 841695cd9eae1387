// Package unionfind counts islands with a disjoint-set forest instead of a
// flood fill. It exists as an independent cross-check for package labeler:
// the two share nothing but grid validation.
//
// Every land cell starts as its own set; each pair of 4-adjacent land cells
// is merged. The number of distinct roots among land cells is the island count.
//
// Complexity: O(H×W·α(H×W)) time, O(H×W) memory.
package unionfind

import (
	"github.com/katalvlaran/islands/grid"
)

// DSU is a disjoint-set forest over elements 0..n-1 with path compression
// and union by rank.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New returns a DSU of n singleton sets.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the root of x's set.
// Iterative with path halving to avoid deep recursion.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were disjoint.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// build validates g and merges all 4-adjacent land pairs.
// Only right and down neighbours are needed: adjacency is symmetric.
func build(g [][]int) (*DSU, int, error) {
	if err := grid.Validate(g); err != nil {
		return nil, 0, err
	}
	h, w := grid.Dims(g)
	d := New(h * w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if g[r][c] != grid.Land {
				continue
			}
			if c+1 < w && g[r][c+1] == grid.Land {
				d.Union(r*w+c, r*w+c+1)
			}
			if r+1 < h && g[r+1][c] == grid.Land {
				d.Union(r*w+c, (r+1)*w+c)
			}
		}
	}

	return d, w, nil
}

// CountComponents returns the number of 4-connected land components of g.
// Errors: grid.ErrShape, grid.ErrDomain.
func CountComponents(g [][]int) (int, error) {
	d, w, err := build(g)
	if err != nil {
		return 0, err
	}
	roots := make(map[int]struct{})
	for r, row := range g {
		for c, v := range row {
			if v == grid.Land {
				roots[d.Find(r*w+c)] = struct{}{}
			}
		}
	}

	return len(roots), nil
}

// Label returns the component count and a labeled copy of g using the same
// convention as labeler.CountIslands: the k-th component met in row-major
// order holds -k, water holds 0. g is not modified.
// Errors: grid.ErrShape, grid.ErrDomain.
func Label(g [][]int) (int, [][]int, error) {
	d, w, err := build(g)
	if err != nil {
		return 0, nil, err
	}
	ids := make(map[int]int)
	out := make([][]int, len(g))
	for r, row := range g {
		out[r] = make([]int, len(row))
		for c, v := range row {
			if v != grid.Land {
				continue
			}
			root := d.Find(r*w + c)
			id, ok := ids[root]
			if !ok {
				id = len(ids) + 1
				ids[root] = id
			}
			out[r][c] = -id
		}
	}

	return len(ids), out, nil
}
