package labeler

import (
	"fmt"

	"github.com/katalvlaran/islands/grid"
)

// Mark floods the island containing origin in work, writing -id into every
// land cell reachable from origin over 4-adjacency. It returns the number of
// cells it claimed.
//
// Base case: an origin outside work, or on a non-positive cell (water, or land
// already claimed by some island), is left alone and Mark returns 0.
//
// Mark trusts work: it does not validate shape or domain (CountIslands does),
// but bounds are checked per row so ragged input cannot panic. Any positive
// cell is treated as unvisited land.
//
// Returns ErrIslandID for id < 1, and ErrOptionViolation for an invalid option
// or for WithSeparateVisited, which has no meaning on a single in-place grid.
// Complexity: O(L) time and memory, L = cells claimed.
func Mark(work [][]int, origin grid.Cell, id int, opts ...Option) (int, error) {
	if id < 1 {
		return 0, fmt.Errorf("labeler: mark with id %d: %w", id, ErrIslandID)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	if o.SeparateVisited {
		return 0, fmt.Errorf("labeler: Mark works in place, separate visited flags unsupported: %w", ErrOptionViolation)
	}

	m := &marker{src: work, dst: work, traversal: o.Traversal}

	return m.mark(origin, id), nil
}

// marker carries the state of one labeling run.
//
// Fused mode: src and dst are the same working copy and visited is nil; a cell
// is unvisited land iff it is positive.
// Split mode: src is read-only, dst starts all water, and visited records
// claimed cells.
type marker struct {
	src       [][]int
	dst       [][]int
	visited   [][]bool
	traversal Traversal
	pending   []grid.Cell // reused between islands
}

// newMarker prepares a run over a validated grid g according to o.
func newMarker(g [][]int, o Options) *marker {
	m := &marker{traversal: o.Traversal}
	if !o.SeparateVisited {
		work := grid.Clone(g)
		m.src, m.dst = work, work
		return m
	}
	m.src = g
	m.dst = make([][]int, len(g))
	m.visited = make([][]bool, len(g))
	for r, row := range g {
		m.dst[r] = make([]int, len(row))
		m.visited[r] = make([]bool, len(row))
	}

	return m
}

// claimable reports whether c is in bounds and holds unvisited land.
func (m *marker) claimable(c grid.Cell) bool {
	if !grid.InBounds(m.src, c) {
		return false
	}
	if m.visited == nil {
		return m.src[c.Row][c.Col] > 0
	}

	return m.src[c.Row][c.Col] == grid.Land && !m.visited[c.Row][c.Col]
}

// claim assigns c to island id.
func (m *marker) claim(c grid.Cell, id int) {
	if m.visited != nil {
		m.visited[c.Row][c.Col] = true
	}
	m.dst[c.Row][c.Col] = -id
}

// mark dispatches to the configured walk. id must be ≥ 1.
func (m *marker) mark(origin grid.Cell, id int) int {
	switch m.traversal {
	case BreadthFirst:
		return m.markQueue(origin, id)
	case Recursive:
		return m.markRecursive(origin, id)
	default:
		return m.markStack(origin, id)
	}
}

// markStack claims cells when they are pushed, so each cell enters the
// stack at most once and the stack never exceeds the island size.
func (m *marker) markStack(origin grid.Cell, id int) int {
	if !m.claimable(origin) {
		return 0
	}
	m.claim(origin, id)
	n := 1
	m.pending = append(m.pending[:0], origin)
	for len(m.pending) > 0 {
		c := m.pending[len(m.pending)-1]
		m.pending = m.pending[:len(m.pending)-1]
		for _, nb := range c.Neighbors4() {
			if m.claimable(nb) {
				m.claim(nb, id)
				n++
				m.pending = append(m.pending, nb)
			}
		}
	}

	return n
}

// markQueue is markStack with FIFO order.
func (m *marker) markQueue(origin grid.Cell, id int) int {
	if !m.claimable(origin) {
		return 0
	}
	m.claim(origin, id)
	queue := append(m.pending[:0], origin)
	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range queue[qi].Neighbors4() {
			if m.claimable(nb) {
				m.claim(nb, id)
				queue = append(queue, nb)
			}
		}
	}
	m.pending = queue[:0]

	return len(queue)
}

// markRecursive explores up, down, left, right with one call per cell.
func (m *marker) markRecursive(c grid.Cell, id int) int {
	if !m.claimable(c) {
		return 0
	}
	m.claim(c, id)
	n := 1
	n += m.markRecursive(c.Up(), id)
	n += m.markRecursive(c.Down(), id)
	n += m.markRecursive(c.Left(), id)
	n += m.markRecursive(c.Right(), id)

	return n
}
