package labeler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/islands/grid"
)

// Sentinel errors for labeling.
var (
	// ErrIslandID is returned by Mark for an island id below 1.
	// It wraps grid.ErrDomain.
	ErrIslandID = fmt.Errorf("labeler: island id must be a positive integer: %w", grid.ErrDomain)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("labeler: invalid option supplied")

	// ErrLabelGap is returned by Islands when island ids do not appear
	// as 1, 2, 3, … in row-major order.
	ErrLabelGap = errors.New("labeler: island ids are not contiguous in discovery order")
)

// Traversal selects how Mark walks an island.
type Traversal int

const (
	// DepthFirst walks pending cells with an explicit stack.
	DepthFirst Traversal = iota
	// BreadthFirst walks pending cells with an explicit queue.
	BreadthFirst
	// Recursive walks with plain recursion, one call frame per claimed cell.
	Recursive
)

var traversalNames = [...]string{
	DepthFirst:   "dfs",
	BreadthFirst: "bfs",
	Recursive:    "recursive",
}

// String returns the short name used by ParseTraversal.
func (t Traversal) String() string {
	if t < 0 || int(t) >= len(traversalNames) {
		return fmt.Sprintf("Traversal(%d)", int(t))
	}

	return traversalNames[t]
}

func (t Traversal) valid() bool {
	return t >= DepthFirst && t <= Recursive
}

// ParseTraversal maps "dfs", "bfs" or "recursive" (case-insensitive) to a Traversal.
// The empty string yields DepthFirst.
func ParseTraversal(s string) (Traversal, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DepthFirst, nil
	}
	for i, name := range traversalNames {
		if s == name {
			return Traversal(i), nil
		}
	}

	return DepthFirst, fmt.Errorf("labeler: unknown traversal %q: %w", s, ErrOptionViolation)
}

// Options holds labeling parameters. Build it through DefaultOptions and Option values.
type Options struct {
	// Traversal picks the flood-fill walk. Default DepthFirst.
	Traversal Traversal

	// SeparateVisited keeps visited flags in their own [][]bool and writes
	// labels into a fresh grid instead of reusing the sign of the working copy.
	SeparateVisited bool

	// Logger, if non-nil, receives one debug record per island and one info
	// record per CountIslands call.
	Logger *log.Logger

	err error
}

// Option configures labeling via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with DepthFirst traversal, fused sign
// encoding and no logging.
func DefaultOptions() Options {
	return Options{Traversal: DepthFirst}
}

// Island describes one labeled component.
type Island struct {
	// ID is the island identifier; its cells hold -ID in the labeled grid.
	ID int
	// Origin is the island's first cell in row-major order, where the scan discovered it.
	Origin grid.Cell
	// Cells lists every cell of the island in row-major order.
	Cells []grid.Cell
}

// Size returns the number of cells in the island.
func (i Island) Size() int { return len(i.Cells) }
