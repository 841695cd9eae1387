package labeler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/labeler"
)

// TestMark_FloodsOneIsland checks that Mark claims exactly the island
// containing origin and leaves the rest of the grid alone.
func TestMark_FloodsOneIsland(t *testing.T) {
	for _, tr := range []labeler.Traversal{labeler.DepthFirst, labeler.BreadthFirst, labeler.Recursive} {
		t.Run(tr.String(), func(t *testing.T) {
			work := grid.Clone(sampleMap)
			n, err := labeler.Mark(work, grid.Cell{Row: 2, Col: 4}, 7, labeler.WithTraversal(tr))
			require.NoError(t, err)
			require.Equal(t, 3, n)
			require.Equal(t, [][]int{
				{1, 1, 0, 0, 0},
				{1, 1, 0, 0, -7},
				{0, 1, 0, -7, -7},
				{0, 0, 0, 0, 0},
				{1, 0, 1, 0, 1},
			}, work)
		})
	}
}

// TestMark_BaseCases verifies that out-of-bounds, water and claimed origins are no-ops.
func TestMark_BaseCases(t *testing.T) {
	work := [][]int{{1, 0}, {-3, 1}}
	origins := []grid.Cell{
		{Row: -1, Col: 0},
		{Row: 0, Col: 2},
		{Row: 2, Col: 0},
		{Row: 0, Col: 1}, // water
		{Row: 1, Col: 0}, // already labeled
	}
	for _, o := range origins {
		n, err := labeler.Mark(work, o, 1)
		require.NoError(t, err)
		assert.Zero(t, n, "origin %v", o)
	}
	assert.Equal(t, [][]int{{1, 0}, {-3, 1}}, work)
}

// TestMark_StopsAtLabeledCells ensures cells of another island are never relabeled.
func TestMark_StopsAtLabeledCells(t *testing.T) {
	work := [][]int{{1, -1, 1}}
	n, err := labeler.Mark(work, grid.Cell{Row: 0, Col: 2}, 2)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, [][]int{{1, -1, -2}}, work)
}

// TestMark_RaggedRows verifies per-row bounds checks on unvalidated input.
func TestMark_RaggedRows(t *testing.T) {
	work := [][]int{{1, 1, 1}, {1}, {1, 1}}
	n, err := labeler.Mark(work, grid.Cell{Row: 0, Col: 2}, 1)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, [][]int{{-1, -1, -1}, {-1}, {-1, -1}}, work)
}

// TestMark_InvalidID checks the defensive id guard.
func TestMark_InvalidID(t *testing.T) {
	for _, id := range []int{0, -1, -100} {
		work := [][]int{{1}}
		n, err := labeler.Mark(work, grid.Cell{}, id)
		require.ErrorIs(t, err, labeler.ErrIslandID)
		require.ErrorIs(t, err, grid.ErrDomain)
		require.Zero(t, n)
		require.Equal(t, [][]int{{1}}, work, "grid must be untouched")
	}
}

// TestMark_OptionViolations covers options Mark cannot honour.
func TestMark_OptionViolations(t *testing.T) {
	work := [][]int{{1}}
	_, err := labeler.Mark(work, grid.Cell{}, 1, labeler.WithSeparateVisited())
	require.ErrorIs(t, err, labeler.ErrOptionViolation)

	_, err = labeler.Mark(work, grid.Cell{}, 1, labeler.WithTraversal(labeler.Traversal(9)))
	require.ErrorIs(t, err, labeler.ErrOptionViolation)
	require.Equal(t, [][]int{{1}}, work)
}
