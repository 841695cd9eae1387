package labeler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/labeler"
)

func TestIslands(t *testing.T) {
	_, labeled, err := labeler.CountIslands(sampleMap)
	require.NoError(t, err)

	islands, err := labeler.Islands(labeled)
	require.NoError(t, err)
	require.Len(t, islands, 5)

	require.Equal(t, labeler.Island{
		ID:     2,
		Origin: grid.Cell{Row: 1, Col: 4},
		Cells:  []grid.Cell{{Row: 1, Col: 4}, {Row: 2, Col: 3}, {Row: 2, Col: 4}},
	}, islands[1])
	for i, isl := range islands {
		require.Equal(t, i+1, isl.ID)
		require.Equal(t, isl.Cells[0], isl.Origin)
		for _, c := range isl.Cells {
			require.Equal(t, -isl.ID, labeled[c.Row][c.Col])
		}
	}
}

func TestIslands_Errors(t *testing.T) {
	cases := []struct {
		name    string
		labeled [][]int
		err     error
	}{
		{"Ragged", [][]int{{-1}, {0, 0}}, grid.ErrShape},
		{"Unlabeled", [][]int{{-1, 1}}, grid.ErrDomain},
		{"Gap", [][]int{{-1, 0, -3}}, labeler.ErrLabelGap},
		{"OutOfOrder", [][]int{{-2, 0, -1}}, labeler.ErrLabelGap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			islands, err := labeler.Islands(tc.labeled)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, islands)
		})
	}

	islands, err := labeler.Islands([][]int{{0, 0}})
	require.NoError(t, err)
	require.Empty(t, islands)
}
