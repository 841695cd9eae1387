package labeler_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/labeler"
	"github.com/katalvlaran/islands/unionfind"
)

// randomGrid fills an h×w grid with land at the given density.
func randomGrid(rng *rand.Rand, h, w int, density float64) [][]int {
	g := make([][]int, h)
	for r := range g {
		g[r] = make([]int, w)
		for c := range g[r] {
			if rng.Float64() < density {
				g[r][c] = grid.Land
			}
		}
	}

	return g
}

// TestMatchesUnionFind compares every traversal and encoding against the
// disjoint-set reference on random grids, including 1×N and N×1 strips.
func TestMatchesUnionFind(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	optionSets := map[string][]labeler.Option{
		"dfs":        nil,
		"bfs":        {labeler.WithTraversal(labeler.BreadthFirst)},
		"recursive":  {labeler.WithTraversal(labeler.Recursive)},
		"separate":   {labeler.WithSeparateVisited()},
		"separateRe": {labeler.WithSeparateVisited(), labeler.WithTraversal(labeler.Recursive)},
	}

	shapes := [][2]int{{1, 1}, {1, 17}, {23, 1}, {2, 2}, {5, 5}, {8, 13}, {31, 19}, {64, 64}}
	for _, density := range []float64{0.1, 0.45, 0.6, 0.9} {
		for _, hw := range shapes {
			for trial := 0; trial < 5; trial++ {
				g := randomGrid(rng, hw[0], hw[1], density)
				orig := grid.Clone(g)

				wantN, wantLabeled, err := unionfind.Label(g)
				require.NoError(t, err)

				for name, opts := range optionSets {
					n, labeled, err := labeler.CountIslands(g, opts...)
					require.NoError(t, err, name)
					require.Equal(t, wantN, n, "%s: %dx%d density %.2f", name, hw[0], hw[1], density)
					require.Equal(t, wantLabeled, labeled, "%s: %dx%d density %.2f", name, hw[0], hw[1], density)
					require.Equal(t, orig, g, "%s mutated its input", name)
				}
			}
		}
	}
}
