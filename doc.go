// Package islands counts and labels connected regions of land on a 2D
// binary map.
//
// What is islands?
//
//	A small, zero-surprise toolkit around one kernel:
//		• grid/      – the map model: Land (1) / Water (0), shape & domain checks, deep copies
//		• labeler/   – CountIslands + Mark: flood-fill labeling with 4-adjacency
//		• unionfind/ – an independent disjoint-set counter used as a cross-check
//		• gridio/    – read maps from text or YAML, print them back
//		• render/    – coloured terminal and PNG views of a labeled map
//		• cmd/islands – the demo command tying it together
//
// Why?
//
//   - Inputs are never mutated: labeling works on a private copy.
//   - Fail fast: shape and domain errors surface before any labeling happens.
//   - No recursion by default: the flood fill runs on an explicit stack, so a
//     single island covering a huge map cannot blow the call stack.
//
// Quick example:
//
//	1 1 0        -1 -1  0
//	0 1 0   →     0 -1  0      count = 2
//	0 0 1         0  0 -2
//
//	n, labeled, err := labeler.CountIslands([][]int{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}})
//
// Each land cell of the k-th island (in row-major discovery order) becomes -k.
package islands
