// Package grid defines the binary map model shared by every islands
// subpackage: Land and Water encodings, cell coordinates, and the shape and
// domain validation that must pass before any labeling starts.
//
// What:
//
//   - A grid is a plain [][]int, indexed g[row][col], H rows × W columns.
//   - Before labeling every cell is Water (0) or Land (1).
//   - Validate checks shape (rectangular) before domain (0/1 only).
//   - FromValues ingests untyped nested data (decoder output, float slices,
//     arrays) and rejects anything that is not exactly two-dimensional.
//   - Clone produces an independent deep copy; labeling works on clones only.
//
// Complexity:
//
//   - Validate, Clone, FromValues, Equal: O(H×W) time.
//   - Clone, FromValues: O(H×W) memory; Validate and Equal allocate nothing.
//
// Errors:
//
//   - ErrShape:  ragged rows, or nesting depth other than two.
//   - ErrDomain: a cell value outside {0, 1}.
package grid
