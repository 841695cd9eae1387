// Package labeler counts and labels islands of land on a binary grid.
//
// What:
//
//   - CountIslands scans a private copy of the grid in row-major order. Every
//     time it meets unvisited land it opens a new island (ids 1, 2, 3, …) and
//     floods it with Mark.
//   - Mark flood-fills one island over 4-adjacency (up, down, left, right),
//     writing -id into each cell it claims. A claimed cell is negative, so it
//     looks exactly like water to the rest of the traversal and is never
//     entered twice.
//   - Islands turns a labeled grid into per-island cell lists.
//
// Why negative ids?
//
//	The sign doubles as the visited flag: the working copy is the output,
//	so no auxiliary boolean grid is required. WithSeparateVisited selects the
//	split design (separate visited flags, separate label grid) with the same
//	results.
//
// Traversal:
//
//   - DepthFirst (default): explicit LIFO stack.
//   - BreadthFirst: explicit FIFO queue.
//   - Recursive: call-stack recursion; depth grows with island size.
//
// Complexity:
//
//   - CountIslands: O(H×W) time; O(H×W) memory for the copy plus O(L) for the
//     pending-cell stack (L = cells of the largest island).
//   - Mark: O(L) time and memory.
//
// Errors:
//
//   - grid.ErrShape, grid.ErrDomain   invalid input grid (returned before any labeling)
//   - ErrIslandID                     non-positive island id passed to Mark (wraps grid.ErrDomain)
//   - ErrOptionViolation              invalid Option
//   - ErrLabelGap                     Islands got ids that skip a value
package labeler
