// Package render draws labeled grids for people: a coloured terminal view
// built with lipgloss and a PNG view drawn with gg.
//
// Both views share one palette: water is blue, island k takes
// palette[(k-1) % len(palette)]. Unlabeled land (a positive cell) is drawn
// in a neutral grey so half-labeled working grids are still viewable.
//
// Errors:
//
//   - grid.ErrShape   ragged input
//   - ErrCellSize     PNG cell size below one pixel
//   - ErrEmptyGrid    PNG of a grid with no cells
package render
