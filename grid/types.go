package grid

import "errors"

// Sentinel errors for grid validation. Callers match them with errors.Is;
// returned errors wrap them with the offending position.
var (
	// ErrShape indicates the input is not a rectangular two-dimensional grid.
	ErrShape = errors.New("grid: input must be a rectangular two-dimensional grid")
	// ErrDomain indicates a value outside its allowed domain, e.g. a cell not in {0, 1}.
	ErrDomain = errors.New("grid: value outside allowed domain")
)

// Cell encodings of an unlabeled grid.
const (
	// Water marks a cell that belongs to no island.
	Water = 0
	// Land marks an unvisited land cell.
	Land = 1
)

// Cell addresses one grid position.
type Cell struct {
	Row, Col int
}

// Up, Down, Left and Right return the 4-adjacent neighbours of c.
// Results may lie outside any particular grid; use InBounds to check.
func (c Cell) Up() Cell    { return Cell{c.Row - 1, c.Col} }
func (c Cell) Down() Cell  { return Cell{c.Row + 1, c.Col} }
func (c Cell) Left() Cell  { return Cell{c.Row, c.Col - 1} }
func (c Cell) Right() Cell { return Cell{c.Row, c.Col + 1} }

// Neighbors4 lists c's edge-sharing neighbours in up, down, left, right order.
func (c Cell) Neighbors4() [4]Cell {
	return [4]Cell{c.Up(), c.Down(), c.Left(), c.Right()}
}
