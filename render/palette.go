package render

import "errors"

var (
	// ErrCellSize indicates a PNG cell size below one pixel.
	ErrCellSize = errors.New("render: cell size must be at least 1 pixel")
	// ErrEmptyGrid indicates a grid with no cells, which has no image.
	ErrEmptyGrid = errors.New("render: grid has no cells")
)

const (
	waterHex     = "#1f4e79"
	unlabeledHex = "#8c8c8c"
	waterRune    = '~'
	landRune     = '#'
)

// palette holds island colours, cycled by id.
var palette = []string{
	"#e6550d", "#31a354", "#fdd835", "#8e44ad", "#e377c2",
	"#17becf", "#d62728", "#bcbd22", "#ff9896", "#98df8a",
}

// symbols holds one rune per island id, cycled by id.
const symbols = "123456789abcdefghijklmnopqrstuvwxyz"

// islandHex returns the colour of island id (id ≥ 1).
func islandHex(id int) string {
	return palette[(id-1)%len(palette)]
}

// cellHex returns the colour for a labeled cell value.
func cellHex(v int) string {
	switch {
	case v == 0:
		return waterHex
	case v > 0:
		return unlabeledHex
	default:
		return islandHex(-v)
	}
}

// cellRune returns the symbol for a labeled cell value.
func cellRune(v int) rune {
	switch {
	case v == 0:
		return waterRune
	case v > 0:
		return landRune
	default:
		return rune(symbols[(-v-1)%len(symbols)])
	}
}
