package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/islands/grid"
)

// minGridLineCell is the smallest cell size that gets cell outlines.
const minGridLineCell = 4

// PNG draws labeled as an image with one cellSize×cellSize square per cell.
// Cells of at least minGridLineCell pixels are outlined so neighbouring
// islands of the same colour stay distinguishable.
func PNG(labeled [][]int, cellSize int) (image.Image, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("render: cell size %d: %w", cellSize, ErrCellSize)
	}
	if err := grid.ValidateShape(labeled); err != nil {
		return nil, err
	}
	h, w := grid.Dims(labeled)
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	dc := gg.NewContext(w*cellSize, h*cellSize)
	size := float64(cellSize)
	for r, row := range labeled {
		for c, v := range row {
			x, y := float64(c)*size, float64(r)*size
			dc.SetHexColor(cellHex(v))
			dc.DrawRectangle(x, y, size, size)
			dc.Fill()
		}
	}

	if cellSize >= minGridLineCell {
		dc.SetRGBA(0, 0, 0, 0.25)
		dc.SetLineWidth(1)
		for r := 0; r <= h; r++ {
			dc.DrawLine(0, float64(r)*size, float64(w)*size, float64(r)*size)
		}
		for c := 0; c <= w; c++ {
			dc.DrawLine(float64(c)*size, 0, float64(c)*size, float64(h)*size)
		}
		dc.Stroke()
	}

	return dc.Image(), nil
}

// SavePNG renders labeled with PNG and writes it to path.
func SavePNG(path string, labeled [][]int, cellSize int) error {
	img, err := PNG(labeled, cellSize)
	if err != nil {
		return err
	}
	if err = gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
