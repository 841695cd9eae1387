package render_test

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/render"
)

var labeledSample = [][]int{
	{-1, -1, 0, 0, 0},
	{-1, -1, 0, 0, -2},
	{0, -1, 0, -2, -2},
	{0, 0, 0, 0, 0},
	{-3, 0, -4, 0, -5},
}

func TestTerminal_Plain(t *testing.T) {
	out, err := render.Terminal(labeledSample, render.WithPlain())
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"1 1 ~ ~ ~",
		"1 1 ~ ~ 2",
		"~ 1 ~ 2 2",
		"~ ~ ~ ~ ~",
		"3 ~ 4 ~ 5",
	}, "\n"), out)
}

func TestTerminal_Symbols(t *testing.T) {
	out, err := render.Terminal([][]int{{-9, -10, -35, -36, 1}}, render.WithPlain())
	require.NoError(t, err)
	assert.Equal(t, "9 a z 1 #", out)
}

func TestTerminal_Framed(t *testing.T) {
	out, err := render.Terminal(labeledSample)
	require.NoError(t, err)
	// five rows plus top and bottom border
	assert.Equal(t, len(labeledSample)+2, lipgloss.Height(out))
	for _, sym := range []string{"1", "2", "3", "4", "5", "~"} {
		assert.Contains(t, out, sym)
	}
}

func TestTerminal_Ragged(t *testing.T) {
	_, err := render.Terminal([][]int{{0}, {0, 0}})
	require.ErrorIs(t, err, grid.ErrShape)
}

func TestPNG(t *testing.T) {
	const cell = 8
	img, err := render.PNG(labeledSample, cell)
	require.NoError(t, err)
	b := img.Bounds()
	require.Equal(t, 5*cell, b.Dx())
	require.Equal(t, 5*cell, b.Dy())

	at := func(r, c int) color.Color {
		return img.At(c*cell+cell/2, r*cell+cell/2)
	}
	same := func(a, b color.Color) bool {
		ar, ag, ab, aa := a.RGBA()
		br, bg, bb, ba := b.RGBA()
		return ar == br && ag == bg && ab == bb && aa == ba
	}
	assert.True(t, same(at(0, 0), at(2, 1)), "one island, one colour")
	assert.False(t, same(at(0, 0), at(1, 4)), "islands 1 and 2 differ")
	assert.False(t, same(at(0, 0), at(0, 2)), "land differs from water")
	assert.True(t, same(at(0, 2), at(3, 3)), "water is uniform")
}

func TestPNG_Errors(t *testing.T) {
	_, err := render.PNG(labeledSample, 0)
	require.ErrorIs(t, err, render.ErrCellSize)

	_, err = render.PNG([][]int{}, 4)
	require.ErrorIs(t, err, render.ErrEmptyGrid)

	_, err = render.PNG([][]int{{}, {}}, 4)
	require.ErrorIs(t, err, render.ErrEmptyGrid)

	_, err = render.PNG([][]int{{0}, {}}, 4)
	require.ErrorIs(t, err, grid.ErrShape)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "islands.png")
	require.NoError(t, render.SavePNG(path, labeledSample, 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "\x89PNG"))

	require.ErrorIs(t, render.SavePNG(path, labeledSample, -1), render.ErrCellSize)
}
