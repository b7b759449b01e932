package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bouncer/core"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// color converts a packed pixel to a truecolor tcell colour
func color(p core.Pixel) tcell.Color {
	c := p.RGB()
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// halfBlock returns the glyph and style showing top over bottom in one cell
// Zero pixels show the terminal background
func halfBlock(top, bottom core.Pixel) (rune, tcell.Style) {
	switch {
	case top == 0 && bottom == 0:
		return ' ', tcell.StyleDefault
	case bottom == 0:
		return upperHalf, tcell.StyleDefault.Foreground(color(top))
	case top == 0:
		return lowerHalf, tcell.StyleDefault.Foreground(color(bottom))
	default:
		return upperHalf, tcell.StyleDefault.Foreground(color(top)).Background(color(bottom))
	}
}

// sample returns the pixel nearest to the centre of sub-cell (i, n) along an axis of length size
func sample(i, n, size int) int {
	return (2*i + 1) * size / (2 * n)
}

// drawFrame stretches a width x height buffer over a cols x rows cell grid
func drawFrame(screen tcell.Screen, pixels []core.Pixel, width, height, cols, rows int) {
	subRows := rows * 2
	for cy := 0; cy < rows; cy++ {
		top := sample(2*cy, subRows, height) * width
		bottom := sample(2*cy+1, subRows, height) * width
		for cx := 0; cx < cols; cx++ {
			px := sample(cx, cols, width)
			r, style := halfBlock(pixels[top+px], pixels[bottom+px])
			screen.SetContent(cx, cy, r, nil, style)
		}
	}
}
