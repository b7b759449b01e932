package objects

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/bouncer/core"
)

// circleRaster fills a 2r x 2r sprite with the cells whose corner lies within r of the centre
// Rows are trimmed after their last painted cell
func circleRaster(radius float64, color core.Pixel) core.Raster {
	size := int(radius * 2)
	centre := mgl64.Vec2{radius, radius}
	raster := make(core.Raster, size)

	for y := 0; y < size; y++ {
		row := make([]core.Pixel, size)
		last := -1
		for x := 0; x < size; x++ {
			if (mgl64.Vec2{float64(x), float64(y)}).Sub(centre).Len() <= radius {
				row[x] = color
				last = x
			}
		}
		raster[y] = row[:last+1]
	}
	return raster
}
