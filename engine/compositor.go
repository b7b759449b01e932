package engine

import "github.com/lixenwraith/bouncer/core"

// Composite copies raster into buf with its top-left cell at the truncated anchor
// Cells outside the buffer are clipped; missing cells of short rows and zero cells leave the destination untouched
func Composite(buf *core.FrameBuffer, raster core.Raster, anchor core.XYPair) {
	ox := int(anchor.X)
	oy := int(anchor.Y)

	clip := buf.Bounds().Intersect(core.Area{X: ox, Y: oy, Width: raster.Width(), Height: len(raster)})
	if clip.Empty() {
		return
	}

	pixels := buf.Pixels()
	stride := buf.Width()
	for y := clip.Y; y < clip.Y+clip.Height; y++ {
		row := raster[y-oy]
		end := min(clip.X+clip.Width, ox+len(row))
		base := y * stride
		for x := clip.X; x < end; x++ {
			if p := row[x-ox]; p != 0 {
				pixels[base+x] = p
			}
		}
	}
}
