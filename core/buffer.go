package core

// FrameBuffer is a fixed-size linear pixel store indexed y*width+x
type FrameBuffer struct {
	width  int
	height int
	pixels []Pixel
}

// NewFrameBuffer allocates a zeroed buffer for the viewport
func NewFrameBuffer(size ViewportSize) *FrameBuffer {
	return &FrameBuffer{
		width:  size.Width,
		height: size.Height,
		pixels: make([]Pixel, size.Pixels()),
	}
}

// Width returns the buffer width
func (b *FrameBuffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *FrameBuffer) Height() int {
	return b.height
}

// Bounds returns the addressable area [0,width) x [0,height)
func (b *FrameBuffer) Bounds() Area {
	return Area{Width: b.width, Height: b.height}
}

// Pixels exposes the backing slice for presentation
func (b *FrameBuffer) Pixels() []Pixel {
	return b.pixels
}

// Clear zeroes every pixel
func (b *FrameBuffer) Clear() {
	clear(b.pixels)
}

// Get returns the pixel at (x, y)
func (b *FrameBuffer) Get(x, y int) (Pixel, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	return b.pixels[y*b.width+x], true
}

// Set writes the pixel at (x, y); out-of-bounds writes are dropped
func (b *FrameBuffer) Set(x, y int, p Pixel) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.pixels[y*b.width+x] = p
	return true
}
