package core

import "errors"

// ErrInvalidViewport is returned for viewports with a non-positive dimension
var ErrInvalidViewport = errors.New("invalid viewport size")

// XYPair is a plain 2D value used both as a position and as a velocity
// No unit tagging: callers track which meaning applies
type XYPair struct {
	X, Y float64
}

// Add returns the component-wise sum
func (p XYPair) Add(o XYPair) XYPair {
	return XYPair{X: p.X + o.X, Y: p.Y + o.Y}
}

// ViewportSize is the fixed pixel size of the simulated area
type ViewportSize struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive
func (v ViewportSize) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Pixels returns the number of cells in a buffer of this size
func (v ViewportSize) Pixels() int {
	return v.Width * v.Height
}
