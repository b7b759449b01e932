package engine

import (
	"time"

	"github.com/lixenwraith/bouncer/core"
	"github.com/lixenwraith/bouncer/input"
)

// Surface is the display the frame buffer is presented to
type Surface interface {
	// IsOpen is false once the user or platform closed the surface
	IsOpen() bool

	// DepressedKeys returns the keys currently held
	DepressedKeys() input.KeySet

	// Present shows one frame; an error aborts the run
	Present(pixels []core.Pixel, width, height int) error

	Close() error
}

// RateLimiter is implemented by surfaces accepting an update rate hint
type RateLimiter interface {
	LimitUpdateRate(d time.Duration)
}

// SurfaceOpener creates the surface for a run
type SurfaceOpener func(title string, viewport core.ViewportSize) (Surface, error)
