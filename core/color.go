package core

import (
	"errors"
	"fmt"
	"log"
	"strconv"
)

// ErrInvalidColor is returned for colour strings not of the form "#rrggbb"
var ErrInvalidColor = errors.New("invalid color")

// Pixel is a packed 0xRRGGBB colour value
// Zero is background: buffers are cleared to it and compositing never writes it
type Pixel uint32

// PixelWhite is the fallback for unparseable colour strings
const PixelWhite Pixel = 0xFFFFFF

// Raster is a row-major sprite; rows may be shorter than the widest row
type Raster [][]Pixel

// Width returns the length of the longest row
func (r Raster) Width() int {
	w := 0
	for _, row := range r {
		w = max(w, len(row))
	}
	return w
}

// ParseHexColor parses "#rrggbb" into a packed pixel
func ParseHexColor(s string) (Pixel, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return Pixel(v), nil
}

// ColorOrDefault parses s, degrading to white on failure
func ColorOrDefault(s string) Pixel {
	p, err := ParseHexColor(s)
	if err != nil {
		log.Printf("Color fallback to #ffffff: %v", err)
		return PixelWhite
	}
	return p
}

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// RGB unpacks the pixel into channels
func (p Pixel) RGB() RGB {
	return RGB{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

// Pixel packs the channels
func (c RGB) Pixel() Pixel {
	return Pixel(c.R)<<16 | Pixel(c.G)<<8 | Pixel(c.B)
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGB{}
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
