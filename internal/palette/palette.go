// Package palette maps escape-time results to pixel colors.
//
// Escaped points are colored by a cyclic six-band hue ramp over the
// iteration budget, or plain white in monochrome mode. Bounded points get
// the interior color of the backend that produced them.
package palette

import (
	"image/color"
	"math"

	"github.com/san-kum/mandelview/internal/fractal"
)

const Bands = 6

var (
	// Interior is the opaque black used by raster backends.
	Interior = color.RGBA{A: 255}

	// InteriorClear is the transparent black written by the shader path.
	InteriorClear = color.RGBA{}

	// Boundary colors every escaped point in monochrome mode.
	Boundary = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Fallback colors counts past the last band, and every count when the
	// budget is too small to form a band.
	Fallback = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Ramp returns the hue for an escape after i iterations with budget maxIter.
func Ramp(i, maxIter uint32) color.RGBA {
	size := maxIter / Bands
	if size == 0 {
		return Fallback
	}
	band := i / size
	if band >= Bands {
		return Fallback
	}
	f := float64(i-band*size) / float64(size)

	var r, g, b float64
	switch band {
	case 0:
		r, g, b = f, 0, 1
	case 1:
		r, g, b = 1, 0, 1-f
	case 2:
		r, g, b = 1, f, 0
	case 3:
		r, g, b = 1-f, 1, 0
	case 4:
		r, g, b = 0, 1, f
	case 5:
		r, g, b = 0, 1-f, 1
	}
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

// channel converts a unit intensity the way a UNORM8 render target does.
func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// Map colors a single result. This is the reference every backend and
// lookup table must agree with.
func Map(res fractal.Result, p fractal.Params, interior color.RGBA) color.RGBA {
	if res.IsBounded() {
		return interior
	}
	if p.Monochrome {
		return Boundary
	}
	return Ramp(res.Iterations, p.MaxIterations)
}
