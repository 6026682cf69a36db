package compute

import (
	"image/color"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
	"golang.org/x/sync/errgroup"
)

// rowsPerTask is the band height handed to one worker at a time.
const rowsPerTask = 4

// Sample evaluates the kernel for raster pixel (x, y) at 64-bit precision.
func Sample(view *viewport.Viewport, params fractal.Params, x, y int) fractal.Result {
	cx, cy := view.ScreenToComplex(float64(x), float64(y))
	return fractal.Escape(cx, cy, params)
}

// Pixel is the complete per-pixel function of the cpu backend.
func Pixel(view *viewport.Viewport, params fractal.Params, x, y int) color.RGBA {
	return palette.Map(Sample(view, params, x, y), params, palette.Interior)
}

// forEachRow fans rows out to at most workers goroutines. Each call owns
// its row exclusively.
func forEachRow(workers int, frame *fractal.Frame, fn func(y int, row []color.RGBA)) error {
	if workers <= 1 || frame.Height <= rowsPerTask {
		for y := 0; y < frame.Height; y++ {
			fn(y, frame.Row(y))
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < frame.Height; start += rowsPerTask {
		end := min(start+rowsPerTask, frame.Height)
		g.Go(func() error {
			for y := start; y < end; y++ {
				fn(y, frame.Row(y))
			}
			return nil
		})
	}
	return g.Wait()
}
