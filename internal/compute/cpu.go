package compute

import (
	"image/color"
	"runtime"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

// CPUBackend evaluates the kernel in float64 and writes opaque black for
// interior points.
type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

// WithWorkers returns a copy limited to n goroutines; n <= 1 runs serially.
func (c *CPUBackend) WithWorkers(n int) *CPUBackend {
	return &CPUBackend{workers: n}
}

func (c *CPUBackend) Name() string    { return CPU }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

func (c *CPUBackend) Render(frame *fractal.Frame, view *viewport.Viewport, params fractal.Params) error {
	if err := prepare(frame, view, params); err != nil {
		return err
	}

	m := palette.NewMapper(params, palette.Interior)
	return forEachRow(c.workers, frame, func(y int, row []color.RGBA) {
		for x := range row {
			row[x] = m.Color(Sample(view, params, x, y))
		}
	})
}
