package compute

import (
	"image/color"
	"runtime"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/viewport"
)

// SoftBackend runs the fragment shader's arithmetic on CPU workers. Its
// output is what the gpu backend produces, float32 precision and
// transparent interior included, without needing a display.
type SoftBackend struct {
	workers int
}

func NewSoftBackend() *SoftBackend {
	return &SoftBackend{workers: runtime.NumCPU()}
}

func (s *SoftBackend) Name() string    { return Soft }
func (s *SoftBackend) Available() bool { return true }
func (s *SoftBackend) Cleanup()        {}

func (s *SoftBackend) Render(frame *fractal.Frame, view *viewport.Viewport, params fractal.Params) error {
	if err := prepare(frame, view, params); err != nil {
		return err
	}

	u := NewUniforms(view, params)
	p := u.Params()
	return forEachRow(s.workers, frame, func(y int, row []color.RGBA) {
		for x := range row {
			row[x] = u.shade(x, y, p)
		}
	})
}
