package compute

import (
	"errors"
	"fmt"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/viewport"
)

const (
	CPU  = "cpu"
	GPU  = "gpu"
	Soft = "soft"
)

var (
	ErrUnknownBackend     = errors.New("compute: unknown backend")
	ErrBackendUnavailable = errors.New("compute: backend unavailable")
)

// Backend evaluates every pixel of a frame. Implementations resize frame
// to the viewport and overwrite every pixel.
type Backend interface {
	Name() string
	Available() bool
	Render(frame *fractal.Frame, view *viewport.Viewport, params fractal.Params) error
	Cleanup()
}

func Names() []string {
	return []string{CPU, GPU, Soft}
}

func Known(name string) bool {
	switch name {
	case CPU, GPU, Soft:
		return true
	}
	return false
}

// New returns the named backend. The gpu backend needs a current OpenGL
// context, so callers create it after the window exists.
func New(name string) (Backend, error) {
	switch name {
	case CPU:
		return NewCPUBackend(), nil
	case Soft:
		return NewSoftBackend(), nil
	case GPU:
		b := NewGLBackend()
		if err := b.Init(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBackendUnavailable, GPU, err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// prepare validates the inputs shared by every backend and sizes the frame.
func prepare(frame *fractal.Frame, view *viewport.Viewport, params fractal.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if view.Scale <= 0 {
		return fmt.Errorf("%w: scale %g", fractal.ErrInvalidViewport, view.Scale)
	}
	return frame.Resize(view.Width, view.Height)
}
