//go:build nogl

package compute

import (
	"fmt"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/viewport"
)

type GLBackend struct{}

func NewGLBackend() *GLBackend {
	return &GLBackend{}
}

func (c *GLBackend) Name() string    { return GPU }
func (c *GLBackend) Available() bool { return false }
func (c *GLBackend) Cleanup()        {}

func (c *GLBackend) Init() error {
	return fmt.Errorf("built with the nogl tag")
}

func (c *GLBackend) Render(frame *fractal.Frame, view *viewport.Viewport, params fractal.Params) error {
	return fmt.Errorf("%w: %s", ErrBackendUnavailable, GPU)
}
