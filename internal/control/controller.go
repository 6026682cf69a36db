package control

import (
	"log/slog"
	"math"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/viewport"
)

// State is the interactive state shared with the renderer each frame.
type State struct {
	View   *viewport.Viewport
	Params fractal.Params
}

type Controller struct {
	state  State
	dirty  bool
	logger *slog.Logger
}

// New starts dirty so the first loop iteration draws a frame.
func New(view *viewport.Viewport, params fractal.Params, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		state:  State{View: view, Params: params},
		dirty:  true,
		logger: logger,
	}
}

func (c *Controller) View() *viewport.Viewport { return c.state.View }
func (c *Controller) Params() fractal.Params   { return c.state.Params }
func (c *Controller) State() State             { return c.state }
func (c *Controller) Dirty() bool              { return c.dirty }
func (c *Controller) ClearDirty()              { c.dirty = false }
func (c *Controller) MarkDirty()               { c.dirty = true }

// HandleAll applies events in order and stops at the first quit.
func (c *Controller) HandleAll(events []Event) bool {
	for _, ev := range events {
		if c.Handle(ev) {
			return true
		}
	}
	return false
}

// Handle applies one event. It returns true when the loop should exit.
func (c *Controller) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case Quit:
		return true
	case Expose:
		c.dirty = true
	case Resize:
		if err := c.state.View.Resize(ev.Width, ev.Height); err != nil {
			c.logger.Warn("ignoring resize", "error", err)
			return false
		}
		c.dirty = true
	case MouseDown:
		if ev.Button != ButtonLeft {
			return false
		}
		c.state.View.RecenterOnClick(ev.X, ev.Y)
		c.dirty = true
	case Wheel:
		switch {
		case ev.Delta > 0:
			c.zoom(c.state.View.ZoomIn)
		case ev.Delta < 0:
			c.zoom(c.state.View.ZoomOut)
		}
	case KeyDown:
		return c.key(ev.Key)
	}
	return false
}

func (c *Controller) key(k Key) bool {
	view, params := c.state.View, &c.state.Params

	switch k {
	case KeyQuit:
		return true
	case KeyPanLeft:
		view.Step(viewport.Left)
	case KeyPanRight:
		view.Step(viewport.Right)
	case KeyPanUp:
		view.Step(viewport.Up)
	case KeyPanDown:
		view.Step(viewport.Down)
	case KeyZoomIn:
		c.zoom(view.ZoomIn)
		return false
	case KeyZoomOut:
		c.zoom(view.ZoomOut)
		return false
	case KeyReset:
		view.Reset()
	case KeyMonochrome:
		params.Monochrome = !params.Monochrome
	case KeyHalveIterations:
		params.HalveIterations()
	case KeyDoubleIterations:
		params.DoubleIterations()
	case KeyPeriodicityDown:
		if params.Periodicity > 1 {
			params.Periodicity--
		}
	case KeyPeriodicityUp:
		if params.Periodicity < math.MaxUint32 {
			params.Periodicity++
		}
	default:
		return false
	}
	c.dirty = true
	return false
}

func (c *Controller) zoom(fn func() error) {
	if err := fn(); err != nil {
		c.logger.Debug("zoom limit reached", "error", err)
		return
	}
	c.dirty = true
}
