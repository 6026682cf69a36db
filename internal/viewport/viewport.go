// Package viewport maps pixel coordinates onto the complex plane.
//
// Screen coordinates are raster coordinates: x grows right, y grows down,
// and (0, 0) is the top-left pixel. The same convention drives panning,
// click recentering and kernel sampling, so pressing up moves the view up.
package viewport

import (
	"fmt"
	"math"

	"github.com/san-kum/mandelview/internal/fractal"
)

const (
	DefaultWidth   = 640
	DefaultHeight  = 480
	DefaultCenterX = -0.75
	DefaultCenterY = 0.0

	// SpanWidth and SpanHeight are the plane extents a reset fits to the window.
	SpanWidth  = 3.5
	SpanHeight = 2.0

	ZoomFactor = 1.25
	// PanFraction is the share of the visible span moved per pan step.
	PanFraction = 1.0 / 8
)

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

type Viewport struct {
	CenterX float64
	CenterY float64
	// Scale is complex-plane units per pixel.
	Scale  float64
	Width  int
	Height int

	homeX, homeY float64
}

// New creates a viewport centered on (cx, cy). A scale of zero derives the
// scale from the reference span.
func New(width, height int, cx, cy, scale float64) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", fractal.ErrInvalidViewport, width, height)
	}
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale %g", fractal.ErrInvalidViewport, scale)
	}
	v := &Viewport{
		CenterX: cx,
		CenterY: cy,
		Scale:   scale,
		Width:   width,
		Height:  height,
		homeX:   cx,
		homeY:   cy,
	}
	if scale == 0 {
		v.Scale = FitScale(width, height)
	}
	return v, nil
}

func Default() *Viewport {
	v, _ := New(DefaultWidth, DefaultHeight, DefaultCenterX, DefaultCenterY, 0)
	return v
}

// FitScale is the scale at which the reference span fits a window.
func FitScale(width, height int) float64 {
	return math.Max(SpanWidth/float64(width), SpanHeight/float64(height))
}

func (v *Viewport) ScreenToComplex(px, py float64) (float64, float64) {
	cx := v.CenterX + (px-float64(v.Width)/2)*v.Scale
	cy := v.CenterY + (py-float64(v.Height)/2)*v.Scale
	return cx, cy
}

// Pan moves the center by a pixel offset.
func (v *Viewport) Pan(dx, dy float64) {
	v.CenterX += dx * v.Scale
	v.CenterY += dy * v.Scale
}

// Step pans by PanFraction of the visible width or height.
func (v *Viewport) Step(d Direction) {
	w := float64(v.Width) * PanFraction
	h := float64(v.Height) * PanFraction
	switch d {
	case Left:
		v.Pan(-w, 0)
	case Right:
		v.Pan(w, 0)
	case Up:
		v.Pan(0, -h)
	case Down:
		v.Pan(0, h)
	}
}

// Zoom multiplies the scale. Factors above 1 zoom out.
func (v *Viewport) Zoom(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: zoom factor %g", fractal.ErrInvalidViewport, factor)
	}
	scale := v.Scale * factor
	if scale <= 0 || math.IsInf(scale, 0) {
		return fmt.Errorf("%w: scale %g out of range", fractal.ErrInvalidViewport, scale)
	}
	v.Scale = scale
	return nil
}

func (v *Viewport) ZoomIn() error  { return v.Zoom(1 / ZoomFactor) }
func (v *Viewport) ZoomOut() error { return v.Zoom(ZoomFactor) }

func (v *Viewport) RecenterOnClick(px, py float64) {
	v.CenterX, v.CenterY = v.ScreenToComplex(px, py)
}

// Reset returns to the initial center and refits the scale to the
// current window size.
func (v *Viewport) Reset() {
	v.CenterX, v.CenterY = v.homeX, v.homeY
	v.Scale = FitScale(v.Width, v.Height)
}

// Resize changes the pixel dimensions only. The visible region grows or
// shrinks with the window.
func (v *Viewport) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d", fractal.ErrInvalidViewport, width, height)
	}
	v.Width, v.Height = width, height
	return nil
}

func (v *Viewport) String() string {
	return fmt.Sprintf("center=(%.20g, %.20g) scale=%.20g size=%dx%d",
		v.CenterX, v.CenterY, v.Scale, v.Width, v.Height)
}
