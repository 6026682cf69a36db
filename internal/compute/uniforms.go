package compute

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

// Uniforms is the parameter block uploaded to the fragment shader.
type Uniforms struct {
	Resolution  mgl32.Vec2
	Position    mgl32.Vec2
	Zoom        float32
	Iterations  int32
	Periodicity int32
	Monochrome  int32
}

func NewUniforms(view *viewport.Viewport, params fractal.Params) Uniforms {
	u := Uniforms{
		Resolution:  mgl32.Vec2{float32(view.Width), float32(view.Height)},
		Position:    mgl32.Vec2{float32(view.CenterX), float32(view.CenterY)},
		Zoom:        float32(view.Scale),
		Iterations:  clampInt32(params.MaxIterations),
		Periodicity: clampInt32(params.Periodicity),
	}
	if params.Monochrome {
		u.Monochrome = 1
	}
	return u
}

func clampInt32(v uint32) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}

// Params recovers the kernel parameters the shader sees.
func (u Uniforms) Params() fractal.Params {
	return fractal.Params{
		MaxIterations: uint32(u.Iterations),
		Periodicity:   uint32(u.Periodicity),
		Monochrome:    u.Monochrome != 0,
	}
}

// Shade is fragmentShader evaluated for raster pixel (x, y).
func (u Uniforms) Shade(x, y int) color.RGBA {
	return u.shade(x, y, u.Params())
}

func (u Uniforms) shade(x, y int, p fractal.Params) color.RGBA {
	cx := u.Position.X() + float32(float32(float32(x)-u.Resolution.X()*0.5)*u.Zoom)
	cy := u.Position.Y() + float32(float32(float32(y)-u.Resolution.Y()*0.5)*u.Zoom)
	return palette.Map(fractal.Escape32(cx, cy, p), p, palette.InteriorClear)
}
