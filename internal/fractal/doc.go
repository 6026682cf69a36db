// Package fractal provides the escape-time kernel for the Mandelbrot set.
//
// The package defines the data every rendering backend shares:
//
//   - [Params]: iteration budget, periodicity interval and color mode
//   - [Result]: kernel output, either escaped after n iterations or bounded
//   - [Frame]: a complete grid of RGBA pixels
//
// # Kernel
//
// [Escape] iterates z = z² + c from z = 0 until |z|² > 4 or the iteration
// budget is spent. Every [Params.Periodicity] iterations the current orbit
// point is stored, and an exact floating-point match against that snapshot
// marks the point as bounded:
//
//	res := fractal.Escape(-0.75, 0, fractal.DefaultParams())
//	if res.IsBounded() {
//		// interior
//	}
//
// [Escape32] is the same kernel at single precision, matching what the GPU
// shader computes.
package fractal
