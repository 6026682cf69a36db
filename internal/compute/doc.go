// Package compute evaluates the Mandelbrot kernel for every pixel of a frame.
//
// One per-pixel function, viewport mapping followed by kernel and palette,
// has three backends:
//
//   - cpu: float64 kernel fanned out over row bands, opaque black interior
//   - gpu: the same function as an OpenGL fragment shader, float32 precision,
//     transparent black interior
//   - soft: the shader's float32 arithmetic executed on CPU workers
//
// # Selecting a backend
//
//	backend, err := compute.New(compute.CPU)
//	if err != nil {
//		return err
//	}
//	defer backend.Cleanup()
//	err = backend.Render(frame, view, params)
//
// The gpu backend needs a current OpenGL 3.3 context when it is created.
// Build with the nogl tag to drop the OpenGL dependency; New then reports
// the gpu backend as unavailable.
//
// The precision difference between the float64 and float32 paths shows at
// deep zoom and is expected.
package compute
