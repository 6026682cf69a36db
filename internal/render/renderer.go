// Package render produces complete frames from the interactive state.
//
// A [Renderer] owns one frame buffer and one compute backend. Frames are
// recomputed from scratch, and only when the state reports itself dirty:
// idle loops do no fractal work.
package render

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/mandelview/internal/compute"
	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/viewport"
)

const DefaultHistory = 60

// Source is the state a renderer reads each frame.
type Source interface {
	Dirty() bool
	ClearDirty()
	View() *viewport.Viewport
	Params() fractal.Params
}

type Stats struct {
	Backend    string
	Width      int
	Height     int
	Iterations uint32
	Duration   time.Duration
}

type Renderer struct {
	backend    compute.Backend
	frame      *fractal.Frame
	logger     *slog.Logger
	last       Stats
	history    []time.Duration
	maxHistory int
}

func New(backend compute.Backend, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{
		backend:    backend,
		frame:      &fractal.Frame{},
		logger:     logger,
		history:    make([]time.Duration, 0, DefaultHistory),
		maxHistory: DefaultHistory,
	}
}

func (r *Renderer) Backend() compute.Backend { return r.backend }

// Frame returns the most recent frame. Its contents are replaced by the
// next render.
func (r *Renderer) Frame() *fractal.Frame { return r.frame }

func (r *Renderer) Last() Stats { return r.last }

// History returns frame durations, oldest first.
func (r *Renderer) History() []time.Duration {
	out := make([]time.Duration, len(r.history))
	copy(out, r.history)
	return out
}

// Render computes a full frame. It blocks until every pixel is written.
func (r *Renderer) Render(view *viewport.Viewport, params fractal.Params) (*fractal.Frame, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	if err := r.backend.Render(r.frame, view, params); err != nil {
		return nil, fmt.Errorf("render %s: %w", r.backend.Name(), err)
	}
	took := time.Since(start)

	r.last = Stats{
		Backend:    r.backend.Name(),
		Width:      r.frame.Width,
		Height:     r.frame.Height,
		Iterations: params.MaxIterations,
		Duration:   took,
	}
	r.record(took)

	r.logger.Debug("frame rendered",
		"backend", r.backend.Name(),
		"center_x", fmt.Sprintf("%.20g", view.CenterX),
		"center_y", fmt.Sprintf("%.20g", view.CenterY),
		"scale", fmt.Sprintf("%.20g", view.Scale),
		"iterations", params.MaxIterations,
		"took", took,
	)
	return r.frame, nil
}

// Refresh renders only when src is dirty and clears the flag afterwards.
// It reports whether a new frame was produced.
func (r *Renderer) Refresh(src Source) (*fractal.Frame, bool, error) {
	if !src.Dirty() {
		return r.frame, false, nil
	}
	frame, err := r.Render(src.View(), src.Params())
	if err != nil {
		return nil, false, err
	}
	src.ClearDirty()
	return frame, true, nil
}

func (r *Renderer) record(d time.Duration) {
	if len(r.history) == r.maxHistory {
		copy(r.history, r.history[1:])
		r.history = r.history[:len(r.history)-1]
	}
	r.history = append(r.history, d)
}

func (r *Renderer) Close() {
	r.backend.Cleanup()
}
