package render

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/san-kum/mandelview/internal/compute"
	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

type fakeSource struct {
	dirty  bool
	view   *viewport.Viewport
	params fractal.Params
}

func (f *fakeSource) Dirty() bool              { return f.dirty }
func (f *fakeSource) ClearDirty()              { f.dirty = false }
func (f *fakeSource) View() *viewport.Viewport { return f.view }
func (f *fakeSource) Params() fractal.Params   { return f.params }

type countingBackend struct {
	compute.Backend
	calls int
}

func (c *countingBackend) Render(frame *fractal.Frame, view *viewport.Viewport, p fractal.Params) error {
	c.calls++
	return c.Backend.Render(frame, view, p)
}

func smallView(t *testing.T) *viewport.Viewport {
	t.Helper()
	v, err := viewport.New(32, 24, viewport.DefaultCenterX, viewport.DefaultCenterY, 0)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestRefreshOnlyWhenDirty(t *testing.T) {
	b := &countingBackend{Backend: compute.NewCPUBackend()}
	r := New(b, nil)
	src := &fakeSource{dirty: true, view: smallView(t), params: fractal.DefaultParams()}

	if _, rendered, err := r.Refresh(src); err != nil || !rendered {
		t.Fatalf("expected render on dirty state, rendered=%v err=%v", rendered, err)
	}
	if src.dirty {
		t.Error("dirty flag should be cleared after a render")
	}

	for i := 0; i < 5; i++ {
		if _, rendered, _ := r.Refresh(src); rendered {
			t.Fatal("clean state must not render")
		}
	}
	if b.calls != 1 {
		t.Errorf("expected 1 backend call, got %d", b.calls)
	}
}

func TestRenderEndToEnd(t *testing.T) {
	r := New(compute.NewCPUBackend(), nil)
	view := viewport.Default()
	params := fractal.DefaultParams()

	// Render a 64x48 frame of the same view, then check the full-size
	// center pixel through the shared per-pixel function.
	small := *view
	small.Resize(64, 48)
	small.Scale = viewport.FitScale(64, 48)
	frame, err := r.Render(&small, params)
	if err != nil {
		t.Fatal(err)
	}
	if c := frame.At(32, 24); c != palette.Interior {
		t.Errorf("center of small frame: expected interior, got %v", c)
	}
	if c := compute.Pixel(view, params, 320, 240); c != palette.Interior {
		t.Errorf("center of 640x480 view: expected interior, got %v", c)
	}

	st := r.Last()
	if st.Backend != compute.CPU || st.Width != 64 || st.Height != 48 || st.Iterations != 1024 {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestRenderRejectsInvalidParams(t *testing.T) {
	b := &countingBackend{Backend: compute.NewCPUBackend()}
	r := New(b, nil)

	_, err := r.Render(smallView(t), fractal.Params{MaxIterations: 10, Periodicity: 0})
	if !errors.Is(err, fractal.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
	if b.calls != 0 {
		t.Error("backend should not run with invalid params")
	}

	src := &fakeSource{dirty: true, view: smallView(t), params: fractal.Params{}}
	if _, _, err := r.Refresh(src); err == nil {
		t.Fatal("expected error")
	}
	if !src.dirty {
		t.Error("failed refresh must leave the state dirty")
	}
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := New(compute.NewCPUBackend(), logger)

	if _, err := r.Render(smallView(t), fractal.DefaultParams()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, key := range []string{"center_x=-0.75", "center_y=0", "scale=", "took="} {
		if !strings.Contains(out, key) {
			t.Errorf("log line missing %q: %s", key, out)
		}
	}
}

func TestHistoryBounded(t *testing.T) {
	r := New(compute.NewCPUBackend(), nil)
	view, _ := viewport.New(4, 4, 0, 0, 0)
	for i := 0; i < DefaultHistory+10; i++ {
		if _, err := r.Render(view, fractal.Params{MaxIterations: 8, Periodicity: 4}); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(r.History()); n != DefaultHistory {
		t.Errorf("expected %d entries, got %d", DefaultHistory, n)
	}
}
