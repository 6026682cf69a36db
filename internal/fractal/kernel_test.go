package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestEscapeOutsideRadius(t *testing.T) {
	p := DefaultParams()
	points := [][2]float64{{3, 0}, {0, 2.5}, {-2.1, 0.1}, {1.5, 1.5}, {-10, -10}}

	for _, c := range points {
		res := Escape(c[0], c[1], p)
		if res.IsBounded() {
			t.Errorf("c=%v: expected escape, got bounded", c)
			continue
		}
		if res.Iterations > 1 {
			t.Errorf("c=%v: expected first-iteration escape, got %d", c, res.Iterations)
		}
	}
}

func TestEscapeOriginBounded(t *testing.T) {
	for _, n := range []uint32{1, 2, 20, 1024, 1 << 20} {
		p := Params{MaxIterations: n, Periodicity: DefaultPeriodicity}
		if res := Escape(0, 0, p); !res.IsBounded() {
			t.Errorf("max=%d: origin should be bounded, got %+v", n, res)
		}
	}
}

func TestEscapeMainCardioid(t *testing.T) {
	res := Escape(-0.75, 0, DefaultParams())
	if !res.IsBounded() {
		t.Fatalf("expected (-0.75, 0) bounded, got %+v", res)
	}
}

func TestEscapeKnownCounts(t *testing.T) {
	p := Params{MaxIterations: 100, Periodicity: DefaultPeriodicity}

	tests := []struct {
		name   string
		cx, cy float64
		want   Result
	}{
		// z1 = 1, z2 = 2, z3 = 5
		{"c=1", 1, 0, EscapedAfter(3)},
		// z1 = 0.5+0.5i, z2 = 0.5+i, z3 = -0.25+1.5i, z4 = -1.6875-0.25i
		{"c=0.5+0.5i", 0.5, 0.5, EscapedAfter(5)},
		// cycle 0, -1, 0, -1
		{"c=-1", -1, 0, Bounded},
		{"c=-2", -2, 0, Bounded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.cx, tt.cy, p)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEscapeBudgetCap(t *testing.T) {
	// -0.75+0.1i lies just outside the neck and needs far more than
	// five iterations to escape.
	p := Params{MaxIterations: 5, Periodicity: 3}
	if res := Escape(-0.75, 0.1, p); !res.IsBounded() {
		t.Errorf("expected budget exhaustion to report bounded, got %+v", res)
	}
}

func TestEscapePeriodicityOne(t *testing.T) {
	// With interval 1 the snapshot is the previous iterate, so an
	// attracting fixed point is caught once consecutive iterates agree.
	p := Params{MaxIterations: 1 << 30, Periodicity: 1}
	if res := Escape(-0.5, 0, p); res.Escaped {
		t.Errorf("c=-0.5 is in the set, got %+v", res)
	}
}

func TestEscape32MatchesEscapeAwayFromBoundary(t *testing.T) {
	p := DefaultParams()
	points := [][2]float64{{-0.75, 0}, {0, 0}, {3, 0}, {1, 0}, {-1, 0}, {0.5, 0.5}, {-2, 0}}

	for _, c := range points {
		want := Escape(c[0], c[1], p)
		got := Escape32(float32(c[0]), float32(c[1]), p)
		if got != want {
			t.Errorf("c=%v: float32 %+v, float64 %+v", c, got, want)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		field string
	}{
		{"zero iterations", Params{MaxIterations: 0, Periodicity: 20}, "max_iterations"},
		{"zero periodicity", Params{MaxIterations: 10, Periodicity: 0}, "periodicity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("expected ErrInvalidParams, got %v", err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) || pe.Field != tt.field {
				t.Errorf("expected field %s, got %v", tt.field, err)
			}
		})
	}

	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default params should be valid: %v", err)
	}
}

func TestIterationSteps(t *testing.T) {
	p := DefaultParams()
	p.DoubleIterations()
	p.DoubleIterations()
	if p.MaxIterations != 4096 {
		t.Errorf("expected 4096, got %d", p.MaxIterations)
	}

	p = DefaultParams()
	p.HalveIterations()
	p.HalveIterations()
	if p.MaxIterations != 256 {
		t.Errorf("expected 256, got %d", p.MaxIterations)
	}

	p.MaxIterations = 1
	p.HalveIterations()
	if p.MaxIterations != 1 {
		t.Errorf("expected floor at 1, got %d", p.MaxIterations)
	}

	p.MaxIterations = 1 << 31
	p.DoubleIterations()
	if p.MaxIterations != 1<<31 {
		t.Errorf("expected saturation at 2^31, got %d", p.MaxIterations)
	}
	if p.MaxIterations > math.MaxUint32 {
		t.Error("overflow")
	}
}

func TestFrameResize(t *testing.T) {
	f, err := NewFrame(4, 3)
	if err != nil {
		t.Fatalf("new frame: %v", err)
	}
	if len(f.Pix) != 12 {
		t.Fatalf("expected 12 pixels, got %d", len(f.Pix))
	}

	if err := f.Resize(2, 2); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if len(f.Row(1)) != 2 {
		t.Errorf("expected row length 2, got %d", len(f.Row(1)))
	}

	if err := f.Resize(0, 5); !errors.Is(err, ErrFrameSize) {
		t.Errorf("expected ErrFrameSize, got %v", err)
	}
}
