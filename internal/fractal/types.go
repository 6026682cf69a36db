package fractal

import "math"

const (
	DefaultIterations  = 1024
	DefaultPeriodicity = 20

	// EscapeRadiusSq is the squared escape radius. It is fixed.
	EscapeRadiusSq = 4.0
)

type Params struct {
	MaxIterations uint32
	Periodicity   uint32
	Monochrome    bool
}

func DefaultParams() Params {
	return Params{
		MaxIterations: DefaultIterations,
		Periodicity:   DefaultPeriodicity,
	}
}

func (p Params) Validate() error {
	if p.MaxIterations < 1 {
		return &ParamError{Field: "max_iterations", Value: p.MaxIterations, Wrapped: ErrInvalidParams}
	}
	if p.Periodicity < 1 {
		return &ParamError{Field: "periodicity", Value: p.Periodicity, Wrapped: ErrInvalidParams}
	}
	return nil
}

// HalveIterations halves the budget, stopping at 1.
func (p *Params) HalveIterations() {
	if p.MaxIterations > 1 {
		p.MaxIterations /= 2
	}
}

// DoubleIterations doubles the budget. It saturates at the largest
// power of two a uint32 holds.
func (p *Params) DoubleIterations() {
	if p.MaxIterations <= math.MaxUint32/2 {
		p.MaxIterations *= 2
	}
}

// Result is the kernel output for one point.
type Result struct {
	Escaped    bool
	Iterations uint32
}

// Bounded is the result for points that never escaped, including orbits
// caught by the periodicity check.
var Bounded = Result{}

func EscapedAfter(n uint32) Result {
	return Result{Escaped: true, Iterations: n}
}

func (r Result) IsBounded() bool { return !r.Escaped }
