package palette

import (
	"image/color"

	"github.com/san-kum/mandelview/internal/fractal"
)

// MaxTableSize bounds the lookup table. Larger budgets are colored inline.
const MaxTableSize = 1 << 16

// Table is a precomputed ramp. Entry k holds Ramp(k, size).
type Table struct {
	colors []color.RGBA
}

func NewTable(size uint32) *Table {
	t := &Table{colors: make([]color.RGBA, size)}
	for k := range t.colors {
		t.colors[k] = Ramp(uint32(k), size)
	}
	return t
}

func (t *Table) Len() int { return len(t.colors) }

// Lookup scales i from [0, maxIter) onto the table. It only agrees with
// Ramp when the table size equals maxIter.
func (t *Table) Lookup(i, maxIter uint32) color.RGBA {
	idx := uint64(i) * uint64(len(t.colors)) / uint64(maxIter)
	if idx >= uint64(len(t.colors)) {
		return Fallback
	}
	return t.colors[idx]
}

// Mapper colors results for one frame. It is safe for concurrent use.
type Mapper struct {
	interior color.RGBA
	params   fractal.Params
	table    *Table
}

// NewMapper builds a mapper for params. A table sized to the iteration
// budget is used when it fits, so output matches Map exactly.
func NewMapper(p fractal.Params, interior color.RGBA) *Mapper {
	m := &Mapper{interior: interior, params: p}
	if !p.Monochrome && p.MaxIterations <= MaxTableSize {
		m.table = NewTable(p.MaxIterations)
	}
	return m
}

func (m *Mapper) Color(res fractal.Result) color.RGBA {
	if res.IsBounded() {
		return m.interior
	}
	if m.params.Monochrome {
		return Boundary
	}
	if m.table != nil {
		return m.table.Lookup(res.Iterations, m.params.MaxIterations)
	}
	return Ramp(res.Iterations, m.params.MaxIterations)
}
