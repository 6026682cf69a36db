package fractal

// Escape runs the escape-time iteration for c = cx + cy·i.
// Params must be valid; a zero periodicity would snapshot on every step
// and a zero budget would report everything as bounded.
func Escape(cx, cy float64, p Params) Result {
	var (
		x, y       float64
		oldX, oldY float64
		i, j       uint32
	)
	for i < p.MaxIterations && x*x+y*y <= EscapeRadiusSq {
		x, y = x*x-y*y+cx, 2*x*y+cy
		i++

		// exact match: the orbit has entered a cycle
		if x == oldX && y == oldY {
			return Bounded
		}

		if j+1 >= p.Periodicity {
			oldX, oldY = x, y
			j = 0
		} else {
			j++
		}
	}
	if i < p.MaxIterations {
		return EscapedAfter(i)
	}
	return Bounded
}

// Escape32 is Escape at single precision. Each intermediate is rounded to
// float32 so the result tracks the shader rather than a fused multiply-add.
func Escape32(cx, cy float32, p Params) Result {
	var (
		x, y       float32
		oldX, oldY float32
		i, j       uint32
	)
	for i < p.MaxIterations && float32(x*x)+float32(y*y) <= EscapeRadiusSq {
		x, y = float32(float32(x*x)-float32(y*y))+cx, float32(2*float32(x*y))+cy
		i++

		if x == oldX && y == oldY {
			return Bounded
		}

		if j+1 >= p.Periodicity {
			oldX, oldY = x, y
			j = 0
		} else {
			j++
		}
	}
	if i < p.MaxIterations {
		return EscapedAfter(i)
	}
	return Bounded
}
