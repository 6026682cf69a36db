package fractal

import (
	"errors"
	"fmt"
)

// Domain errors for kernel parameters and frames.
var (
	// ErrInvalidParams indicates a degenerate iteration or periodicity setting.
	ErrInvalidParams = errors.New("fractal: invalid render parameters")

	// ErrInvalidViewport indicates a non-positive scale or pixel size.
	ErrInvalidViewport = errors.New("fractal: invalid viewport")

	// ErrFrameSize indicates a frame with non-positive dimensions.
	ErrFrameSize = errors.New("fractal: frame dimensions must be positive")
)

// ParamError names the field that failed validation.
type ParamError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s = %v", e.Wrapped, e.Field, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
