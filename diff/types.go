// Package diff: the function contract and sentinel errors.
package diff

import (
	"errors"

	"github.com/katalvlaran/autodiff/adjoint"
	"github.com/katalvlaran/autodiff/num"
	"github.com/katalvlaran/autodiff/tensor"
)

// Func is a differentiable function: it receives its argument lifted onto
// AD scalars (a single scalar, or a *tensor.Dense of them, mirroring what
// the caller passed to the derivative closure) and returns a scalar or a
// *tensor.Dense computed through the num package's operators.
type Func func(x any) any

// Sentinel errors for driver validation.
var (
	// ErrShapeMismatch indicates the function returned containers of
	// inconsistent shape across Jacobian harvest iterations, or mixed
	// scalar and container outputs.
	ErrShapeMismatch = errors.New("diff: inconsistent output shape")
)

// sentinels lists every error family a derivative evaluation may signal by
// panicking. Anything else is a genuine programmer panic and is re-raised.
var sentinels = []error{
	ErrShapeMismatch,
	num.ErrNotDifferentiable,
	num.ErrUnsupportedOperand,
	adjoint.ErrTapeMismatch,
	tensor.ErrIndexOutOfBounds,
	tensor.ErrDimensionMismatch,
	tensor.ErrInvalidDimensions,
	tensor.ErrRaggedData,
}

// rescue converts a recovered sentinel panic into the returned error of a
// public driver; unknown panics propagate unchanged.
func rescue(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	for _, s := range sentinels {
		if errors.Is(e, s) {
			*err = e

			return
		}
	}
	panic(r)
}
