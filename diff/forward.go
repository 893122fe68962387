// Package diff: the forward-mode (tangent) driver.
//
// One evaluation of f per input coordinate: coordinate i is seeded with
// derivative 1, f runs on tangent numbers, and the outputs' derivative
// components form column i of the Jacobian.
package diff

import (
	"fmt"

	"github.com/katalvlaran/autodiff/tangent"
	"github.com/katalvlaran/autodiff/tensor"
)

// MustForward computes the forward-mode Jacobian of f at x, panicking with
// a wrapped sentinel on failure. It exists so differentiated functions can
// themselves invoke differentiation (nested modes); plain callers should
// use Forward or DerFor, which convert the panic into an error.
func MustForward(f Func, x any) any {
	switch v := x.(type) {
	case []float64:
		xd, err := tensor.FromFloats(v)
		if err != nil {
			panic(err)
		}

		return forwardDense(f, xd)
	case *tensor.Dense:
		return forwardDense(f, v)
	case int:
		return forwardScalar(f, float64(v))
	default:
		// float64, or an AD scalar when this driver runs nested.
		return forwardScalar(f, v)
	}
}

// forwardScalar drives a single seeded pass for a scalar input.
func forwardScalar(f Func, x any) any {
	// 1) Lift with derivative 1: the only input coordinate is the direction.
	y := f(tangent.Seed(x))

	// 2) Harvest: container output yields a Jacobian of shape(y); scalar
	//    output yields the bare derivative.
	if yd, ok := y.(*tensor.Dense); ok {
		jac := mustNew(yd.Shape()...)
		var j int
		for j = 0; j < yd.Len(); j++ {
			jac.SetFlat(j, derivativeOf(yd.AtFlat(j)))
		}

		return jac
	}

	return derivativeOf(y)
}

// forwardDense drives one seeded pass per input coordinate and assembles
// the Jacobian of shape shape(y) ++ shape(x).
func forwardDense(f Func, x *tensor.Dense) *tensor.Dense {
	n := x.Len()

	var (
		jac       *tensor.Dense
		yShape    []int
		scalarOut bool
	)

	var i, j int
	for i = 0; i < n; i++ {
		// 2a) Lift the input with coordinate i seeded to 1.
		lifted := liftTangent(x, i)

		// 2b) Evaluate.
		y := f(lifted)

		switch yv := y.(type) {
		case *tensor.Dense:
			// 2c) Allocate J on the first iteration; later iterations must
			//     observe the same output shape.
			if jac == nil {
				yShape = yv.Shape()
				jac = mustNew(append(yv.Shape(), x.Shape()...)...)
			} else if scalarOut || !sameShape(yShape, yv.Shape()) {
				panic(fmt.Errorf("diff: forward harvest: %w", ErrShapeMismatch))
			}
			// 2d) Column i: derivative of every output coordinate.
			for j = 0; j < yv.Len(); j++ {
				jac.SetFlat(j*n+i, derivativeOf(yv.AtFlat(j)))
			}
		default:
			if jac == nil {
				scalarOut = true
				jac = mustNew(x.Shape()...)
			} else if !scalarOut {
				panic(fmt.Errorf("diff: forward harvest: %w", ErrShapeMismatch))
			}
			jac.SetFlat(i, derivativeOf(y))
		}
	}

	return jac
}

// liftTangent copies x into tangent numbers with derivative 1 at the flat
// coordinate seed and 0 everywhere else.
func liftTangent(x *tensor.Dense, seed int) *tensor.Dense {
	lifted := x.Clone()
	var k int
	for k = 0; k < lifted.Len(); k++ {
		if k == seed {
			lifted.SetFlat(k, tangent.Seed(x.AtFlat(k)))
		} else {
			lifted.SetFlat(k, tangent.New(x.AtFlat(k)))
		}
	}

	return lifted
}

// derivativeOf extracts the derivative component of one output coordinate.
// An output that never touched the seeded input is a constant with
// derivative zero.
func derivativeOf(y any) any {
	if t, ok := y.(*tangent.Number); ok {
		return t.Derivative()
	}

	return 0.0
}

// mustNew allocates a Dense for shapes derived from already-validated
// containers; a failure here is a driver bug.
func mustNew(shape ...int) *tensor.Dense {
	d, err := tensor.New(shape...)
	if err != nil {
		panic(err)
	}

	return d
}

// sameShape reports elementwise equality of two shape vectors.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
