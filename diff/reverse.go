// Package diff: the reverse-mode (adjoint) driver.
//
// One evaluation of f records the tape; one backpropagation per output
// coordinate then yields row j of the Jacobian from the input adjoints.
// The same tape is reused across seedings, with a Reset between them.
package diff

import (
	"fmt"

	"github.com/katalvlaran/autodiff/adjoint"
	"github.com/katalvlaran/autodiff/tensor"
)

// MustReverse computes the reverse-mode Jacobian of f at x, panicking with
// a wrapped sentinel on failure. It exists so differentiated functions can
// themselves invoke differentiation (nested modes); plain callers should
// use Reverse or DerRev, which convert the panic into an error.
func MustReverse(f Func, x any) any {
	switch v := x.(type) {
	case []float64:
		xd, err := tensor.FromFloats(v)
		if err != nil {
			panic(err)
		}

		return reverseDense(f, xd)
	case *tensor.Dense:
		return reverseDense(f, v)
	case int:
		return reverseScalar(f, float64(v))
	default:
		// float64, or an AD scalar when this driver runs nested.
		return reverseScalar(f, v)
	}
}

// reverseScalar records one evaluation with a single lifted input and
// backpropagates once per output coordinate.
func reverseScalar(f Func, x any) any {
	// 1) Fresh tape, 2) lift the input.
	tape := adjoint.NewTape()
	input := tape.Lift(x)

	// 3) Evaluate once; the tape now holds the whole computation.
	y := f(input)

	if yd, ok := y.(*tensor.Dense); ok {
		jac := mustNew(yd.Shape()...)
		var j int
		for j = 0; j < yd.Len(); j++ {
			jac.SetFlat(j, harvestOne(tape, yd.AtFlat(j), input))
		}

		return jac
	}

	return harvestOne(tape, y, input)
}

// reverseDense records one evaluation with every coordinate lifted and
// assembles the Jacobian of shape shape(y) ++ shape(x).
func reverseDense(f Func, x *tensor.Dense) *tensor.Dense {
	// 1) Fresh tape.
	tape := adjoint.NewTape()
	n := x.Len()

	// 2) Lift every input coordinate, keeping handles for the harvest.
	inputs := make([]adjoint.Number, n)
	lifted := x.Clone()
	var i int
	for i = 0; i < n; i++ {
		inputs[i] = tape.Lift(x.AtFlat(i))
		lifted.SetFlat(i, inputs[i])
	}

	// 3) Evaluate once.
	y := f(lifted)

	var j int
	if yd, ok := y.(*tensor.Dense); ok {
		jac := mustNew(append(yd.Shape(), x.Shape()...)...)
		for j = 0; j < yd.Len(); j++ {
			// 4) Seed output j, backpropagate, harvest row j, reset.
			seedAndHarvest(tape, yd.AtFlat(j), inputs, func(i int, a any) {
				jac.SetFlat(j*n+i, a)
			})
		}

		return jac
	}

	jac := mustNew(x.Shape()...)
	seedAndHarvest(tape, y, inputs, func(i int, a any) {
		jac.SetFlat(i, a)
	})

	return jac
}

// seedAndHarvest runs steps 4a-4e of the reverse driver for one output
// coordinate: seed its adjoint to 1, backpropagate, hand every input's
// adjoint to sink, clear the seed, reset the tape.
//
// An output coordinate that is not an adjoint number never depended on the
// inputs; its Jacobian row is zero and the tape is left untouched. An
// adjoint number recorded on another tape panics wrapping
// adjoint.ErrTapeMismatch.
func seedAndHarvest(tape *adjoint.Tape, y any, inputs []adjoint.Number, sink func(i int, a any)) {
	node, ok := y.(adjoint.Number)
	if !ok {
		var i int
		for i = range inputs {
			sink(i, 0.0)
		}

		return
	}
	if node.Tape() != tape {
		panic(fmt.Errorf("diff: output recorded elsewhere: %w", adjoint.ErrTapeMismatch))
	}

	node.SetAdjoint(1.0)
	tape.Backpropagate()
	var i int
	for i = range inputs {
		sink(i, inputs[i].Adjoint())
	}
	node.SetAdjoint(0.0)
	tape.Reset()
}

// harvestOne is seedAndHarvest for a single lifted input coordinate.
func harvestOne(tape *adjoint.Tape, y any, input adjoint.Number) any {
	var out any = 0.0
	seedAndHarvest(tape, y, []adjoint.Number{input}, func(_ int, a any) { out = a })

	return out
}
