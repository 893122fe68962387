// Package adjoint: the reverse-mode implementation of num.Value.
package adjoint

import (
	"fmt"

	"github.com/katalvlaran/autodiff/num"
)

// Number is a handle to one node in a tape's arena. It is a small value
// type: copying a Number aliases the same recorded node.
//
// Every operator computes the result's value from the operands' values,
// derives the local partial with respect to each adjoint operand, and
// registers a fresh node on the shared tape. Plain operands are constants
// and contribute no dependency.
type Number struct {
	tape  *Tape
	index int
}

// Value returns the node's recorded value.
func (n Number) Value() any { return n.tape.nodes[n.index].value }

// Adjoint returns the node's accumulated adjoint.
func (n Number) Adjoint() any { return n.tape.nodes[n.index].adjoint }

// SetAdjoint overwrites the node's adjoint. Drivers use it to seed one
// output coordinate to 1 before backpropagation and to clear it after.
func (n Number) SetAdjoint(a any) { n.tape.nodes[n.index].adjoint = a }

// Tape returns the owning tape.
func (n Number) Tape() *Tape { return n.tape }

// Float collapses the (possibly nested) recorded value to a float64.
func (n Number) Float() float64 { return num.Float(n.Value()) }

// String renders the recorded value, matching how a plain number prints.
func (n Number) String() string { return fmt.Sprint(n.Value()) }

// sameTape asserts that o was recorded on n's tape.
func (n Number) sameTape(o Number) *Tape {
	if n.tape != o.tape {
		panic(fmt.Errorf("adjoint: binary operation: %w", ErrTapeMismatch))
	}

	return n.tape
}

// Add returns n + other; ∂/∂n = 1, ∂/∂other = 1.
func (n Number) Add(other any) num.Value {
	if o, ok := other.(Number); ok {
		t := n.sameTape(o)

		return t.register(
			num.Add(n.Value(), o.Value()),
			[]dep{{parent: n.index, partial: 1.0}, {parent: o.index, partial: 1.0}},
		)
	}
	if o, ok := other.(num.Value); ok {
		// Foreign Value: the operand dictates the result type.
		return o.RAdd(n)
	}

	return n.tape.register(
		num.Add(n.Value(), other),
		[]dep{{parent: n.index, partial: 1.0}},
	)
}

// RAdd returns other + n for an operand that yielded to n.
func (n Number) RAdd(other any) num.Value {
	return n.tape.register(
		num.Add(other, n.Value()),
		[]dep{{parent: n.index, partial: 1.0}},
	)
}

// Sub returns n - other; ∂/∂n = 1, ∂/∂other = -1.
func (n Number) Sub(other any) num.Value {
	if o, ok := other.(Number); ok {
		t := n.sameTape(o)

		return t.register(
			num.Sub(n.Value(), o.Value()),
			[]dep{{parent: n.index, partial: 1.0}, {parent: o.index, partial: -1.0}},
		)
	}
	if o, ok := other.(num.Value); ok {
		return o.RSub(n)
	}

	return n.tape.register(
		num.Sub(n.Value(), other),
		[]dep{{parent: n.index, partial: 1.0}},
	)
}

// RSub returns other - n; ∂/∂n = -1.
func (n Number) RSub(other any) num.Value {
	return n.tape.register(
		num.Sub(other, n.Value()),
		[]dep{{parent: n.index, partial: -1.0}},
	)
}

// Mul returns n * other; ∂/∂n = other, ∂/∂other = n.
func (n Number) Mul(other any) num.Value {
	if o, ok := other.(Number); ok {
		t := n.sameTape(o)

		return t.register(
			num.Mul(n.Value(), o.Value()),
			[]dep{{parent: n.index, partial: o.Value()}, {parent: o.index, partial: n.Value()}},
		)
	}
	if o, ok := other.(num.Value); ok {
		return o.RMul(n)
	}

	return n.tape.register(
		num.Mul(n.Value(), other),
		[]dep{{parent: n.index, partial: other}},
	)
}

// RMul returns other * n; ∂/∂n = other.
func (n Number) RMul(other any) num.Value {
	return n.tape.register(
		num.Mul(other, n.Value()),
		[]dep{{parent: n.index, partial: other}},
	)
}

// Div returns n / other; ∂/∂n = 1/other, ∂/∂other = -n/other².
func (n Number) Div(other any) num.Value {
	if o, ok := other.(Number); ok {
		t := n.sameTape(o)

		return t.register(
			num.Div(n.Value(), o.Value()),
			[]dep{
				{parent: n.index, partial: num.Div(1.0, o.Value())},
				{parent: o.index, partial: num.Neg(num.Div(n.Value(), num.Mul(o.Value(), o.Value())))},
			},
		)
	}
	if o, ok := other.(num.Value); ok {
		return o.RDiv(n)
	}

	return n.tape.register(
		num.Div(n.Value(), other),
		[]dep{{parent: n.index, partial: num.Div(1.0, other)}},
	)
}

// RDiv returns other / n; ∂/∂n = -other/n².
func (n Number) RDiv(other any) num.Value {
	return n.tape.register(
		num.Div(other, n.Value()),
		[]dep{{parent: n.index, partial: num.Neg(num.Div(other, num.Mul(n.Value(), n.Value())))}},
	)
}

// Pow returns n raised to the power other;
// ∂/∂n = other·n^(other-1), ∂/∂other = n^other·log(n).
func (n Number) Pow(other any) num.Value {
	if o, ok := other.(Number); ok {
		t := n.sameTape(o)
		value := num.Pow(n.Value(), o.Value())

		return t.register(
			value,
			[]dep{
				{parent: n.index, partial: num.Mul(o.Value(), num.Pow(n.Value(), num.Sub(o.Value(), 1.0)))},
				{parent: o.index, partial: num.Mul(value, num.Log(n.Value()))},
			},
		)
	}
	if o, ok := other.(num.Value); ok {
		return o.RPow(n)
	}

	return n.tape.register(
		num.Pow(n.Value(), other),
		[]dep{{parent: n.index, partial: num.Mul(other, num.Pow(n.Value(), num.Sub(other, 1.0)))}},
	)
}

// RPow returns other raised to the power n; ∂/∂n = other^n·log(other).
func (n Number) RPow(other any) num.Value {
	value := num.Pow(other, n.Value())

	return n.tape.register(
		value,
		[]dep{{parent: n.index, partial: num.Mul(value, num.Log(other))}},
	)
}

// Neg returns -n; ∂/∂n = -1.
func (n Number) Neg() num.Value {
	return n.tape.register(
		num.Neg(n.Value()),
		[]dep{{parent: n.index, partial: -1.0}},
	)
}

// Pos returns +n, an identity node with ∂/∂n = 1. Its dependency list is an
// ordinary one-element slice, uniform with every other operator.
func (n Number) Pos() num.Value {
	return n.tape.register(
		n.Value(),
		[]dep{{parent: n.index, partial: 1.0}},
	)
}

// Abs returns |n|; ∂/∂n = sign(n).
//
// At n = 0 the sign is undefined and the seeding that would make the point
// harmless is unknown at recording time, so Abs panics wrapping
// num.ErrNotDifferentiable.
func (n Number) Abs() num.Value {
	if num.Float(n.Value()) == 0 {
		panic(fmt.Errorf("adjoint: |x| at x = 0: %w", num.ErrNotDifferentiable))
	}

	return n.tape.register(
		num.Abs(n.Value()),
		[]dep{{parent: n.index, partial: num.Div(n.Value(), num.Abs(n.Value()))}},
	)
}

// Sin returns sin(n); ∂/∂n = cos(n).
func (n Number) Sin() num.Value {
	return n.tape.register(
		num.Sin(n.Value()),
		[]dep{{parent: n.index, partial: num.Cos(n.Value())}},
	)
}

// Cos returns cos(n); ∂/∂n = -sin(n).
func (n Number) Cos() num.Value {
	return n.tape.register(
		num.Cos(n.Value()),
		[]dep{{parent: n.index, partial: num.Neg(num.Sin(n.Value()))}},
	)
}

// Exp returns exp(n); ∂/∂n = exp(n).
func (n Number) Exp() num.Value {
	value := num.Exp(n.Value())

	return n.tape.register(value, []dep{{parent: n.index, partial: value}})
}

// Log returns log(n); ∂/∂n = 1/n.
func (n Number) Log() num.Value {
	return n.tape.register(
		num.Log(n.Value()),
		[]dep{{parent: n.index, partial: num.Div(1.0, n.Value())}},
	)
}

// Sqrt returns sqrt(n); ∂/∂n = 1/(2·sqrt(n)).
func (n Number) Sqrt() num.Value {
	value := num.Sqrt(n.Value())

	return n.tape.register(
		value,
		[]dep{{parent: n.index, partial: num.Div(1.0, num.Mul(2.0, value))}},
	)
}

// Less reports n < other by primal value.
func (n Number) Less(other any) bool { return num.Less(n, other) }

// LessOrEqual reports n <= other by primal value.
func (n Number) LessOrEqual(other any) bool { return num.LessOrEqual(n, other) }

// Greater reports n > other by primal value.
func (n Number) Greater(other any) bool { return num.Greater(n, other) }

// GreaterOrEqual reports n >= other by primal value.
func (n Number) GreaterOrEqual(other any) bool { return num.GreaterOrEqual(n, other) }

// Equal reports n == other by primal value.
func (n Number) Equal(other any) bool { return num.Equal(n, other) }

// NotEqual reports n != other by primal value.
func (n Number) NotEqual(other any) bool { return num.NotEqual(n, other) }
