// Package tangent: the dual-number implementation of num.Value.
package tangent

import (
	"fmt"

	"github.com/katalvlaran/autodiff/num"
)

// Number is a forward-mode dual number. Both components are untyped so a
// Number can wrap plain float64s or, when modes are nested, other AD
// scalars. A Number is immutable: every operation returns a fresh one.
type Number struct {
	val any
	der any
}

// New returns a tangent number with the given value and derivative 0.
func New(value any) *Number {
	return &Number{val: value, der: 0.0}
}

// Seed returns a tangent number with the given value and derivative 1,
// selecting this coordinate as the direction of differentiation.
func Seed(value any) *Number {
	return &Number{val: value, der: 1.0}
}

// WithDerivative returns a tangent number with both components supplied.
func WithDerivative(value, derivative any) *Number {
	return &Number{val: value, der: derivative}
}

// Value returns the primal component.
func (n *Number) Value() any { return n.val }

// Derivative returns the derivative component.
func (n *Number) Derivative() any { return n.der }

// Float collapses the (possibly nested) primal component to a float64.
func (n *Number) Float() float64 { return num.Float(n.val) }

// String renders the primal value, matching how a plain number prints.
func (n *Number) String() string { return fmt.Sprint(n.val) }

// Add returns n + other.
//
// d(u+v) = u̇ + v̇; a plain operand is a constant with zero derivative.
func (n *Number) Add(other any) num.Value {
	if o, ok := other.(*Number); ok {
		return &Number{
			val: num.Add(n.val, o.val),
			der: num.Add(n.der, o.der),
		}
	}
	if o, ok := other.(num.Value); ok {
		// Foreign Value: the operand dictates the result type.
		return o.RAdd(n)
	}

	return &Number{val: num.Add(n.val, other), der: n.der}
}

// RAdd returns other + n for an operand that yielded to n.
func (n *Number) RAdd(other any) num.Value {
	return &Number{val: num.Add(other, n.val), der: n.der}
}

// Sub returns n - other.
//
// d(u-v) = u̇ - v̇.
func (n *Number) Sub(other any) num.Value {
	if o, ok := other.(*Number); ok {
		return &Number{
			val: num.Sub(n.val, o.val),
			der: num.Sub(n.der, o.der),
		}
	}
	if o, ok := other.(num.Value); ok {
		return o.RSub(n)
	}

	return &Number{val: num.Sub(n.val, other), der: n.der}
}

// RSub returns other - n.
func (n *Number) RSub(other any) num.Value {
	return &Number{val: num.Sub(other, n.val), der: num.Neg(n.der)}
}

// Mul returns n * other.
//
// d(u·v) = u̇·v + u·v̇.
func (n *Number) Mul(other any) num.Value {
	if o, ok := other.(*Number); ok {
		return &Number{
			val: num.Mul(n.val, o.val),
			der: num.Add(num.Mul(n.der, o.val), num.Mul(n.val, o.der)),
		}
	}
	if o, ok := other.(num.Value); ok {
		return o.RMul(n)
	}

	return &Number{val: num.Mul(n.val, other), der: num.Mul(n.der, other)}
}

// RMul returns other * n.
func (n *Number) RMul(other any) num.Value {
	return &Number{val: num.Mul(other, n.val), der: num.Mul(other, n.der)}
}

// Div returns n / other.
//
// d(u/v) = u̇/v - u·v̇/v².
func (n *Number) Div(other any) num.Value {
	if o, ok := other.(*Number); ok {
		return &Number{
			val: num.Div(n.val, o.val),
			der: num.Sub(
				num.Div(n.der, o.val),
				num.Mul(num.Div(n.val, num.Mul(o.val, o.val)), o.der),
			),
		}
	}
	if o, ok := other.(num.Value); ok {
		return o.RDiv(n)
	}

	return &Number{val: num.Div(n.val, other), der: num.Div(n.der, other)}
}

// RDiv returns other / n.
//
// d(c/v) = -c·v̇/v².
func (n *Number) RDiv(other any) num.Value {
	return &Number{
		val: num.Div(other, n.val),
		der: num.Mul(num.Neg(num.Div(other, num.Mul(n.val, n.val))), n.der),
	}
}

// Pow returns n raised to the power other.
//
// d(u^v) = v·u^(v-1)·u̇ + u^v·log(u)·v̇. With a constant exponent only the
// first term survives, which keeps u^c differentiable for u <= 0 wherever
// the power rule itself is defined.
func (n *Number) Pow(other any) num.Value {
	if o, ok := other.(*Number); ok {
		value := num.Pow(n.val, o.val)

		return &Number{
			val: value,
			der: num.Add(
				num.Mul(num.Mul(o.val, num.Pow(n.val, num.Sub(o.val, 1.0))), n.der),
				num.Mul(num.Mul(value, num.Log(n.val)), o.der),
			),
		}
	}
	if o, ok := other.(num.Value); ok {
		return o.RPow(n)
	}

	return &Number{
		val: num.Pow(n.val, other),
		der: num.Mul(num.Mul(other, num.Pow(n.val, num.Sub(other, 1.0))), n.der),
	}
}

// RPow returns other raised to the power n.
//
// d(c^v) = c^v·log(c)·v̇.
func (n *Number) RPow(other any) num.Value {
	value := num.Pow(other, n.val)

	return &Number{
		val: value,
		der: num.Mul(num.Mul(value, num.Log(other)), n.der),
	}
}

// Neg returns -n.
func (n *Number) Neg() num.Value {
	return &Number{val: num.Neg(n.val), der: num.Neg(n.der)}
}

// Pos returns +n, an identity that preserves the derivative.
func (n *Number) Pos() num.Value {
	return &Number{val: n.val, der: n.der}
}

// Abs returns |n|.
//
// d|u| = sign(u)·u̇. At u = 0 the derivative exists only when the incoming
// derivative is zero; otherwise Abs panics wrapping num.ErrNotDifferentiable.
func (n *Number) Abs() num.Value {
	if num.Float(n.val) == 0 {
		if num.Float(n.der) != 0 {
			panic(fmt.Errorf("tangent: |x| at x = 0: %w", num.ErrNotDifferentiable))
		}

		return &Number{val: num.Abs(n.val), der: num.Mul(0.0, n.der)}
	}

	return &Number{
		val: num.Abs(n.val),
		der: num.Mul(num.Div(n.val, num.Abs(n.val)), n.der),
	}
}

// Sin returns sin(n); d sin(u) = cos(u)·u̇.
func (n *Number) Sin() num.Value {
	return &Number{
		val: num.Sin(n.val),
		der: num.Mul(num.Cos(n.val), n.der),
	}
}

// Cos returns cos(n); d cos(u) = -sin(u)·u̇.
func (n *Number) Cos() num.Value {
	return &Number{
		val: num.Cos(n.val),
		der: num.Mul(num.Neg(num.Sin(n.val)), n.der),
	}
}

// Exp returns exp(n); d exp(u) = exp(u)·u̇.
func (n *Number) Exp() num.Value {
	value := num.Exp(n.val)

	return &Number{val: value, der: num.Mul(value, n.der)}
}

// Log returns log(n); d log(u) = u̇/u.
func (n *Number) Log() num.Value {
	return &Number{val: num.Log(n.val), der: num.Div(n.der, n.val)}
}

// Sqrt returns sqrt(n); d sqrt(u) = u̇/(2·sqrt(u)).
func (n *Number) Sqrt() num.Value {
	value := num.Sqrt(n.val)

	return &Number{val: value, der: num.Div(n.der, num.Mul(2.0, value))}
}

// Less reports n < other by primal value.
func (n *Number) Less(other any) bool { return num.Less(n, other) }

// LessOrEqual reports n <= other by primal value.
func (n *Number) LessOrEqual(other any) bool { return num.LessOrEqual(n, other) }

// Greater reports n > other by primal value.
func (n *Number) Greater(other any) bool { return num.Greater(n, other) }

// GreaterOrEqual reports n >= other by primal value.
func (n *Number) GreaterOrEqual(other any) bool { return num.GreaterOrEqual(n, other) }

// Equal reports n == other by primal value.
func (n *Number) Equal(other any) bool { return num.Equal(n, other) }

// NotEqual reports n != other by primal value.
func (n *Number) NotEqual(other any) bool { return num.NotEqual(n, other) }
