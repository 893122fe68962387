// Package tensor: elementwise and broadcast kernels.
//
// Purpose:
//   - Implement num.Value on *Dense so a whole array participates in the
//     capability dispatch of the num package.
//   - Keep all loops deterministic over the flat row-major buffer.
//
// Semantics:
//   - Dense ∘ Dense requires identical shapes (panics wrapping
//     ErrDimensionMismatch otherwise) and combines element i with element i.
//   - Dense ∘ scalar broadcasts the scalar against every element.
//   - Per-element combination is delegated to num.Add/Sub/..., so elements
//     may be plain floats or AD scalars and the results stay closed.
//
// No broadcasting beyond scalar-versus-array is provided; the drivers do
// not need it and the AD core must not invent container semantics.
package tensor

import (
	"github.com/katalvlaran/autodiff/num"
)

// zip combines d and o elementwise with fn into a fresh Dense.
func (d *Dense) zip(method string, o *Dense, fn func(a, b any) any) *Dense {
	if !d.SameShape(o) {
		panic(denseErrorf(method, ErrDimensionMismatch))
	}
	out := d.Clone()
	var i int
	for i = range out.data {
		out.data[i] = fn(d.data[i], o.data[i])
	}

	return out
}

// mapEach applies fn to every element into a fresh Dense.
func (d *Dense) mapEach(fn func(a any) any) *Dense {
	out := d.Clone()
	var i int
	for i = range out.data {
		out.data[i] = fn(d.data[i])
	}

	return out
}

// Apply returns a new Dense with fn applied to every element in flat
// row-major order. It is the generic hook user functions can use for
// custom per-element transformations.
func (d *Dense) Apply(fn func(a any) any) *Dense { return d.mapEach(fn) }

// Add returns d + other, elementwise or scalar-broadcast.
func (d *Dense) Add(other any) num.Value {
	if o, ok := other.(*Dense); ok {
		return d.zip("Add", o, num.Add)
	}

	return d.mapEach(func(a any) any { return num.Add(a, other) })
}

// RAdd returns other + d with the scalar broadcast from the left.
func (d *Dense) RAdd(other any) num.Value {
	return d.mapEach(func(a any) any { return num.Add(other, a) })
}

// Sub returns d - other, elementwise or scalar-broadcast.
func (d *Dense) Sub(other any) num.Value {
	if o, ok := other.(*Dense); ok {
		return d.zip("Sub", o, num.Sub)
	}

	return d.mapEach(func(a any) any { return num.Sub(a, other) })
}

// RSub returns other - d with the scalar broadcast from the left.
func (d *Dense) RSub(other any) num.Value {
	return d.mapEach(func(a any) any { return num.Sub(other, a) })
}

// Mul returns d * other, elementwise or scalar-broadcast.
func (d *Dense) Mul(other any) num.Value {
	if o, ok := other.(*Dense); ok {
		return d.zip("Mul", o, num.Mul)
	}

	return d.mapEach(func(a any) any { return num.Mul(a, other) })
}

// RMul returns other * d with the scalar broadcast from the left.
func (d *Dense) RMul(other any) num.Value {
	return d.mapEach(func(a any) any { return num.Mul(other, a) })
}

// Div returns d / other, elementwise or scalar-broadcast.
func (d *Dense) Div(other any) num.Value {
	if o, ok := other.(*Dense); ok {
		return d.zip("Div", o, num.Div)
	}

	return d.mapEach(func(a any) any { return num.Div(a, other) })
}

// RDiv returns other / d with the scalar broadcast from the left.
func (d *Dense) RDiv(other any) num.Value {
	return d.mapEach(func(a any) any { return num.Div(other, a) })
}

// Pow returns d ^ other, elementwise or scalar-broadcast.
func (d *Dense) Pow(other any) num.Value {
	if o, ok := other.(*Dense); ok {
		return d.zip("Pow", o, num.Pow)
	}

	return d.mapEach(func(a any) any { return num.Pow(a, other) })
}

// RPow returns other ^ d with the scalar broadcast from the left.
func (d *Dense) RPow(other any) num.Value {
	return d.mapEach(func(a any) any { return num.Pow(other, a) })
}

// Neg returns -d elementwise.
func (d *Dense) Neg() num.Value { return d.mapEach(num.Neg) }

// Pos returns +d elementwise.
func (d *Dense) Pos() num.Value { return d.mapEach(num.Pos) }

// Abs returns |d| elementwise.
func (d *Dense) Abs() num.Value { return d.mapEach(num.Abs) }

// Sin returns sin(d) elementwise.
func (d *Dense) Sin() num.Value { return d.mapEach(num.Sin) }

// Cos returns cos(d) elementwise.
func (d *Dense) Cos() num.Value { return d.mapEach(num.Cos) }

// Exp returns exp(d) elementwise.
func (d *Dense) Exp() num.Value { return d.mapEach(num.Exp) }

// Log returns log(d) elementwise.
func (d *Dense) Log() num.Value { return d.mapEach(num.Log) }

// Sqrt returns sqrt(d) elementwise.
func (d *Dense) Sqrt() num.Value { return d.mapEach(num.Sqrt) }

// Float is undefined for containers: a Dense has no single primal value.
func (d *Dense) Float() float64 {
	panic(denseErrorf("Float", num.ErrUnsupportedOperand))
}
