// Package tensor provides a dense, row-major, n-dimensional array with
// element-polymorphic storage — the container the differentiation drivers
// lift inputs into and assemble Jacobians out of.
//
// 🚀 What is tensor?
//
//	A flat backing slice plus a shape. Elements are untyped, so one Dense
//	can hold plain float64s, forward-mode duals, reverse-mode tape nodes,
//	or any mix the chain rule produces:
//
//	  • Dense        — shape, strides, flat row-major data
//	  • elementwise  — Add/Sub/Mul/Div/Pow and Sin/Cos/Exp/Log/Sqrt that
//	                   dispatch per element through the num package
//	  • broadcast    — a scalar operand is applied against every element
//
// ✨ Why another array type?
//
//   - Element polymorphism — AD scalars are objects; a float64-only
//     matrix cannot carry them
//   - Stable iteration — row-major flat order is the index order the
//     drivers rely on when concatenating Jacobian shapes
//   - Capability citizen — Dense implements num.Value, so user code like
//     num.Mul(num.Sin(x), 3.0) broadcasts over a whole array unchanged
//
// ⚙️ Usage:
//
//	x, _ := tensor.FromFloats([]float64{1, 2, 3})
//	y := num.Mul(num.Sin(x), x).(*tensor.Dense) // elementwise sin(x)·x
//
// Indexing out of range and shape-incompatible operands are programmer
// errors and panic with wrapped sentinels (ErrIndexOutOfBounds,
// ErrDimensionMismatch); the diff drivers recover them into returned
// errors at their boundary.
package tensor
