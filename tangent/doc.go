// Package tangent implements the forward-mode (tangent) AD scalar: a dual
// number carrying a value and the directional derivative propagated
// alongside it.
//
// 🚀 What is a tangent number?
//
//	A pair (value, derivative). Every arithmetic operation combines both
//	halves at once, so after evaluating f on seeded inputs the outputs
//	already carry ∂f/∂direction:
//
//	  u = (a, ȧ), v = (b, ḃ)
//	  u*v = (a·b, ȧ·b + a·ḃ)
//
// ✨ Key properties:
//
//   - Pure value — a Number is immutable after construction; no tape,
//     no shared state, no aliasing
//   - Closed — combining two Numbers, or a Number and a plain float,
//     always yields a Number
//   - Nestable — value and derivative are untyped components, so they may
//     themselves be AD scalars (this is how Hessians compose)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/autodiff/num"
//	  "github.com/katalvlaran/autodiff/tangent"
//	)
//
//	x := tangent.Seed(2.0)           // value 2, derivative 1
//	y := num.Mul(num.Sin(x), x)      // y.(*tangent.Number)
//	dy := y.(*tangent.Number).Derivative()
//
// Comparisons (num.Less and friends) use primal values only, so branches
// in user code take the same path as in an undifferentiated run.
//
// One pass of f under seeded tangent numbers yields one directional
// derivative; the diff package drives one pass per input coordinate to
// assemble a full Jacobian.
package tangent
