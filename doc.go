// Package autodiff computes exact derivatives of numerical Go code by
// operator overloading — no symbolic manipulation, no finite differences,
// no source rewriting.
//
// 🚀 What is autodiff?
//
//	Write a function once against the dispatching math operators, then ask
//	for its derivative, gradient, or Hessian at any point:
//
//	  • Forward (tangent) mode — dual numbers propagate a directional
//	    derivative alongside every value; one pass per input coordinate
//	  • Reverse (adjoint) mode — a tape records the computation once and
//	    is walked backwards once per output coordinate
//	  • Nesting — a Hessian is the forward derivative of the reverse
//	    gradient; modes compose because every operator dispatches on
//	    capabilities, not concrete types
//
// ✨ Why choose autodiff?
//
//   - Exact             — derivatives to machine precision, not difference
//     quotients
//   - Shape-polymorphic — scalars, slices, and dense n-d arrays in, the
//     Jacobian of shape shape(f(x)) ++ shape(x) out
//   - Pure Go           — explicit tapes, no global state, no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	num/     — the number-like capability interface + dispatching sin/cos/
//	           exp/log/sqrt and operators with plain-float fallback
//	tangent/ — the forward-mode dual number
//	adjoint/ — the reverse-mode tape (append-only arena) and its nodes
//	tensor/  — dense n-d container with element-polymorphic storage
//	diff/    — the drivers and the Derivative/Gradient/Hessian wrappers
//
// Quick example:
//
//	f := func(x any) any {
//	  v := x.(*tensor.Dense)
//	  return num.Sub(num.Mul(num.Sin(v.At(0)), v.At(1)), v.At(0))
//	}
//	grad, _ := autodiff.Gradient(f)([]float64{1, 3})
//
// This package re-exports the five entry points and the math functions so
// most callers never import the subpackages directly.
package autodiff
