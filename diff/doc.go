// Package diff drives automatic differentiation: it lifts raw inputs into
// AD scalars, evaluates the user function, harvests derivatives, and
// assembles Jacobians of shape shape(f(x)) ++ shape(x).
//
// 🚀 What is diff?
//
//	The user-facing surface of the module:
//
//	  • Forward / Reverse   — one-shot drivers: J = mode(f, x)
//	  • DerFor / DerRev     — closure factories over the drivers
//	  • Derivative          — alias of DerFor (forward mode)
//	  • Gradient            — alias of DerRev (reverse mode)
//	  • Hessian             — forward differentiation of the reverse
//	                          gradient (derivatives of derivatives)
//
// ✨ Mode selection:
//
//   - Forward: one evaluation of f per input coordinate; optimal when the
//     input dimension is small relative to the output dimension
//   - Reverse: one evaluation of f plus one tape traversal per output
//     coordinate; optimal for scalar costs of many inputs (gradients)
//
// ⚙️ Usage:
//
//	f := func(x any) any {
//	  v := x.(*tensor.Dense)
//	  return num.Sub(num.Mul(num.Sin(v.At(0)), v.At(1)), v.At(0))
//	}
//	grad, err := diff.Gradient(f)([]float64{1, 3})
//	// grad.(*tensor.Dense).Floats() ≈ [0.6209, 0.8415]
//
// Accepted inputs: float64 (or int), []float64, *tensor.Dense of any rank.
// A scalar-to-scalar derivative comes back as float64; every other
// Jacobian comes back as *tensor.Dense.
//
// Failures inside an evaluation (non-differentiable point, tape mismatch,
// inconsistent output shapes, unsupported operand) abort the driver call:
// no partial Jacobian is returned, the tape is discarded, and the sentinel
// arrives wrapped in the returned error. The drivers run strictly
// sequentially on the calling goroutine; distinct driver calls may run on
// distinct goroutines since tapes are never shared between them.
package diff
