// Package diff - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points over the two drivers.
//   - Avoid any logic duplication - each facade delegates to the canonical
//     driver; Hessian composes the two modes instead of owning a third.
//
// Error policy:
//   - The Must* drivers panic with wrapped sentinels so they compose under
//     nesting; everything below recovers at the boundary and returns the
//     error. No partial Jacobian ever escapes a failed evaluation.
package diff

// Forward evaluates the forward-mode (tangent) Jacobian of f at x.
//
// Inputs:
//   - f: the function to differentiate.
//   - x: float64 (or int), []float64, or *tensor.Dense.
//
// Returns:
//   - float64 for scalar input and scalar output; *tensor.Dense of shape
//     shape(f(x)) ++ shape(x) otherwise.
//
// Errors:
//   - num.ErrNotDifferentiable, num.ErrUnsupportedOperand,
//     adjoint.ErrTapeMismatch, ErrShapeMismatch, tensor sentinels.
//
// Complexity: one evaluation of f per input coordinate.
func Forward(f Func, x any) (out any, err error) {
	defer rescue(&err)

	return MustForward(f, x), nil
}

// Reverse evaluates the reverse-mode (adjoint) Jacobian of f at x.
//
// Inputs, returns, and errors match Forward.
//
// Complexity: one evaluation of f plus one tape traversal per output
// coordinate.
func Reverse(f Func, x any) (out any, err error) {
	defer rescue(&err)

	return MustReverse(f, x), nil
}

// DerFor wraps forward-mode differentiation of f as a closure.
func DerFor(f Func) func(x any) (any, error) {
	return func(x any) (any, error) { return Forward(f, x) }
}

// DerRev wraps reverse-mode differentiation of f as a closure.
func DerRev(f Func) func(x any) (any, error) {
	return func(x any) (any, error) { return Reverse(f, x) }
}

// Derivative returns the derivative function of f, computed in forward
// mode. The name follows the scalar-calculus convention, but f may have
// any supported input and output shape.
func Derivative(f Func) func(x any) (any, error) { return DerFor(f) }

// Gradient returns the gradient function of f, computed in reverse mode.
// The name follows the convention for scalar-valued f of vector input,
// but f may have any supported input and output shape.
func Gradient(f Func) func(x any) (any, error) { return DerRev(f) }

// Hessian returns the Hessian function of f: forward-mode differentiation
// of the reverse-mode gradient. Correct nesting falls out of capability
// dispatch — the inner tape records adjoint numbers whose values are
// tangent numbers, and every local partial participates in the outer
// differentiation.
func Hessian(f Func) func(x any) (any, error) {
	return DerFor(func(x any) any { return MustReverse(f, x) })
}
