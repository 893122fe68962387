// Package autodiff - top-level facades.
// Thin aliases over diff and num so user code needs a single import for
// both differentiation and the overloaded math functions.
package autodiff

import (
	"github.com/katalvlaran/autodiff/diff"
	"github.com/katalvlaran/autodiff/num"
)

// Func is a differentiable function; see diff.Func.
type Func = diff.Func

// DerFor wraps forward-mode (tangent) differentiation of f.
func DerFor(f Func) func(x any) (any, error) { return diff.DerFor(f) }

// DerRev wraps reverse-mode (adjoint) differentiation of f.
func DerRev(f Func) func(x any) (any, error) { return diff.DerRev(f) }

// Derivative returns the derivative function of f (forward mode).
func Derivative(f Func) func(x any) (any, error) { return diff.Derivative(f) }

// Gradient returns the gradient function of f (reverse mode).
func Gradient(f Func) func(x any) (any, error) { return diff.Gradient(f) }

// Hessian returns the Hessian function of f (forward over reverse).
func Hessian(f Func) func(x any) (any, error) { return diff.Hessian(f) }

// Sin dispatches the sine to the operand's capability, falling back to
// math.Sin for plain numbers. The remaining functions mirror it.
func Sin(a any) any { return num.Sin(a) }

// Cos dispatches the cosine.
func Cos(a any) any { return num.Cos(a) }

// Exp dispatches the exponential.
func Exp(a any) any { return num.Exp(a) }

// Log dispatches the natural logarithm.
func Log(a any) any { return num.Log(a) }

// Sqrt dispatches the square root.
func Sqrt(a any) any { return num.Sqrt(a) }
