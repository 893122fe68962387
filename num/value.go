// Package num: the Value capability interface and sentinel errors.
// This file declares ONLY the contract and the package-level sentinels.
// The dispatching free functions live in math.go.
package num

import "errors"

// Sentinel errors for capability dispatch.
var (
	// ErrUnsupportedOperand indicates an operator met an operand that is
	// neither a plain number nor a Value, so no fallback exists.
	ErrUnsupportedOperand = errors.New("num: unsupported operand")

	// ErrNotDifferentiable indicates an operator was evaluated at a point
	// where its derivative does not exist (|x| at x = 0: in tangent mode
	// with a nonzero incoming derivative, in adjoint mode always).
	ErrNotDifferentiable = errors.New("num: not differentiable")
)

// Value is the number-like capability contract.
//
// A Value is closed under the binary operators {+, -, *, /, ^}, the unary
// operators {negation, identity, absolute value}, and the elementary
// functions {sin, cos, exp, log, sqrt}. Binary methods accept an untyped
// operand so that every implementation decides how to combine itself with
// plain numbers, with peers of its own kind, and with foreign Values.
//
// Resolution order inside every binary method:
//  1. operand of the receiver's own kind — apply the full two-sided rule;
//  2. operand implementing Value but of a foreign kind — delegate to the
//     operand's reflected method (the operand dictates the result type);
//  3. plain number — treat it as a constant;
//  4. anything else — panic wrapping ErrUnsupportedOperand.
//
// tensor.Dense follows step 1 for another Dense and otherwise broadcasts the
// operand against every element; it does not delegate to foreign Values.
//
// The reflected methods (RAdd, RSub, ...) compute "operand ∘ receiver" for
// an operand that already failed to recognize the receiver; implementations
// may assume the operand is a plain number or a foreign Value that chose to
// yield.
//
// Implementations: the forward-mode tangent.Number, the reverse-mode
// adjoint.Number, and the dense container tensor.Dense (which broadcasts
// every operation per element).
type Value interface {
	// Binary operators: receiver ∘ other.
	Add(other any) Value
	Sub(other any) Value
	Mul(other any) Value
	Div(other any) Value
	Pow(other any) Value

	// Reflected binary operators: other ∘ receiver.
	RAdd(other any) Value
	RSub(other any) Value
	RMul(other any) Value
	RDiv(other any) Value
	RPow(other any) Value

	// Unary operators.
	Neg() Value
	Pos() Value
	Abs() Value

	// Elementary functions.
	Sin() Value
	Cos() Value
	Exp() Value
	Log() Value
	Sqrt() Value

	// Float collapses the (possibly nested) primal value to a float64.
	// Containers panic wrapping ErrUnsupportedOperand.
	Float() float64
}
