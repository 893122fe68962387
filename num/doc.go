// Package num defines the number-like capability contract shared by every
// differentiable scalar in this module, and the free math functions that
// dispatch on it.
//
// 🚀 What is num?
//
//	The glue that lets one piece of user code run unchanged on plain
//	float64s, forward-mode duals, reverse-mode tape nodes, and dense
//	arrays of any of those:
//
//	  • Value       — the narrow "behaves like a number" interface
//	  • Add/Mul/... — free binary operators that prefer an operand's
//	                  own capability and fall back to float arithmetic
//	  • Sin/Cos/Exp/Log/Sqrt — elementary functions with a math-package
//	                  fallback for plain operands
//	  • Less/Equal/... — ordering predicates on primal values
//
// ✨ Why capability dispatch?
//
//   - No nominal subtyping — anything implementing Value participates,
//     including containers that broadcast per element
//   - Closed under nesting — a Value whose components are themselves
//     Values (dual-of-adjoint, adjoint-of-dual) composes for free
//   - The right operand gets the last word: when the left side does not
//     recognize its partner it delegates, which is what lets an array
//     wrap and broadcast a scalar
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/autodiff/num"
//
//	y := num.Add(num.Mul(num.Sin(x), 3.0), 1.0) // x may be anything number-like
//
// Errors are signalled by panicking with a wrapped sentinel
// (ErrUnsupportedOperand, ErrNotDifferentiable); the diff drivers recover
// them at their boundary and return them as ordinary errors.
package num
