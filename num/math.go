// Package num: dispatching free functions.
//
// Every function below first offers the operation to an operand that
// implements Value; only when no operand does is the plain float64
// arithmetic from the math package used. This is the single extension
// point that lets user code written against these functions run unchanged
// on plain numbers, AD scalars, and element-polymorphic containers.
package num

import (
	"fmt"
	"math"
)

// lift converts a plain numeric operand to float64.
// The second result reports whether the operand was a plain number.
func lift(a any) (float64, bool) {
	switch v := a.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}

	return 0, false
}

// operandErr builds the panic payload for a hopeless operand pairing.
func operandErr(op string, a any) error {
	return fmt.Errorf("num: %s on %T: %w", op, a, ErrUnsupportedOperand)
}

// binary applies the shared three-step resolution for binary operators:
// left capability, right (reflected) capability, plain-float fallback.
func binary(op string, a, b any, method func(Value, any) Value, plain func(x, y float64) float64) any {
	// 1) The left operand gets the first attempt.
	if v, ok := a.(Value); ok {
		return method(v, b)
	}
	// 2) The right operand gets the last word (reflected form).
	if v, ok := b.(Value); ok {
		return reflected(op, v, a)
	}
	// 3) Plain numbers on both sides: ordinary float arithmetic.
	x, okx := lift(a)
	y, oky := lift(b)
	if !okx {
		panic(operandErr(op, a))
	}
	if !oky {
		panic(operandErr(op, b))
	}

	return plain(x, y)
}

// reflected routes op to the matching R-method of v.
func reflected(op string, v Value, other any) Value {
	switch op {
	case "add":
		return v.RAdd(other)
	case "sub":
		return v.RSub(other)
	case "mul":
		return v.RMul(other)
	case "div":
		return v.RDiv(other)
	case "pow":
		return v.RPow(other)
	}
	panic(operandErr(op, v))
}

// Add returns a + b.
func Add(a, b any) any {
	return binary("add", a, b, Value.Add, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b.
func Sub(a, b any) any {
	return binary("sub", a, b, Value.Sub, func(x, y float64) float64 { return x - y })
}

// Mul returns a * b.
func Mul(a, b any) any {
	return binary("mul", a, b, Value.Mul, func(x, y float64) float64 { return x * y })
}

// Div returns a / b.
func Div(a, b any) any {
	return binary("div", a, b, Value.Div, func(x, y float64) float64 { return x / y })
}

// Pow returns a raised to the power b.
func Pow(a, b any) any {
	return binary("pow", a, b, Value.Pow, math.Pow)
}

// Neg returns -a.
func Neg(a any) any {
	if v, ok := a.(Value); ok {
		return v.Neg()
	}
	if x, ok := lift(a); ok {
		return -x
	}
	panic(operandErr("neg", a))
}

// Pos returns +a (the identity with derivative bookkeeping preserved).
func Pos(a any) any {
	if v, ok := a.(Value); ok {
		return v.Pos()
	}
	if x, ok := lift(a); ok {
		return x
	}
	panic(operandErr("pos", a))
}

// Abs returns |a|. At zero it panics wrapping ErrNotDifferentiable for a
// tangent operand with a nonzero incoming derivative, and for any adjoint
// operand.
func Abs(a any) any {
	if v, ok := a.(Value); ok {
		return v.Abs()
	}
	if x, ok := lift(a); ok {
		return math.Abs(x)
	}
	panic(operandErr("abs", a))
}

// unary applies the shared capability-then-fallback resolution for the
// elementary functions.
func unary(op string, a any, method func(Value) Value, plain func(float64) float64) any {
	if v, ok := a.(Value); ok {
		return method(v)
	}
	if x, ok := lift(a); ok {
		return plain(x)
	}
	panic(operandErr(op, a))
}

// Sin returns the sine of a.
func Sin(a any) any { return unary("sin", a, Value.Sin, math.Sin) }

// Cos returns the cosine of a.
func Cos(a any) any { return unary("cos", a, Value.Cos, math.Cos) }

// Exp returns e raised to the power a.
func Exp(a any) any { return unary("exp", a, Value.Exp, math.Exp) }

// Log returns the natural logarithm of a.
func Log(a any) any { return unary("log", a, Value.Log, math.Log) }

// Sqrt returns the square root of a.
func Sqrt(a any) any { return unary("sqrt", a, Value.Sqrt, math.Sqrt) }

// Float collapses a (possibly nested) scalar operand to its primal float64.
func Float(a any) float64 {
	if v, ok := a.(Value); ok {
		return v.Float()
	}
	if x, ok := lift(a); ok {
		return x
	}
	panic(operandErr("float", a))
}

// Ordering predicates compare primal values and discard all derivative
// information, so branching user code behaves identically with and without
// differentiation.

// Less reports a < b by primal value.
func Less(a, b any) bool { return Float(a) < Float(b) }

// LessOrEqual reports a <= b by primal value.
func LessOrEqual(a, b any) bool { return Float(a) <= Float(b) }

// Greater reports a > b by primal value.
func Greater(a, b any) bool { return Float(a) > Float(b) }

// GreaterOrEqual reports a >= b by primal value.
func GreaterOrEqual(a, b any) bool { return Float(a) >= Float(b) }

// Equal reports a == b by primal value.
func Equal(a, b any) bool { return Float(a) == Float(b) }

// NotEqual reports a != b by primal value.
func NotEqual(a, b any) bool { return Float(a) != Float(b) }
