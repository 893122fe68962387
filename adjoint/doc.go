// Package adjoint implements the reverse-mode (adjoint) AD scalar and the
// tape it records onto.
//
// 🚀 What is reverse mode?
//
//	Run f once while recording every elementary operation, then walk the
//	record backwards, pushing each node's accumulated sensitivity onto the
//	operands that produced it:
//
//	  parent.adjoint += local_partial · node.adjoint
//
//	One forward evaluation plus one backward sweep yields the gradient of
//	one output with respect to every input — the cheap direction for
//	scalar-valued cost functions.
//
// ✨ Design:
//
//   - Tape — an append-only arena of nodes; insertion order is creation
//     order, which is a valid topological order of the computation DAG,
//     so backpropagation is a single reverse linear scan
//   - Number — a small {tape, index} handle; dependencies name their
//     parents by index into the arena, never by pointer, so the structure
//     is acyclic by construction
//   - Reset zeroes every adjoint but keeps values and dependencies, which
//     lets one recording be re-seeded once per output coordinate when
//     harvesting a full Jacobian
//
// ⚙️ Usage:
//
//	tape := adjoint.NewTape()
//	x := tape.Lift(2.0)
//	y := num.Mul(num.Sin(x), x).(adjoint.Number)
//	y.SetAdjoint(1.0)
//	tape.Backpropagate()
//	dx := x.Adjoint() // cos(2)·2 + sin(2)
//
// A tape is single-threaded and owned by the driver that created it.
// Multiple tapes may coexist (nested differentiation relies on that), but
// combining numbers from different tapes panics wrapping ErrTapeMismatch.
package adjoint
