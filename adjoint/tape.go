// Package adjoint: the tape arena and its traversal.
package adjoint

import (
	"errors"

	"github.com/katalvlaran/autodiff/num"
)

// Sentinel errors for tape discipline.
var (
	// ErrTapeMismatch indicates two adjoint operands belong to different
	// tapes. This is a programmer error in the differentiated function.
	ErrTapeMismatch = errors.New("adjoint: operands recorded on different tapes")
)

// dep records one operand of an elementary operation: the index of the
// parent node in the tape arena and the local partial derivative of the
// operation's result with respect to that parent. The partial is a plain
// number, or another AD scalar when modes are nested.
type dep struct {
	parent  int
	partial any
}

// node is one recorded elementary result. Nodes live inside the tape's
// backing slice; a Number handle addresses them by index.
type node struct {
	value   any
	adjoint any
	deps    []dep
}

// Tape is an append-only, order-preserving record of every adjoint scalar
// created during one forward evaluation. Because a node's dependencies can
// only name nodes that already existed when it was constructed, insertion
// order is a topological order of the computation DAG.
//
// A Tape is not safe for concurrent use; one evaluation of a differentiated
// function runs on one goroutine.
type Tape struct {
	nodes []node
}

// NewTape returns an empty tape, ready for recording.
func NewTape() *Tape {
	return &Tape{}
}

// Len returns the number of recorded nodes.
func (t *Tape) Len() int { return len(t.nodes) }

// Lift registers value as an independent node (no dependencies) and returns
// its handle. Drivers lift every input coordinate before evaluating f.
func (t *Tape) Lift(value any) Number {
	return t.register(value, nil)
}

// register appends a node and returns its handle. O(1) amortized.
func (t *Tape) register(value any, deps []dep) Number {
	t.nodes = append(t.nodes, node{value: value, adjoint: 0.0, deps: deps})

	return Number{tape: t, index: len(t.nodes) - 1}
}

// Backpropagate walks the record in reverse creation order and, for every
// node, accumulates parent.adjoint += partial · node.adjoint across its
// dependencies.
//
// Reverse order guarantees each node's own adjoint is final before it is
// distributed, so one linear pass applies the full chain rule. Within one
// node, dependencies are visited in the order supplied at construction.
func (t *Tape) Backpropagate() {
	var i int
	for i = len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		for _, d := range n.deps {
			p := &t.nodes[d.parent]
			p.adjoint = num.Add(p.adjoint, num.Mul(d.partial, n.adjoint))
		}
	}
}

// Reset zeroes every node's adjoint while keeping values and dependency
// structure intact, so the same recording can be seeded again for the next
// output coordinate.
func (t *Tape) Reset() {
	var i int
	for i = range t.nodes {
		t.nodes[i].adjoint = 0.0
	}
}
