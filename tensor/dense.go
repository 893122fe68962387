// Package tensor: the Dense container.
// Dense is a concrete, row-major n-dimensional array storing elements in a
// flat slice for cache friendliness; shape and strides are precomputed at
// construction.
package tensor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/autodiff/num"
)

// Sentinel errors for container construction and access.
var (
	// ErrInvalidDimensions indicates a requested dimension is non-positive
	// or the shape is empty.
	ErrInvalidDimensions = errors.New("tensor: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates an index is outside the valid range of
	// its axis, or the number of indices does not match the rank.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// of an elementwise operation.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrRaggedData indicates row data of uneven lengths was supplied.
	ErrRaggedData = errors.New("tensor: ragged row data")
)

// denseErrorf wraps an underlying sentinel with method context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("tensor: Dense.%s: %w", method, err)
}

// Dense is a row-major n-dimensional array with untyped elements.
//
// The element at index (i₀, i₁, ..., i_{k-1}) lives at flat offset
// Σ i_j·strides[j]; strides[k-1] == 1 and iteration over the flat slice
// visits indices in row-major (last axis fastest) order — the stable order
// the differentiation drivers assume.
type Dense struct {
	shape   []int
	strides []int
	data    []any
}

// New creates a Dense of the given shape with every element set to
// float64(0).
// Stage 1 (Validate): rank >= 1 and every dimension > 0.
// Stage 2 (Prepare): precompute strides, allocate flat storage.
// Stage 3 (Finalize): zero-fill and return.
// Complexity: O(len) time and memory, len = product of dimensions.
func New(shape ...int) (*Dense, error) {
	// Validate rank.
	if len(shape) == 0 {
		return nil, denseErrorf("New", ErrInvalidDimensions)
	}
	// Validate each dimension and accumulate the element count.
	total := 1
	for _, dim := range shape {
		if dim <= 0 {
			return nil, denseErrorf("New", ErrInvalidDimensions)
		}
		total *= dim
	}

	// Precompute row-major strides (last axis contiguous).
	strides := make([]int, len(shape))
	acc := 1
	var axis int
	for axis = len(shape) - 1; axis >= 0; axis-- {
		strides[axis] = acc
		acc *= shape[axis]
	}

	// Allocate and zero-fill.
	data := make([]any, total)
	var i int
	for i = range data {
		data[i] = 0.0
	}

	return &Dense{shape: append([]int(nil), shape...), strides: strides, data: data}, nil
}

// FromFloats creates a rank-1 Dense holding a copy of v.
func FromFloats(v []float64) (*Dense, error) {
	d, err := New(len(v))
	if err != nil {
		return nil, err
	}
	for i, x := range v {
		d.data[i] = x
	}

	return d, nil
}

// FromRows creates a rank-2 Dense from row slices of equal length.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, denseErrorf("FromRows", ErrInvalidDimensions)
	}
	d, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = range rows {
		if len(rows[i]) != len(rows[0]) {
			return nil, denseErrorf("FromRows", ErrRaggedData)
		}
		for j = range rows[i] {
			d.data[i*len(rows[0])+j] = rows[i][j]
		}
	}

	return d, nil
}

// Shape returns a copy of the dimension sizes.
func (d *Dense) Shape() []int { return append([]int(nil), d.shape...) }

// Rank returns the number of dimensions.
func (d *Dense) Rank() int { return len(d.shape) }

// Len returns the total number of elements.
func (d *Dense) Len() int { return len(d.data) }

// offset computes the flat offset of a full multi-index, panicking with a
// wrapped ErrIndexOutOfBounds on any violation (programmer error).
func (d *Dense) offset(method string, idx []int) int {
	if len(idx) != len(d.shape) {
		panic(denseErrorf(method, ErrIndexOutOfBounds))
	}
	flat := 0
	for axis, i := range idx {
		if i < 0 || i >= d.shape[axis] {
			panic(denseErrorf(method, ErrIndexOutOfBounds))
		}
		flat += i * d.strides[axis]
	}

	return flat
}

// At returns the element at the given multi-index.
func (d *Dense) At(idx ...int) any { return d.data[d.offset("At", idx)] }

// Set assigns v at the given multi-index.
func (d *Dense) Set(v any, idx ...int) { d.data[d.offset("Set", idx)] = v }

// AtFlat returns the element at flat (row-major) offset i.
func (d *Dense) AtFlat(i int) any {
	if i < 0 || i >= len(d.data) {
		panic(denseErrorf("AtFlat", ErrIndexOutOfBounds))
	}

	return d.data[i]
}

// SetFlat assigns v at flat (row-major) offset i.
func (d *Dense) SetFlat(i int, v any) {
	if i < 0 || i >= len(d.data) {
		panic(denseErrorf("SetFlat", ErrIndexOutOfBounds))
	}
	d.data[i] = v
}

// Index expands a flat offset into its multi-index in row-major order.
func (d *Dense) Index(flat int) []int {
	if flat < 0 || flat >= len(d.data) {
		panic(denseErrorf("Index", ErrIndexOutOfBounds))
	}
	idx := make([]int, len(d.shape))
	for axis, s := range d.strides {
		idx[axis] = flat / s
		flat %= s
	}

	return idx
}

// Clone returns a deep copy of the container (elements are copied
// shallowly; AD scalars are handles or immutable values, so sharing them
// is safe).
func (d *Dense) Clone() *Dense {
	data := make([]any, len(d.data))
	copy(data, d.data)

	return &Dense{
		shape:   append([]int(nil), d.shape...),
		strides: append([]int(nil), d.strides...),
		data:    data,
	}
}

// Floats collapses every element to its primal float64, in flat row-major
// order. Elements may be plain numbers or any num.Value.
func (d *Dense) Floats() []float64 {
	out := make([]float64, len(d.data))
	for i, e := range d.data {
		out[i] = num.Float(e)
	}

	return out
}

// SameShape reports whether o has exactly the same dimension sizes.
func (d *Dense) SameShape(o *Dense) bool {
	if len(d.shape) != len(o.shape) {
		return false
	}
	for axis := range d.shape {
		if d.shape[axis] != o.shape[axis] {
			return false
		}
	}

	return true
}

// String renders the shape and flat contents for debugging.
func (d *Dense) String() string {
	return fmt.Sprintf("tensor.Dense%v%v", d.shape, d.data)
}
