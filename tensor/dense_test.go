package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autodiff/num"
	"github.com/katalvlaran/autodiff/tangent"
	"github.com/katalvlaran/autodiff/tensor"
)

// requirePanicsIs asserts fn panics with an error wrapping want.
func requirePanicsIs(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic payload must be an error, got %T", r)
		require.ErrorIs(t, err, want)
	}()
	fn()
}

// TestNew_Validation verifies shape validation on construction.
func TestNew_Validation(t *testing.T) {
	_, err := tensor.New()
	assert.ErrorIs(t, err, tensor.ErrInvalidDimensions, "empty shape must error")

	_, err = tensor.New(2, 0)
	assert.ErrorIs(t, err, tensor.ErrInvalidDimensions, "zero dimension must error")

	_, err = tensor.New(2, -3)
	assert.ErrorIs(t, err, tensor.ErrInvalidDimensions, "negative dimension must error")

	d, err := tensor.New(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, d.Shape())
	assert.Equal(t, 3, d.Rank())
	assert.Equal(t, 24, d.Len())
	assert.Equal(t, 0.0, d.At(1, 2, 3), "new tensors are zero-filled")
}

// TestFromRows_Ragged verifies uneven row data is rejected.
func TestFromRows_Ragged(t *testing.T) {
	_, err := tensor.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, tensor.ErrRaggedData)

	m, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, m.At(1, 1))
}

// TestIndexing_RowMajor verifies multi-index and flat offset agree in
// row-major order, and that Index inverts the flat offset.
func TestIndexing_RowMajor(t *testing.T) {
	d, err := tensor.New(2, 3)
	require.NoError(t, err)

	var flat int
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			d.Set(float64(10*i+j), i, j)
			assert.Equal(t, d.At(i, j), d.AtFlat(flat), "last axis iterates fastest")
			assert.Equal(t, []int{i, j}, d.Index(flat))
			flat++
		}
	}
}

// TestIndexing_OutOfBounds verifies index violations panic with the
// sentinel (programmer error, recovered by the drivers).
func TestIndexing_OutOfBounds(t *testing.T) {
	d, err := tensor.New(2, 2)
	require.NoError(t, err)

	requirePanicsIs(t, tensor.ErrIndexOutOfBounds, func() { d.At(2, 0) })
	requirePanicsIs(t, tensor.ErrIndexOutOfBounds, func() { d.At(0, -1) })
	requirePanicsIs(t, tensor.ErrIndexOutOfBounds, func() { d.At(0) })
	requirePanicsIs(t, tensor.ErrIndexOutOfBounds, func() { d.Set(1.0, 0, 0, 0) })
	requirePanicsIs(t, tensor.ErrIndexOutOfBounds, func() { d.AtFlat(4) })
	requirePanicsIs(t, tensor.ErrIndexOutOfBounds, func() { d.SetFlat(-1, 1.0) })
}

// TestClone_Independence verifies Clone detaches storage.
func TestClone_Independence(t *testing.T) {
	d, err := tensor.FromFloats([]float64{1, 2, 3})
	require.NoError(t, err)

	c := d.Clone()
	c.SetFlat(0, 9.0)
	assert.Equal(t, 1.0, d.AtFlat(0), "mutating the clone must not touch the original")
}

// TestElementwise_DenseDense verifies elementwise combination of equal
// shapes and rejection of mismatched ones.
func TestElementwise_DenseDense(t *testing.T) {
	a, err := tensor.FromFloats([]float64{1, 2, 3})
	require.NoError(t, err)
	b, err := tensor.FromFloats([]float64{10, 20, 30})
	require.NoError(t, err)

	sum := num.Add(a, b).(*tensor.Dense)
	assert.Equal(t, []float64{11, 22, 33}, sum.Floats())

	prod := num.Mul(a, b).(*tensor.Dense)
	assert.Equal(t, []float64{10, 40, 90}, prod.Floats())

	short, err := tensor.FromFloats([]float64{1, 2})
	require.NoError(t, err)
	requirePanicsIs(t, tensor.ErrDimensionMismatch, func() { num.Add(a, short) })
}

// TestElementwise_ScalarBroadcast verifies scalar broadcast from both
// sides, including the reflected path through num.
func TestElementwise_ScalarBroadcast(t *testing.T) {
	a, err := tensor.FromFloats([]float64{1, 2, 3})
	require.NoError(t, err)

	right := num.Mul(a, 2.0).(*tensor.Dense)
	assert.Equal(t, []float64{2, 4, 6}, right.Floats())

	// Plain scalar on the left: the container intercepts via RSub.
	left := num.Sub(10.0, a).(*tensor.Dense)
	assert.Equal(t, []float64{9, 8, 7}, left.Floats())

	pow := num.Pow(a, 2.0).(*tensor.Dense)
	assert.Equal(t, []float64{1, 4, 9}, pow.Floats())
}

// TestElementwise_ADElements verifies the container stays closed over AD
// elements: broadcasting a tangent scalar against a plain array produces
// an array of tangent numbers.
func TestElementwise_ADElements(t *testing.T) {
	a, err := tensor.FromFloats([]float64{1, 2, 3})
	require.NoError(t, err)
	x := tangent.Seed(2.0)

	// a · x, elementwise: every element becomes a dual number.
	prod := num.Mul(a, x).(*tensor.Dense)
	for i := 0; i < prod.Len(); i++ {
		e, ok := prod.AtFlat(i).(*tangent.Number)
		require.True(t, ok, "element %d must be a tangent number, got %T", i, prod.AtFlat(i))
		assert.Equal(t, float64(i+1)*2.0, e.Float())
		assert.Equal(t, float64(i+1), num.Float(e.Derivative()), "d(c·x) = c")
	}

	// Elementary functions map elementwise and stay closed.
	s := num.Sin(prod).(*tensor.Dense)
	_, ok := s.AtFlat(0).(*tangent.Number)
	assert.True(t, ok)
}

// TestApply verifies the generic per-element hook.
func TestApply(t *testing.T) {
	a, err := tensor.FromFloats([]float64{1, 4, 9})
	require.NoError(t, err)

	root := a.Apply(num.Sqrt)
	assert.Equal(t, []float64{1, 2, 3}, root.Floats())
}

// TestFloat_Undefined verifies a container refuses to collapse to one
// scalar.
func TestFloat_Undefined(t *testing.T) {
	a, err := tensor.FromFloats([]float64{1, 2})
	require.NoError(t, err)

	requirePanicsIs(t, num.ErrUnsupportedOperand, func() { num.Float(a) })
}
