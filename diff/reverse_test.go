package diff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autodiff/adjoint"
	"github.com/katalvlaran/autodiff/diff"
	"github.com/katalvlaran/autodiff/num"
	"github.com/katalvlaran/autodiff/tensor"
)

// TestReverse_ScalarToScalar verifies the scalar fast path.
func TestReverse_ScalarToScalar(t *testing.T) {
	d, err := diff.Reverse(square, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, d.(float64), tol)
}

// TestReverse_Gradient verifies the canonical gradient case: scalar cost,
// vector input, one tape traversal.
func TestReverse_Gradient(t *testing.T) {
	f := func(x any) any {
		v := x.(*tensor.Dense)

		return num.Add(num.Exp(v.At(0)), num.Mul(v.At(0), v.At(1)))
	}

	j, err := diff.Reverse(f, []float64{0.5, 2})
	require.NoError(t, err)
	jd := dense(t, j)
	assert.Equal(t, []int{2}, jd.Shape())
	assert.InDeltaSlice(t, []float64{math.Exp(0.5) + 2.0, 0.5}, jd.Floats(), tol)
}

// TestReverse_VectorOutput verifies per-output seeding with tape reuse:
// shape(J) = shape(y) ++ shape(x).
func TestReverse_VectorOutput(t *testing.T) {
	f := func(x any) any {
		v := x.(*tensor.Dense)
		y, err := tensor.New(2)
		require.NoError(t, err)
		y.SetFlat(0, num.Mul(v.At(0), v.At(1)))
		y.SetFlat(1, num.Sub(v.At(0), v.At(1)))

		return y
	}

	j, err := diff.Reverse(f, []float64{2, 3})
	require.NoError(t, err)
	jd := dense(t, j)
	assert.Equal(t, []int{2, 2}, jd.Shape())
	assert.InDeltaSlice(t, []float64{3, 2, 1, -1}, jd.Floats(), tol)
}

// TestReverse_ConstantCoordinate verifies an output coordinate that never
// touched the inputs harvests a zero row.
func TestReverse_ConstantCoordinate(t *testing.T) {
	f := func(x any) any {
		v := x.(*tensor.Dense)
		y, err := tensor.New(2)
		require.NoError(t, err)
		y.SetFlat(0, 42.0) // plain constant, never recorded
		y.SetFlat(1, num.Mul(v.At(0), 2.0))

		return y
	}

	j, err := diff.Reverse(f, []float64{1.5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 2}, dense(t, j).Floats(), tol)
}

// TestReverse_ForeignTapeOutput verifies an output recorded on another
// tape is rejected with the tape-mismatch sentinel.
func TestReverse_ForeignTapeOutput(t *testing.T) {
	f := func(x any) any {
		return adjoint.NewTape().Lift(1.0) // not this driver's tape
	}

	_, err := diff.Reverse(f, 2.0)
	assert.ErrorIs(t, err, adjoint.ErrTapeMismatch)
}

// TestReverse_TapeMismatchInside verifies mixing a foreign tape inside the
// computation aborts the driver call with the sentinel.
func TestReverse_TapeMismatchInside(t *testing.T) {
	stray := adjoint.NewTape().Lift(1.0)
	f := func(x any) any {
		return num.Add(x.(*tensor.Dense).At(0), stray)
	}

	j, err := diff.Reverse(f, []float64{1})
	assert.ErrorIs(t, err, adjoint.ErrTapeMismatch)
	assert.Nil(t, j)
}

// TestReverse_NotDifferentiable mirrors the forward boundary scenario in
// reverse mode.
func TestReverse_NotDifferentiable(t *testing.T) {
	f := func(x any) any { return num.Abs(x.(*tensor.Dense).At(0)) }

	_, err := diff.Reverse(f, []float64{0})
	assert.ErrorIs(t, err, num.ErrNotDifferentiable)

	j, err := diff.Reverse(f, []float64{-2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1}, dense(t, j).Floats(), tol)
}
