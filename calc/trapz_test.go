package calc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerics/calc"
	"github.com/katalvlaran/numerics/grid"
	"github.com/katalvlaran/numerics/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrapz_2D integrates along each axis of a 2×3 array.
func TestTrapz_2D(t *testing.T) {
	yy, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	rows, err := calc.Trapz(yy, []float64{0, 1, 3}, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rows.Shape())
	assert.InDeltaSlice(t, []float64{6.5, 15.5}, rows.Data(), 1e-12)

	last, err := calc.Trapz(yy, []float64{0, 1, 3}, nil, -1)
	require.NoError(t, err)
	assert.Equal(t, rows.Data(), last.Data())

	cols, err := calc.Trapz(yy, nil, []float64{2}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, cols.Shape())
	assert.InDeltaSlice(t, []float64{5, 7, 9}, cols.Data(), 1e-12)
}

// TestTrapz_MiddleAxis removes the middle axis of a 3-D array.
func TestTrapz_MiddleAxis(t *testing.T) {
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i)
	}
	yy, err := ndarray.FromSlice(data, 2, 3, 2)
	require.NoError(t, err)

	got, err := calc.Trapz(yy, nil, []float64{1, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, got.Shape())
	assert.InDeltaSlice(t, []float64{4, 6, 16, 18}, got.Data(), 1e-12)
}

// TestTrapz_DefaultGrid integrates x² over a nonuniform grid.
func TestTrapz_DefaultGrid(t *testing.T) {
	xx, err := grid.DefaultGrid(200)
	require.NoError(t, err)
	ys := make([]float64, len(xx))
	for i, x := range xx {
		ys[i] = x * x
	}
	yy, err := ndarray.FromSlice(ys, len(ys))
	require.NoError(t, err)

	got, err := calc.Trapz(yy, xx, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got.Shape())
	assert.InDelta(t, 1.0/3, got.Data()[0], 1e-4)

	flat, err := calc.Trapz1D(ys, xx)
	require.NoError(t, err)
	assert.InDelta(t, got.Data()[0], flat, 1e-12)
}

// TestTrapz_Mask masks output lines that touch a masked input.
func TestTrapz_Mask(t *testing.T) {
	yy, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, yy.SetMask([]bool{false, false, false, false, true, false}))

	got, err := calc.Trapz(yy, nil, []float64{1, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, got.Mask())
	assert.InDelta(t, 4.0, got.Data()[0], 1e-12)

	raw, err := calc.Trapz(yy.Filled(0), nil, []float64{1, 1}, 1)
	require.NoError(t, err)
	assert.False(t, raw.IsMasked())
	assert.InDeltaSlice(t, []float64{4, 5}, raw.Data(), 1e-12)
}

// TestTrapz_Errors covers every rejected input.
func TestTrapz_Errors(t *testing.T) {
	yy, _ := ndarray.FromSlice([]float64{1, 2, 3}, 3)

	_, err := calc.Trapz(yy, nil, nil, 0)
	assert.ErrorIs(t, err, calc.ErrSpacingSpec)
	_, err = calc.Trapz(yy, []float64{0, 1, 2}, []float64{1, 1}, 0)
	assert.ErrorIs(t, err, calc.ErrSpacingSpec)
	_, err = calc.Trapz(yy, []float64{0, 1}, nil, 0)
	assert.ErrorIs(t, err, calc.ErrAxisLength)
	_, err = calc.Trapz(yy, nil, []float64{1, 1, 1}, 0)
	assert.ErrorIs(t, err, calc.ErrAxisLength)
	_, err = calc.Trapz(yy, nil, []float64{1, 1}, 1)
	assert.ErrorIs(t, err, calc.ErrBadAxis)
	_, err = calc.Trapz(yy, nil, []float64{1, 1}, -2)
	assert.ErrorIs(t, err, calc.ErrBadAxis)
	_, err = calc.Trapz(nil, nil, []float64{1, 1}, 0)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestTrapz1D covers the flat helper's edge cases.
func TestTrapz1D(t *testing.T) {
	got, err := calc.Trapz1D([]float64{0, 1, 1}, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-15)

	got, err = calc.Trapz1D([]float64{7}, []float64{0})
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = calc.Trapz1D([]float64{1, 2}, []float64{0})
	assert.ErrorIs(t, err, calc.ErrAxisLength)
	_, err = calc.Trapz1D([]float64{1, 2}, []float64{1, 0})
	assert.ErrorIs(t, err, calc.ErrUnsorted)
}

// TestTrapz_NaNPropagates keeps NaN inputs visible in the integral.
func TestTrapz_NaNPropagates(t *testing.T) {
	yy, _ := ndarray.FromSlice([]float64{1, math.NaN(), 3}, 3)
	got, err := calc.Trapz(yy, nil, []float64{1, 1}, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Data()[0]))
}
