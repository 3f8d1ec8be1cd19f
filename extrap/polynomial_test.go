package extrap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerics/extrap"
	"github.com/katalvlaran/numerics/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positions are distinct, non-uniform spacings of the size extrapolation sees.
var positions = []float64{0.1, 0.07, 0.05, 0.031, 0.02, 0.013}

// coeffs defines p(x) = Σ coeffs[k]·x^k; p(0) = coeffs[0].
var coeffs = []float64{1.5, -2, 3, -1, 0.5, -0.25}

// poly evaluates the polynomial of the given degree built from coeffs.
func poly(x float64, degree int) float64 {
	s := 0.0
	for k := degree; k >= 0; k-- {
		s = s*x + coeffs[k]
	}
	return s
}

// TestOrderFor covers the accepted range and the error message.
func TestOrderFor(t *testing.T) {
	for n := 1; n <= 6; n++ {
		o, err := extrap.OrderFor(n)
		require.NoError(t, err)
		assert.Equal(t, extrap.Order(n), o)
		assert.True(t, o.Valid())
	}
	for _, n := range []int{-1, 0, 7} {
		_, err := extrap.OrderFor(n)
		assert.ErrorIs(t, err, extrap.ErrBadOrder, "n=%d", n)
		assert.Contains(t, err.Error(), "between 1 and 6")
	}
	assert.Equal(t, "quadratic", extrap.QuadraticOrder.String())
	assert.Equal(t, "Order(9)", extrap.Order(9).String())
}

// TestExtrapolate_ConstantIdentity returns the single sample unchanged.
func TestExtrapolate_ConstantIdentity(t *testing.T) {
	v, err := extrap.Extrapolate([]float64{3.25}, []float64{0.1})
	require.NoError(t, err)
	assert.Equal(t, 3.25, v)

	s := []float64{1, 2, 3}
	vs, err := extrap.Extrapolate([][]float64{s}, []float64{0.1})
	require.NoError(t, err)
	assert.Equal(t, s, vs)

	a, _ := ndarray.FromSlice([]float64{1, 2}, 2)
	va, err := extrap.Extrapolate([]*ndarray.Array{a}, []float64{0.1})
	require.NoError(t, err)
	assert.Same(t, a, va)
}

// TestExtrapolate_ReproducesPolynomials checks that k samples on a polynomial
// of degree ≤ k−1 extrapolate to p(0), for every order and every degree up
// to the order's limit.
func TestExtrapolate_ReproducesPolynomials(t *testing.T) {
	for k := 2; k <= 6; k++ {
		xs := positions[:k]
		for degree := 0; degree <= k-1; degree++ {
			ys := make([]float64, k)
			for i, x := range xs {
				ys[i] = poly(x, degree)
			}
			got, err := extrap.Extrapolate(ys, xs)
			require.NoError(t, err)
			assert.InDelta(t, coeffs[0], got, 1e-9, "k=%d degree=%d", k, degree)
		}
	}
}

// TestExtrapolate_Arrays applies the same weights elementwise.
func TestExtrapolate_Arrays(t *testing.T) {
	xs := positions[:4]
	slices := make([][]float64, len(xs))
	arrays := make([]*ndarray.Array, len(xs))
	for i, x := range xs {
		slices[i] = []float64{poly(x, 3), 2 * poly(x, 2), -poly(x, 1)}
		a, err := ndarray.FromSlice(slices[i], 3, 1)
		require.NoError(t, err)
		arrays[i] = a
	}
	want := []float64{coeffs[0], 2 * coeffs[0], -coeffs[0]}

	got, err := extrap.Extrapolate(slices, xs)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-9)

	ga, err := extrap.Extrapolate(arrays, xs)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, ga.Shape())
	assert.InDeltaSlice(t, want, ga.Data(), 1e-9)
}

// TestExtrapolate_MaskedArrays propagates the union of sample masks.
func TestExtrapolate_MaskedArrays(t *testing.T) {
	a, _ := ndarray.FromSlice([]float64{1, 1, 1}, 3)
	b, _ := ndarray.FromSlice([]float64{1, 1, 1}, 3)
	require.NoError(t, b.SetMask([]bool{false, false, true}))

	got, err := extrap.Extrapolate([]*ndarray.Array{a, b}, positions[:2])
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, got.Mask())
	assert.InDelta(t, 1.0, got.Data()[0], 1e-12)
}

// TestExtrapolate_Errors covers length, order and shape violations.
func TestExtrapolate_Errors(t *testing.T) {
	_, err := extrap.Extrapolate([]float64{1, 2}, []float64{0.1})
	assert.ErrorIs(t, err, extrap.ErrLengthMismatch)

	_, err = extrap.Extrapolate([]float64{}, []float64{})
	assert.ErrorIs(t, err, extrap.ErrBadOrder)

	seven := make([]float64, 7)
	_, err = extrap.Extrapolate(seven, seven)
	assert.ErrorIs(t, err, extrap.ErrBadOrder)

	_, err = extrap.Extrapolate([][]float64{{1, 2}, {1}}, positions[:2])
	assert.ErrorIs(t, err, extrap.ErrShapeMismatch)

	a, _ := ndarray.New(2)
	b, _ := ndarray.New(3)
	_, err = extrap.Extrapolate([]*ndarray.Array{a, b}, positions[:2])
	assert.ErrorIs(t, err, extrap.ErrShapeMismatch)

	_, err = extrap.Extrapolate([]*ndarray.Array{a, nil}, positions[:2])
	assert.ErrorIs(t, err, extrap.ErrNilResult)
}

// TestExtrapolate_CoincidentPositions yields non-finite output, not an error.
func TestExtrapolate_CoincidentPositions(t *testing.T) {
	got, err := extrap.Extrapolate([]float64{1, 2}, []float64{0.1, 0.1})
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 0) || math.IsNaN(got), "expected Inf or NaN, got %v", got)
}

// TestScalarHelpers checks the per-order helpers against Extrapolate.
func TestScalarHelpers(t *testing.T) {
	y := func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = poly(positions[i], n-1)
		}
		return out
	}
	x := positions

	y2 := y(2)
	assert.InDelta(t, coeffs[0], extrap.Linear([2]float64{y2[0], y2[1]}, [2]float64{x[0], x[1]}), 1e-12)
	y3 := y(3)
	assert.InDelta(t, coeffs[0], extrap.Quadratic([3]float64(y3), [3]float64(x[:3])), 1e-10)
	y4 := y(4)
	assert.InDelta(t, coeffs[0], extrap.Cubic([4]float64(y4), [4]float64(x[:4])), 1e-10)
	y5 := y(5)
	assert.InDelta(t, coeffs[0], extrap.Quartic([5]float64(y5), [5]float64(x[:5])), 1e-9)
	y6 := y(6)
	assert.InDelta(t, coeffs[0], extrap.Quintic([6]float64(y6), [6]float64(x[:6])), 1e-9)
}

// TestWeights_PartitionOfUnity: Lagrange weights at any point sum to 1.
func TestWeights_PartitionOfUnity(t *testing.T) {
	for k := 1; k <= 6; k++ {
		w, err := extrap.Weights(positions[:k])
		require.NoError(t, err)
		require.Len(t, w, k)
		sum := 0.0
		for _, v := range w {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "k=%d", k)
	}
	_, err := extrap.Weights(nil)
	assert.ErrorIs(t, err, extrap.ErrBadOrder)
}
