// SPDX-License-Identifier: MIT

package calc

// stencilSize is the number of points in the one-sided derivative stencils.
const stencilSize = 5

// EndPointFirstDerivs returns five-point, fourth-order one-sided
// first-derivative coefficients at both ends of the grid xx.
//
//	f'(xx[0])   ≈ Σ_k c[0][k]·f(xx[k])
//	f'(xx[n−1]) ≈ Σ_k c[1][k]·f(xx[n−1−k])
//
// Note the reversed indexing on the right end: c[1][0] multiplies the last
// sample. The grid need not be uniform, but its first five and last five
// points must be distinct.
//
// Errors:
//   - ErrTooFewPoints when len(xx) < 5.
func EndPointFirstDerivs(xx []float64) ([2][stencilSize]float64, error) {
	var out [2][stencilSize]float64
	n := len(xx)
	if n < stencilSize {
		return out, ErrTooFewPoints
	}

	var left, right [stencilSize]float64
	for k := 0; k < stencilSize; k++ {
		left[k] = xx[k]
		right[k] = xx[n-1-k]
	}
	out[0] = derivWeights(left)
	out[1] = derivWeights(right)

	return out, nil
}

// derivWeights returns L_k'(t[0]) for the Lagrange basis on nodes t, i.e. the
// weights of the derivative at t[0] of the interpolating quartic.
//
//	k = 0: Σ_{j≠0} 1/(t0 − tj)
//	k > 0: Π_{j∉{0,k}} (t0 − tj) / Π_{j≠k} (tk − tj)
func derivWeights(t [stencilSize]float64) [stencilSize]float64 {
	var w [stencilSize]float64
	for j := 1; j < stencilSize; j++ {
		w[0] += 1 / (t[0] - t[j])
	}
	for k := 1; k < stencilSize; k++ {
		num, den := 1.0, 1.0
		for j := 0; j < stencilSize; j++ {
			if j == k {
				continue
			}
			den *= t[k] - t[j]
			if j != 0 {
				num *= t[0] - t[j]
			}
		}
		w[k] = num / den
	}

	return w
}
