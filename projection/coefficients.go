// SPDX-License-Identifier: MIT

package projection

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

// binomial returns C(n, k) as a float64: 0 outside 0 ≤ k ≤ n and +Inf once
// the value leaves float64 range.
//
// The product runs over the smaller of k and n−k; every factor is ≥ 1, so
// partial products are monotone and overflow only when the result does.
// Each factor carries rounding error, so the result is accurate to a few
// ulps, not an exact integer; the final Round only cleans up small values.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c *= float64(n-k+i) / float64(i)
	}

	return math.Round(c)
}

// lnBinomial returns ln C(n, k), or −Inf outside 0 ≤ k ≤ n.
func lnBinomial(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}

	return combin.LogGeneralizedBinomial(float64(n), float64(k))
}

// direct evaluates C(To,j)·C(From−To,Hits−j)/C(From,Hits) for j = 0..To.
// overflow reports an infinite denominator: finite numerators then divide
// to 0 and the vector silently loses its mass without any NaN.
func direct(k Key) (out []float64, overflow bool) {
	out = make([]float64, k.To+1)
	denom := binomial(k.From, k.Hits)
	for j := range out {
		out[j] = binomial(k.To, j) * binomial(k.From-k.To, k.Hits-j) / denom
	}

	return out, math.IsInf(denom, 1)
}

// logSpace evaluates the same ratio through ln C and exponentiates.
func logSpace(k Key) []float64 {
	out := make([]float64, k.To+1)
	lnDenom := lnBinomial(k.From, k.Hits)
	for j := range out {
		out[j] = math.Exp(lnBinomial(k.To, j) + lnBinomial(k.From-k.To, k.Hits-j) - lnDenom)
	}

	return out
}

// compute returns the coefficient vector for a validated key and the path
// that produced it. The whole vector is recomputed in log space when the
// direct ratio has a NaN or its denominator overflowed.
func compute(k Key) ([]float64, Path) {
	v, overflow := direct(k)
	if !overflow && !floats.HasNaN(v) {
		return v, DirectPath
	}

	return logSpace(k), LogSpacePath
}
