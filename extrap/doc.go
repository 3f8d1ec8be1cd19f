// Package extrap extrapolates resolution-dependent results to the
// infinite-resolution limit.
//
// 🚀 What is extrapolation to infinite resolution?
//
//	A solver run on an n-point grid returns y(x), where x is a representative
//	grid spacing. Running it at k resolutions gives k samples (xᵢ, yᵢ); the
//	unique degree-(k−1) polynomial through them, evaluated at x = 0, is a
//	higher-accuracy estimate of the continuum result:
//
//	  y(0) = Σᵢ wᵢ·yᵢ,   wᵢ = Π_{j≠i} xⱼ / (xⱼ − xᵢ)
//
//	Each order 1..6 has its own closed-form weight function; no generic
//	polynomial fit is involved.
//
// ✨ Key features:
//   - results may be float64, []float64 or *ndarray.Array (elementwise over y)
//   - Order is chosen by the number of resolutions; counts outside 1..6 are
//     rejected before anything runs
//   - MakeExtrapFunc wraps any Func[A, T]; A carries the caller's fixed
//     arguments and configuration
//   - MakeExtrapLogFunc extrapolates log(y) and exponentiates the result
//
// ⚙️ Usage:
//
//	type params struct{ theta float64 }
//	solve := func(p params, pts int) ([]float64, error) { ... }
//
//	ex := extrap.MakeExtrapFunc(solve, extrap.WithLogger(logger))
//	fs, err := ex(params{theta: 1}, []int{40, 50, 60}) // quadratic extrapolation
//
// Runs execute sequentially in the order given; the first error from the
// wrapped function is returned unchanged and nothing is extrapolated.
//
// Coincident spacings are a caller error: they divide by zero and surface as
// ±Inf or NaN in the result.
package extrap
