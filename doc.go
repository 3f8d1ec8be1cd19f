// Package numerics is a toolkit for solving diffusion-type models on a
// sequence of nonuniform grids and extrapolating the results to the
// infinite-resolution limit.
//
// 🚀 What is resolution extrapolation?
//
//	A solver run on an n-point grid carries a discretization error that
//	shrinks as the grid spacing x shrinks. Running it at several n and
//	fitting a polynomial in x through the results, evaluated at x = 0,
//	removes the leading error terms without ever running at huge n.
//
// ✨ Packages:
//
//	grid/         DefaultGrid: dense near 0 and 1, smooth cubic in between;
//	              spacing policies that map a resolution to x
//	extrap/       closed-form Lagrange extrapolation (orders 1..6) and the
//	              MakeExtrapFunc / MakeExtrapLogFunc wrappers
//	projection/   memoized hypergeometric projection coefficients with a
//	              log-space fallback, safe for concurrent use
//	ndarray/      small N-dimensional float64 array with masks and a text
//	              file format
//	calc/         trapezoidal integration along an axis, one-sided
//	              derivative stencils
//	config/       JSON settings for the numerics command
//
// Quick example:
//
//	solve := func(p params, pts int) (*ndarray.Array, error) { ... }
//	ex := extrap.MakeExtrapLogFunc(solve)
//	fs, err := ex(p, []int{40, 50, 60})
//
// The numerics command (cmd/numerics) exposes grid, projection and a demo
// extrapolation on the command line.
package numerics
