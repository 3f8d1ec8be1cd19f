// Package calc holds the small calculus kernels that work on default-grid
// data: composite trapezoidal integration along one axis of an ndarray, and
// fourth-order one-sided first-derivative stencils for the grid end points.
//
// Nothing here assumes a uniform grid; every routine takes the grid (or its
// spacings) explicitly.
package calc
