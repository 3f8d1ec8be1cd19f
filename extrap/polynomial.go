// SPDX-License-Identifier: MIT

// Package extrap - closed-form Lagrange-at-zero weights, one function per order.
//
// For samples (xᵢ, yᵢ) the Lagrange basis evaluated at 0 is
//
//	Lᵢ(0) = Π_{j≠i} (0 − xⱼ)/(xᵢ − xⱼ) = Π_{j≠i} xⱼ / (xⱼ − xᵢ)
//
// and the extrapolated value is Σ Lᵢ(0)·yᵢ. The weights below spell that
// product out per order.

package extrap

import "fmt"

// linearWeights: two samples.
func linearWeights(x1, x2 float64) []float64 {
	return []float64{
		x2 / (x2 - x1),
		x1 / (x1 - x2),
	}
}

// quadraticWeights: three samples.
func quadraticWeights(x1, x2, x3 float64) []float64 {
	return []float64{
		x2 * x3 / ((x1 - x2) * (x1 - x3)),
		x1 * x3 / ((x2 - x1) * (x2 - x3)),
		x1 * x2 / ((x3 - x1) * (x3 - x2)),
	}
}

// cubicWeights: four samples.
func cubicWeights(x1, x2, x3, x4 float64) []float64 {
	return []float64{
		x2 * x3 * x4 / ((x2 - x1) * (x3 - x1) * (x4 - x1)),
		x1 * x3 * x4 / ((x1 - x2) * (x3 - x2) * (x4 - x2)),
		x1 * x2 * x4 / ((x1 - x3) * (x2 - x3) * (x4 - x3)),
		x1 * x2 * x3 / ((x1 - x4) * (x2 - x4) * (x3 - x4)),
	}
}

// quarticWeights: five samples.
func quarticWeights(x1, x2, x3, x4, x5 float64) []float64 {
	return []float64{
		x2 * x3 * x4 * x5 / ((x2 - x1) * (x3 - x1) * (x4 - x1) * (x5 - x1)),
		x1 * x3 * x4 * x5 / ((x1 - x2) * (x3 - x2) * (x4 - x2) * (x5 - x2)),
		x1 * x2 * x4 * x5 / ((x1 - x3) * (x2 - x3) * (x4 - x3) * (x5 - x3)),
		x1 * x2 * x3 * x5 / ((x1 - x4) * (x2 - x4) * (x3 - x4) * (x5 - x4)),
		x1 * x2 * x3 * x4 / ((x1 - x5) * (x2 - x5) * (x3 - x5) * (x4 - x5)),
	}
}

// quinticWeights: six samples.
func quinticWeights(x1, x2, x3, x4, x5, x6 float64) []float64 {
	return []float64{
		x2 * x3 * x4 * x5 * x6 / ((x2 - x1) * (x3 - x1) * (x4 - x1) * (x5 - x1) * (x6 - x1)),
		x1 * x3 * x4 * x5 * x6 / ((x1 - x2) * (x3 - x2) * (x4 - x2) * (x5 - x2) * (x6 - x2)),
		x1 * x2 * x4 * x5 * x6 / ((x1 - x3) * (x2 - x3) * (x4 - x3) * (x5 - x3) * (x6 - x3)),
		x1 * x2 * x3 * x5 * x6 / ((x1 - x4) * (x2 - x4) * (x3 - x4) * (x5 - x4) * (x6 - x4)),
		x1 * x2 * x3 * x4 * x6 / ((x1 - x5) * (x2 - x5) * (x3 - x5) * (x4 - x5) * (x6 - x5)),
		x1 * x2 * x3 * x4 * x5 / ((x1 - x6) * (x2 - x6) * (x3 - x6) * (x4 - x6) * (x5 - x6)),
	}
}

// weights dispatches to the closed form for o. len(xs) must equal int(o).
func (o Order) weights(xs []float64) []float64 {
	switch o {
	case ConstantOrder:
		return []float64{1}
	case LinearOrder:
		return linearWeights(xs[0], xs[1])
	case QuadraticOrder:
		return quadraticWeights(xs[0], xs[1], xs[2])
	case CubicOrder:
		return cubicWeights(xs[0], xs[1], xs[2], xs[3])
	case QuarticOrder:
		return quarticWeights(xs[0], xs[1], xs[2], xs[3], xs[4])
	case QuinticOrder:
		return quinticWeights(xs[0], xs[1], xs[2], xs[3], xs[4], xs[5])
	}

	return nil
}

// Weights returns the Lagrange-at-zero weights for the positions xs, so that
// the extrapolated value is Σ w[i]·y[i]. len(xs) must be in 1..6.
func Weights(xs []float64) ([]float64, error) {
	o, err := OrderFor(len(xs))
	if err != nil {
		return nil, err
	}

	return o.weights(xs), nil
}

// Extrapolate returns the value at position 0 of the polynomial through the
// points (xs[i], ys[i]). The order is len(ys): one sample is returned as is
// (for arrays, the very same pointer); two to six are combined with the
// closed-form weights of that order.
//
// Errors:
//   - ErrLengthMismatch when len(ys) != len(xs).
//   - ErrBadOrder when len(ys) is outside 1..6.
//   - ErrShapeMismatch / ErrNilResult for inconsistent array samples.
func Extrapolate[T Value](ys []T, xs []float64) (T, error) {
	var zero T
	if len(ys) != len(xs) {
		return zero, fmt.Errorf("%w: %d values, %d positions", ErrLengthMismatch, len(ys), len(xs))
	}
	o, err := OrderFor(len(ys))
	if err != nil {
		return zero, err
	}
	if o == ConstantOrder {
		return ys[0], nil
	}

	return combine(o.weights(xs), ys)
}

// ExtrapolateSamples is Extrapolate over (spacing, result) pairs.
func ExtrapolateSamples[T Value](samples []Sample[T]) (T, error) {
	xs := make([]float64, len(samples))
	ys := make([]T, len(samples))
	for i, s := range samples {
		xs[i], ys[i] = s.X, s.Y
	}

	return Extrapolate(ys, xs)
}

// Linear extrapolates two scalar samples to x = 0: (x2·y1 − x1·y2)/(x2 − x1).
func Linear(ys, xs [2]float64) float64 {
	y1, y2 := ys[0], ys[1]
	x1, x2 := xs[0], xs[1]

	return (x2*y1 - x1*y2) / (x2 - x1)
}

// Quadratic extrapolates three scalar samples to x = 0.
func Quadratic(ys, xs [3]float64) float64 {
	return dot(quadraticWeights(xs[0], xs[1], xs[2]), ys[:])
}

// Cubic extrapolates four scalar samples to x = 0.
func Cubic(ys, xs [4]float64) float64 {
	return dot(cubicWeights(xs[0], xs[1], xs[2], xs[3]), ys[:])
}

// Quartic extrapolates five scalar samples to x = 0.
func Quartic(ys, xs [5]float64) float64 {
	return dot(quarticWeights(xs[0], xs[1], xs[2], xs[3], xs[4]), ys[:])
}

// Quintic extrapolates six scalar samples to x = 0.
func Quintic(ys, xs [6]float64) float64 {
	return dot(quinticWeights(xs[0], xs[1], xs[2], xs[3], xs[4], xs[5]), ys[:])
}
