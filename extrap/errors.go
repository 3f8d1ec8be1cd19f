// SPDX-License-Identifier: MIT

package extrap

import "errors"

var (
	// ErrBadOrder indicates a number of samples (or resolutions) outside 1..6.
	ErrBadOrder = errors.New("extrap: number of calculations to use for extrapolation must be between 1 and 6")

	// ErrLengthMismatch indicates a different number of values and positions.
	ErrLengthMismatch = errors.New("extrap: values and positions differ in length")

	// ErrShapeMismatch indicates array-valued samples of different shapes.
	ErrShapeMismatch = errors.New("extrap: samples differ in shape")

	// ErrNilResult indicates a nil *ndarray.Array sample.
	ErrNilResult = errors.New("extrap: nil array result")
)

// Panic messages for programmer errors in constructors.
const (
	panicNilFunc    = "extrap: MakeExtrapFunc: nil function"
	panicNilSpacing = "extrap: WithSpacing: nil spacing function"
	panicNilLogger  = "extrap: WithLogger: nil logger"
)
