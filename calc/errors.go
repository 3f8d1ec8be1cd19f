// SPDX-License-Identifier: MIT

package calc

import "errors"

var (
	// ErrSpacingSpec indicates that neither or both of xx and dx were given.
	ErrSpacingSpec = errors.New("calc: one and only one of xx or dx must be specified")

	// ErrAxisLength indicates a grid whose length differs from the array
	// extent along the integration axis.
	ErrAxisLength = errors.New("calc: grid length must equal array length along axis")

	// ErrBadAxis indicates an axis outside [−ndim, ndim).
	ErrBadAxis = errors.New("calc: axis out of range")

	// ErrUnsorted indicates a grid that is not in ascending order.
	ErrUnsorted = errors.New("calc: grid must be sorted ascending")

	// ErrTooFewPoints indicates a grid too short for a five-point stencil.
	ErrTooFewPoints = errors.New("calc: need at least 5 grid points")
)
