// SPDX-License-Identifier: MIT

package ndarray

import "errors"

// Every message is prefixed with "ndarray: ...". Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context matters; callers match with errors.Is.
var (
	// ErrBadShape is returned when a shape has no axes or a negative extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates an index outside the array bounds or with the
	// wrong number of axes.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch indicates two arrays (or an array and a data/mask slice)
	// whose shapes are incompatible.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrNilArray indicates that a nil *Array was passed.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrBadHeader indicates a missing or malformed shape line in a text file.
	ErrBadHeader = errors.New("ndarray: malformed shape header")

	// ErrShortData indicates fewer values in a text file than its shape requires.
	ErrShortData = errors.New("ndarray: not enough data values")
)
