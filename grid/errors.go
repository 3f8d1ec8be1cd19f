package grid

import "errors"

var (
	// ErrTooFewPoints indicates a grid size whose boundary segment would be
	// empty (fewer than MinPoints points).
	ErrTooFewPoints = errors.New("grid: need at least 10 points")

	// ErrNegativeCount indicates a negative sample count passed to Linspace.
	ErrNegativeCount = errors.New("grid: number of samples must be non-negative")
)
