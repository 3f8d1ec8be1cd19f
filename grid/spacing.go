package grid

// SpacingFunc maps a grid size to the representative spacing used as the
// extrapolation variable for a run at that resolution.
type SpacingFunc func(numPts int) (float64, error)

// FirstSpacing returns DefaultGrid(numPts)[1], the first (smallest) boundary
// spacing. Discretization error tracks it more closely than the mean
// spacing, which makes it the default extrapolation variable; it is an
// empirical choice, so callers can swap in another SpacingFunc.
func FirstSpacing(numPts int) (float64, error) {
	xx, err := DefaultGrid(numPts)
	if err != nil {
		return 0, err
	}

	return xx[1], nil
}

// MeanSpacing returns 1/(numPts−1), the mean spacing of any numPts-point grid
// on [0,1]. It validates numPts like DefaultGrid so both policies accept the
// same resolutions.
func MeanSpacing(numPts int) (float64, error) {
	if numPts < MinPoints {
		return 0, ErrTooFewPoints
	}

	return 1 / float64(numPts-1), nil
}
