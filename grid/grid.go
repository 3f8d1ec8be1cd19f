// SPDX-License-Identifier: MIT

package grid

import "fmt"

const (
	// MinPoints is the smallest grid size with a non-empty boundary segment.
	MinPoints = 10

	// boundaryDivisor sets the boundary segment to ⌊n/boundaryDivisor⌋ points.
	boundaryDivisor = 10

	// boundaryEnd is the right edge of the uniformly spaced boundary segment.
	boundaryEnd = 0.05
)

// Linspace returns n evenly spaced samples over [start, stop].
// n == 1 yields [start]; n == 0 yields an empty slice. The last sample is
// exactly stop.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}
	out[0] = start
	if n == 1 {
		return out, nil
	}

	step := (stop - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop

	return out, nil
}

// DefaultGrid returns a nonuniform grid of numPts points on [0,1], denser
// near 0 and 1.
//
// Algorithm:
//  1. small = ⌊numPts/10⌋ boundary points: Linspace(0, 0.05, small).
//  2. large = numPts − small + 1 interior points x(q) for q = Linspace(0, 1, large):
//     d = x0, c = dx0/dq, b = −3(−dq + dx0 + dq·x0)/dq, a = −2b/3,
//     where x0 is the last boundary point and dx0 the last boundary spacing.
//  3. Drop the last boundary point (the interior reproduces it as x(0)) and
//     concatenate.
//
// With a single boundary point (10 ≤ numPts < 20) there is no boundary
// spacing and dx0 is taken as 0: the interior is then the smoothstep
// 3q² − 2q³, flat at both ends.
//
// The returned grid is strictly increasing, starts at exactly 0 and ends at
// exactly 1.
//
// Errors:
//   - ErrTooFewPoints when numPts < MinPoints.
//
// Complexity: O(numPts).
func DefaultGrid(numPts int) ([]float64, error) {
	if numPts < MinPoints {
		return nil, fmt.Errorf("DefaultGrid(%d): %w", numPts, ErrTooFewPoints)
	}
	small := numPts / boundaryDivisor
	large := numPts - small + 1

	boundary, err := Linspace(0, boundaryEnd, small)
	if err != nil {
		return nil, err
	}
	q, err := Linspace(0, 1, large)
	if err != nil {
		return nil, err
	}

	dq := q[1] - q[0]
	xStart := boundary[small-1]
	dxStart := 0.0
	if small > 1 {
		dxStart = boundary[small-1] - boundary[small-2]
	}

	d := xStart
	c := dxStart / dq
	b := -3 * (-dq + dxStart + dq*xStart) / dq
	a := -2 * b / 3

	out := make([]float64, 0, numPts)
	out = append(out, boundary[:small-1]...)
	for _, qq := range q {
		out = append(out, a*qq*qq*qq+b*qq*qq+c*qq+d)
	}
	// x(1) = a+b+c+d is 1 only up to rounding.
	out[len(out)-1] = 1

	return out, nil
}
