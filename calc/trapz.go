// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/numerics/ndarray"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Trapz integrates yy along axis with the composite trapezoidal rule.
//
// Exactly one of xx (sample positions, len == extent along axis) or dx
// (spacings, len == extent − 1) must be non-nil. A negative axis counts from
// the end, so −1 is the last axis.
//
// The result has the integration axis removed; a 1-D input yields a
// one-element array. An output element is masked when any input element
// along its line is masked; pass yy.Filled(v) to integrate through masked
// entries instead.
//
// Errors:
//   - ErrSpacingSpec, ErrBadAxis, ErrAxisLength.
//   - ndarray.ErrNilArray for a nil yy.
//
// Complexity: O(size).
func Trapz(yy *ndarray.Array, xx, dx []float64, axis int) (*ndarray.Array, error) {
	if yy == nil {
		return nil, ndarray.ErrNilArray
	}
	spacing, err := spacings(xx, dx)
	if err != nil {
		return nil, err
	}
	shape := yy.Shape()
	if axis < 0 {
		axis += len(shape)
	}
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("Trapz: axis %d for %d-D array: %w", axis, len(shape), ErrBadAxis)
	}
	n := shape[axis]
	if len(spacing)+1 != n {
		return nil, fmt.Errorf("Trapz: %d grid points, %d along axis %d: %w", len(spacing)+1, n, axis, ErrAxisLength)
	}

	outer, inner := 1, 1
	for _, s := range shape[:axis] {
		outer *= s
	}
	for _, s := range shape[axis+1:] {
		inner *= s
	}
	outShape := append(append([]int(nil), shape[:axis]...), shape[axis+1:]...)
	if len(outShape) == 0 {
		outShape = []int{1}
	}
	out, err := ndarray.New(outShape...)
	if err != nil {
		return nil, err
	}

	in, res := yy.Data(), out.Data()
	mask := yy.Mask()
	var outMask []bool
	if mask != nil {
		outMask = make([]bool, len(res))
	}
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for i := 0; i < inner; i++ {
			r := o*inner + i
			sum := 0.0
			for k, h := range spacing {
				lo := base + k*inner + i
				sum += h * (in[lo] + in[lo+inner]) / 2
			}
			res[r] = sum
			if mask != nil {
				for k := 0; k < n; k++ {
					if mask[base+k*inner+i] {
						outMask[r] = true
						break
					}
				}
			}
		}
	}
	if outMask != nil {
		if err := out.SetMask(outMask); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// spacings resolves the xx/dx pair into a spacing vector.
func spacings(xx, dx []float64) ([]float64, error) {
	if (xx == nil) == (dx == nil) {
		return nil, ErrSpacingSpec
	}
	if dx != nil {
		return dx, nil
	}
	if len(xx) == 0 {
		return nil, nil
	}
	// floats.SubTo needs equal lengths: diff = xx[1:] − xx[:n−1].
	diff := make([]float64, len(xx)-1)
	floats.SubTo(diff, xx[1:], xx[:len(xx)-1])

	return diff, nil
}

// Trapz1D integrates samples yy taken at ascending positions xx.
// Fewer than two points integrate to 0.
//
// Errors:
//   - ErrAxisLength when len(yy) != len(xx).
//   - ErrUnsorted when xx is not ascending.
func Trapz1D(yy, xx []float64) (float64, error) {
	if len(yy) != len(xx) {
		return 0, fmt.Errorf("Trapz1D: %d values at %d points: %w", len(yy), len(xx), ErrAxisLength)
	}
	if !slices.IsSorted(xx) {
		return 0, ErrUnsorted
	}
	if len(xx) < 2 {
		return 0, nil
	}

	return integrate.Trapezoidal(xx, yy), nil
}
