// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
)

// SetMask attaches a copy of mask (true = masked). A nil mask removes masking.
// len(mask) must equal Size(), else ErrShapeMismatch.
func (a *Array) SetMask(mask []bool) error {
	if mask == nil {
		a.mask = nil
		return nil
	}
	if len(mask) != len(a.data) {
		return fmt.Errorf("SetMask: %d flags for %d elements: %w", len(mask), len(a.data), ErrShapeMismatch)
	}
	a.mask = append([]bool(nil), mask...)

	return nil
}

// Mask returns a copy of the mask, or nil when the array is unmasked.
func (a *Array) Mask() []bool {
	if a.mask == nil {
		return nil
	}

	return append([]bool(nil), a.mask...)
}

// IsMasked reports whether the array carries a mask.
func (a *Array) IsMasked() bool { return a.mask != nil }

// Filled returns a copy where masked elements are replaced by fill and the
// mask is dropped. Unmasked arrays are simply cloned.
func (a *Array) Filled(fill float64) *Array {
	out := a.Clone()
	for i, m := range out.mask {
		if m {
			out.data[i] = fill
		}
	}
	out.mask = nil

	return out
}

// IntersectMasks returns versions of a and b masked wherever either of them
// is masked. When neither is masked the inputs are returned unchanged;
// otherwise both results are fresh clones sharing equal (but distinct) masks.
func IntersectMasks(a, b *Array) (*Array, *Array, error) {
	if a == nil || b == nil {
		return nil, nil, ErrNilArray
	}
	if !a.IsMasked() && !b.IsMasked() {
		return a, b, nil
	}
	if !a.SameShape(b) {
		return nil, nil, fmt.Errorf("IntersectMasks: %v vs %v: %w", a.shape, b.shape, ErrShapeMismatch)
	}

	joint := make([]bool, len(a.data))
	for i := range joint {
		joint[i] = (a.mask != nil && a.mask[i]) || (b.mask != nil && b.mask[i])
	}
	ma, mb := a.Clone(), b.Clone()
	ma.mask = joint
	mb.mask = append([]bool(nil), joint...)

	return ma, mb, nil
}

// nanFilled is what WriteTo serializes: masked entries become NaN.
func (a *Array) nanFilled() []float64 {
	if a.mask == nil {
		return a.data
	}

	return a.Filled(math.NaN()).data
}
