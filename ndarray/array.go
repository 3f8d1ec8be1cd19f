// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with explicit strides for any rank.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep results deterministic: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - New: O(size) zero-init; At/Set: O(ndim); Clone: O(size); Map: O(size).

package ndarray

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// arrayErrorf wraps a sentinel with the method name and the offending index.
func arrayErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, idx, err)
}

// Array is an N-dimensional row-major array of float64 values.
//   - shape holds the extent of every axis (len(shape) ≥ 1).
//   - strides[k] is the flat distance between neighbours along axis k.
//   - data is the flat buffer, len(data) == Π shape.
//   - mask, when non-nil, has len(data) entries; true marks a masked element.
type Array struct {
	shape   []int
	strides []int
	data    []float64
	mask    []bool
}

var _ fmt.Stringer = (*Array)(nil)

// New creates a zero-filled array with the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate that at least one axis is given and no extent is negative.
//   - Stage 2: compute strides and allocate the flat buffer.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(size), Space O(size).
func New(shape ...int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}

	return &Array{
		shape:   append([]int(nil), shape...),
		strides: stridesOf(shape),
		data:    make([]float64, size),
	}, nil
}

// FromSlice wraps a copy of data in an array of the given shape.
// len(data) must equal the product of shape, else ErrShapeMismatch.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("FromSlice: %d values for shape %v: %w", len(data), shape, ErrShapeMismatch)
	}

	return &Array{
		shape:   append([]int(nil), shape...),
		strides: stridesOf(shape),
		data:    append([]float64(nil), data...),
	}, nil
}

// sizeOf validates shape and returns the number of elements it describes.
func sizeOf(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	size := 1
	for _, n := range shape {
		if n < 0 {
			return 0, ErrBadShape
		}
		size *= n
	}

	return size, nil
}

// stridesOf returns row-major strides: the last axis is contiguous.
func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = step
		step *= shape[k]
	}

	return strides
}

// Shape returns a copy of the array's extents.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Ndim returns the number of axes.
func (a *Array) Ndim() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Data exposes the flat row-major buffer. Mutations are visible in the array.
func (a *Array) Data() []float64 { return a.data }

// SameShape reports whether a and b have identical shapes.
func (a *Array) SameShape(b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for k := range a.shape {
		if a.shape[k] != b.shape[k] {
			return false
		}
	}

	return true
}

// offset bounds-checks idx and returns its flat position.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrOutOfRange
		}
		off += i * a.strides[k]
	}

	return off, nil
}

// At returns the element at idx or ErrOutOfRange.
// Never panics on bad indices; the error carries the index for diagnostics.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, arrayErrorf(ctxAt, idx, err)
	}

	return a.data[off], nil
}

// Set stores v at idx or returns ErrOutOfRange.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return arrayErrorf(ctxSet, idx, err)
	}
	a.data[off] = v

	return nil
}

// Clone returns a deep copy, mask included.
// Complexity: O(size).
func (a *Array) Clone() *Array {
	out := &Array{
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		data:    append([]float64(nil), a.data...),
	}
	if a.mask != nil {
		out.mask = append([]bool(nil), a.mask...)
	}

	return out
}

// Map returns a new array with fn applied to every element. The mask is copied.
func (a *Array) Map(fn func(float64) float64) *Array {
	out := a.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}

	return out
}

// Scale multiplies every element by alpha in place.
func (a *Array) Scale(alpha float64) { floats.Scale(alpha, a.data) }

// AddScaled performs a += alpha*b in place.
// Returns ErrShapeMismatch when the shapes differ.
func (a *Array) AddScaled(alpha float64, b *Array) error {
	if b == nil {
		return ErrNilArray
	}
	if !a.SameShape(b) {
		return fmt.Errorf("AddScaled: %v vs %v: %w", a.shape, b.shape, ErrShapeMismatch)
	}
	floats.AddScaled(a.data, alpha, b.data)

	return nil
}

// Reverse returns a copy reversed along every axis, so that
// out[i,j,...] == a[-(i+1),-(j+1),...]. For row-major storage this is
// exactly the reversal of the flat buffer.
func (a *Array) Reverse() *Array {
	out := a.Clone()
	floats.Reverse(out.data)
	if out.mask != nil {
		for l, r := 0, len(out.mask)-1; l < r; l, r = l+1, r-1 {
			out.mask[l], out.mask[r] = out.mask[r], out.mask[l]
		}
	}

	return out
}

// String renders the shape and the flat values for debugging.
func (a *Array) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Array%v[", a.shape)
	for i, v := range a.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		if a.mask != nil && a.mask[i] {
			sb.WriteString("--")
			continue
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("]")

	return sb.String()
}
