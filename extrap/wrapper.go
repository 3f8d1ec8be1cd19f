// SPDX-License-Identifier: MIT

package extrap

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// MakeExtrapFunc returns a version of f that extrapolates to infinitely many
// grid points.
//
// Implementation:
//   - Stage 1: pick the Order from len(ptsList); counts outside 1..6 fail
//     with ErrBadOrder before f is ever called.
//   - Stage 2: for each pts in order, compute its spacing with the spacing
//     policy and run f(args, pts). Runs are sequential.
//   - Stage 3: extrapolate the collected samples to spacing 0.
//
// Behavior highlights:
//   - args is passed unchanged to every run.
//   - An error from f is returned unchanged; no partial extrapolation.
//
// Panics if f is nil.
func MakeExtrapFunc[A any, T Value](f Func[A, T], opts ...Option) ExtrapFunc[A, T] {
	if f == nil {
		panic(panicNilFunc)
	}
	o := gatherOptions(opts)

	return func(args A, ptsList []int) (T, error) {
		var zero T
		order, err := OrderFor(len(ptsList))
		if err != nil {
			return zero, err
		}

		samples := make([]Sample[T], len(ptsList))
		for i, pts := range ptsList {
			x, err := o.spacing(pts)
			if err != nil {
				return zero, fmt.Errorf("extrap: spacing for %d points: %w", pts, err)
			}
			y, err := f(args, pts)
			if err != nil {
				o.logger.Debug("resolution run failed", zap.Int("pts", pts), zap.Error(err))
				return zero, err
			}
			o.logger.Debug("resolution run", zap.Int("pts", pts), zap.Float64("x", x))
			samples[i] = Sample[T]{X: x, Y: y}
		}

		res, err := ExtrapolateSamples(samples)
		if err != nil {
			return zero, err
		}
		o.logger.Debug("extrapolated", zap.Stringer("order", order), zap.Ints("pts", ptsList))

		return res, nil
	}
}

// MakeExtrapLogFunc is MakeExtrapFunc applied to log(f): results are
// extrapolated in log space and exponentiated afterwards. This is often
// better behaved for quantities spanning many orders of magnitude.
//
// f must return strictly positive values. Nothing checks this: a zero
// result turns into -Inf and a negative one into NaN, and both propagate to
// the output.
func MakeExtrapLogFunc[A any, T Value](f Func[A, T], opts ...Option) ExtrapFunc[A, T] {
	if f == nil {
		panic(panicNilFunc)
	}
	logF := func(args A, pts int) (T, error) {
		y, err := f(args, pts)
		if err != nil {
			return y, err
		}

		return mapValue(y, math.Log), nil
	}
	exLog := MakeExtrapFunc[A, T](logF, opts...)

	return func(args A, ptsList []int) (T, error) {
		res, err := exLog(args, ptsList)
		if err != nil {
			return res, err
		}

		return mapValue(res, math.Exp), nil
	}
}
