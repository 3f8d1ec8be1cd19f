package extrap

import (
	"fmt"

	"github.com/katalvlaran/numerics/ndarray"
	"gonum.org/v1/gonum/floats"
)

// dot is Σ w[i]·y[i] over scalars.
func dot(w, ys []float64) float64 { return floats.Dot(w, ys) }

// combine returns Σ w[i]·ys[i], elementwise for slice and array values.
// len(w) == len(ys) ≥ 1 is guaranteed by the callers.
func combine[T Value](w []float64, ys []T) (T, error) {
	var zero T
	switch vs := any(ys).(type) {
	case []float64:
		return any(dot(w, vs)).(T), nil

	case [][]float64:
		n := len(vs[0])
		out := make([]float64, n)
		for i, y := range vs {
			if len(y) != n {
				return zero, fmt.Errorf("%w: sample %d has %d values, want %d", ErrShapeMismatch, i, len(y), n)
			}
			floats.AddScaled(out, w[i], y)
		}
		return any(out).(T), nil

	case []*ndarray.Array:
		out, err := combineArrays(w, vs)
		if err != nil {
			return zero, err
		}
		return any(out).(T), nil
	}

	return zero, fmt.Errorf("extrap: unsupported value type %T", zero)
}

// combineArrays sums weighted arrays; the result is masked wherever any
// sample is masked.
func combineArrays(w []float64, ys []*ndarray.Array) (*ndarray.Array, error) {
	for i, y := range ys {
		if y == nil {
			return nil, fmt.Errorf("%w: sample %d", ErrNilResult, i)
		}
	}

	out, err := ndarray.New(ys[0].Shape()...)
	if err != nil {
		return nil, err
	}
	for i, y := range ys {
		if err := out.AddScaled(w[i], y); err != nil {
			return nil, fmt.Errorf("%w: sample %d: %v", ErrShapeMismatch, i, err)
		}
		if y.IsMasked() {
			if out, _, err = ndarray.IntersectMasks(out, y); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// mapValue applies fn elementwise, returning a new value.
func mapValue[T Value](v T, fn func(float64) float64) T {
	switch x := any(v).(type) {
	case float64:
		return any(fn(x)).(T)

	case []float64:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = fn(e)
		}
		return any(out).(T)

	case *ndarray.Array:
		if x == nil {
			return v
		}
		return any(x.Map(fn)).(T)
	}

	return v
}
