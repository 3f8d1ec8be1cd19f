// Package ndarray provides a small N-dimensional float64 array used as the
// array-valued result type of resolution runs.
//
// What & Why:
//
//	Extrapolation combines results elementwise, so an array only needs a
//	shape, a flat row-major buffer and an optional mask. Array keeps exactly
//	that and nothing else: no broadcasting, no views, no dtype zoo.
//
// ✨ Key features:
//   - row-major flat storage (offset = Σ idx[k]·stride[k])
//   - safe accessors: At/Set return errors instead of panicking
//   - optional boolean mask with IntersectMasks for aligning two arrays
//   - Reverse along every axis
//   - plain-text file format with '#' comment header (ReadFrom / WriteTo)
//
// ⚙️ Usage:
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	v, _ := a.At(1, 2) // 6
//	_ = ndarray.WriteTo(os.Stdout, a, 16, []string{"demo"})
//
// Complexity:
//
//	New/Clone/Reverse/Map: O(size). At/Set: O(ndim).
package ndarray
