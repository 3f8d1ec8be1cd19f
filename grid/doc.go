// Package grid builds the nonuniform point sets on [0,1] that resolution runs
// are discretized on.
//
// 🚀 What is the default grid?
//
//	A grid that is dense near both 0 and 1, where diffusion-type solutions
//	change fastest, and smoothly coarser in between:
//	  • a boundary segment of ⌊n/10⌋ uniform points on [0, 0.05]
//	  • an interior segment x(q) = a·q³ + b·q² + c·q + d over uniform q ∈ [0,1]
//
//	The cubic is fixed by four conditions, so that spacing is continuous
//	across the splice and tapers symmetrically at both ends:
//	  x(0) = last boundary point      x'(0) = last boundary spacing / dq
//	  x(1) = 1                        x'(1) = x'(0)
//
// ⚙️ Usage:
//
//	xx, err := grid.DefaultGrid(60)
//	dx, err := grid.FirstSpacing(60) // xx[1], the spacing extrapolation keys on
//
// Complexity: O(n) time and memory.
package grid
