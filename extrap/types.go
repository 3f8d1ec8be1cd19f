package extrap

import (
	"fmt"

	"github.com/katalvlaran/numerics/ndarray"
)

// Value is the set of result types a resolution run may return. Arithmetic is
// elementwise over the value and scalar over the spacing.
type Value interface {
	float64 | []float64 | *ndarray.Array
}

// Sample pairs the representative grid spacing of one run with its result.
type Sample[T Value] struct {
	X float64 // representative spacing, e.g. grid.FirstSpacing(pts)
	Y T       // result computed at that resolution
}

// Func computes a result at numPts grid points. args carries every other
// argument and configuration value, unchanged between runs.
type Func[A any, T Value] func(args A, numPts int) (T, error)

// ExtrapFunc runs a Func at every resolution in ptsList and returns the
// result extrapolated to infinitely many points.
type ExtrapFunc[A any, T Value] func(args A, ptsList []int) (T, error)

// Order is the number of samples an extrapolation combines; the fitted
// polynomial has degree Order−1.
type Order int

const (
	// ConstantOrder returns the single sample unchanged.
	ConstantOrder Order = iota + 1
	// LinearOrder fits a line through two samples.
	LinearOrder
	// QuadraticOrder fits a parabola through three samples.
	QuadraticOrder
	// CubicOrder fits a cubic through four samples.
	CubicOrder
	// QuarticOrder fits a quartic through five samples.
	QuarticOrder
	// QuinticOrder fits a quintic through six samples.
	QuinticOrder
)

// MinOrder and MaxOrder bound the supported sample counts.
const (
	MinOrder = ConstantOrder
	MaxOrder = QuinticOrder
)

var orderNames = [...]string{
	ConstantOrder:  "constant",
	LinearOrder:    "linear",
	QuadraticOrder: "quadratic",
	CubicOrder:     "cubic",
	QuarticOrder:   "quartic",
	QuinticOrder:   "quintic",
}

// OrderFor returns the Order for n samples, or ErrBadOrder when n is outside 1..6.
func OrderFor(n int) (Order, error) {
	o := Order(n)
	if !o.Valid() {
		return 0, fmt.Errorf("%w (got %d)", ErrBadOrder, n)
	}

	return o, nil
}

// Valid reports whether o is one of the supported orders.
func (o Order) Valid() bool { return o >= MinOrder && o <= MaxOrder }

// String returns the lower-case name of the order.
func (o Order) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}
