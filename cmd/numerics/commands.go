package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numerics/calc"
	"github.com/katalvlaran/numerics/extrap"
	"github.com/katalvlaran/numerics/grid"
	"github.com/katalvlaran/numerics/ndarray"
	"github.com/katalvlaran/numerics/projection"
	"go.uber.org/zap"
)

// runGrid prints DefaultGrid(n).
func runGrid(args []string, stdout, stderr io.Writer) error {
	fs, c := newFlagSet("grid", stderr)
	n := fs.Int("n", 40, "number of grid points (≥ 10)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	logger, s, err := c.setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	xx, err := grid.DefaultGrid(*n)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	a, err := ndarray.FromSlice(xx, len(xx))
	if err != nil {
		return err
	}
	logger.Debug("grid built", zap.Int("pts", *n), zap.Float64("first_spacing", xx[1]))

	return ndarray.WriteTo(stdout, a, s.GetPrecision(), []string{fmt.Sprintf("default grid, %d points", *n)})
}

// runProject prints the projection coefficients for one key.
func runProject(args []string, stdout, stderr io.Writer) error {
	fs, c := newFlagSet("project", stderr)
	to := fs.Int("to", 0, "sample size to project down to")
	from := fs.Int("from", 0, "sample size to project from")
	hits := fs.Int("hits", 0, "derived alleles in the larger sample")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	logger, s, err := c.setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	path := projection.DirectPath
	cache := projection.New(
		projection.WithLogger(logger),
		projection.WithComputeHook(func(_ projection.Key, p projection.Path) { path = p }),
	)
	w, err := cache.Coefficients(*to, *from, *hits)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	a, err := ndarray.FromSlice(w, len(w))
	if err != nil {
		return err
	}
	comments := []string{
		fmt.Sprintf("projection %d -> %d, %d hits", *from, *to, *hits),
		"path: " + path.String(),
	}

	return ndarray.WriteTo(stdout, a, s.GetPrecision(), comments)
}

// runExtrap extrapolates the demo computation over the requested resolutions.
func runExtrap(args []string, stdout, stderr io.Writer) error {
	fs, c := newFlagSet("extrap", stderr)
	ptsFlag := fs.String("pts", "", "comma-separated resolutions, e.g. 40,50,60 (default from settings)")
	logDomain := fs.Bool("log", false, "extrapolate in log space")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	logger, s, err := c.setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	pts := s.GetResolutions()
	if *ptsFlag != "" {
		if pts, err = parsePts(*ptsFlag); err != nil {
			return err
		}
	}

	opts := []extrap.Option{extrap.WithLogger(logger), extrap.WithSpacing(s.GetSpacing())}
	var ex extrap.ExtrapFunc[demo, *ndarray.Array]
	if *logDomain || s.GetLogDomain() {
		ex = extrap.MakeExtrapLogFunc(demoIntegrals, opts...)
	} else {
		ex = extrap.MakeExtrapFunc(demoIntegrals, opts...)
	}

	res, err := ex(demo{rate: 1, freq: math.Pi}, pts)
	if errors.Is(err, extrap.ErrBadOrder) || errors.Is(err, grid.ErrTooFewPoints) {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err != nil {
		return err
	}
	comments := []string{
		"extrapolated: int_0^1 exp(x), int_0^1 sin(pi x), d/dx exp(x) at 0",
		"exact: " + strconv.FormatFloat(math.E-1, 'g', 10, 64) + " " +
			strconv.FormatFloat(2/math.Pi, 'g', 10, 64) + " 1",
		"resolutions: " + joinInts(pts),
	}

	return ndarray.WriteTo(stdout, res, s.GetPrecision(), comments)
}

// demo parameterizes the extrapolated demo computation.
type demo struct {
	rate float64 // exp(rate·x)
	freq float64 // sin(freq·x)
}

// demoIntegrals integrates exp(rate·x) and sin(freq·x) over [0,1] on the
// numPts default grid, and differentiates exp(rate·x) at 0 with the
// one-sided stencil. The three values share the grid's discretization error,
// which is what extrapolation removes.
func demoIntegrals(d demo, numPts int) (*ndarray.Array, error) {
	xx, err := grid.DefaultGrid(numPts)
	if err != nil {
		return nil, err
	}
	yy, err := ndarray.New(2, numPts)
	if err != nil {
		return nil, err
	}
	data := yy.Data()
	for i, x := range xx {
		data[i] = math.Exp(d.rate * x)
		data[numPts+i] = math.Sin(d.freq * x)
	}

	integrals, err := calc.Trapz(yy, xx, nil, -1)
	if err != nil {
		return nil, err
	}
	stencil, err := calc.EndPointFirstDerivs(xx)
	if err != nil {
		return nil, err
	}
	deriv := 0.0
	for k, w := range stencil[0] {
		deriv += w * data[k]
	}

	return ndarray.FromSlice(append(integrals.Data(), deriv), 3)
}

// parsePts parses "40,50,60".
func parsePts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: bad resolution %q", errUsage, f)
		}
		out = append(out, n)
	}

	return out, nil
}

// joinInts renders ints as "40,50,60".
func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}
