// SPDX-License-Identifier: MIT

package extrap

import (
	"github.com/katalvlaran/numerics/grid"
	"go.uber.org/zap"
)

// DefaultSpacing is the spacing policy used unless WithSpacing overrides it:
// the first non-zero point of the default grid.
var DefaultSpacing grid.SpacingFunc = grid.FirstSpacing

// Option configures MakeExtrapFunc / MakeExtrapLogFunc.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	spacing grid.SpacingFunc
	logger  *zap.Logger
}

// WithSpacing replaces the spacing policy that maps a resolution to its
// extrapolation variable. Panics on nil.
func WithSpacing(fn grid.SpacingFunc) Option {
	if fn == nil {
		panic(panicNilSpacing)
	}

	return func(o *options) { o.spacing = fn }
}

// WithLogger routes per-run debug events to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{
		spacing: DefaultSpacing,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
