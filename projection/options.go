// SPDX-License-Identifier: MIT

package projection

import "go.uber.org/zap"

// Option configures a Cache.
// Constructors panic only on nil arguments (programmer error).
type Option func(*options)

type options struct {
	store  Store
	logger *zap.Logger
	hook   func(Key, Path)
}

// WithStore replaces the default MapStore. Panics on nil.
func WithStore(s Store) Option {
	if s == nil {
		panic(panicNilStore)
	}

	return func(o *options) { o.store = s }
}

// WithLogger routes compute and fallback events to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithComputeHook registers fn, called once for every vector the cache
// computes, after it is stored. Hits never call it. Panics on nil.
func WithComputeHook(fn func(Key, Path)) Option {
	if fn == nil {
		panic(panicNilHook)
	}

	return func(o *options) { o.hook = fn }
}

func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = NewMapStore()
	}

	return o
}
