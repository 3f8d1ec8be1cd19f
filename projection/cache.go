// SPDX-License-Identifier: MIT

package projection

import (
	"slices"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes coefficient vectors by Key. The zero value is not usable;
// construct with New. A Cache is safe for concurrent use.
type Cache struct {
	store  Store
	logger *zap.Logger
	hook   func(Key, Path)
	group  singleflight.Group

	hits      atomic.Int64
	misses    atomic.Int64
	fallbacks atomic.Int64
}

// Default is the process-wide cache used by Cached.
var Default = New()

// New returns an empty Cache.
func New(opts ...Option) *Cache {
	o := gatherOptions(opts)

	return &Cache{store: o.store, logger: o.logger, hook: o.hook}
}

// Cached returns Default.Coefficients(to, from, hits).
func Cached(to, from, hits int) ([]float64, error) {
	return Default.Coefficients(to, from, hits)
}

// Coefficients returns the length-(to+1) vector of projection coefficients
// from a sample of size from with hits derived alleles down to size to.
//
// Implementation:
//   - Stage 1: validate the key (ErrInvalidKey).
//   - Stage 2: on a store hit, return a copy of the stored vector.
//   - Stage 3: on a miss, compute once per key across concurrent callers:
//     direct float64 ratio, recomputed in log space if any entry is NaN.
//     The vector is saved before any caller receives it.
//
// The returned slice is always a fresh copy owned by the caller; repeated
// calls with the same key return bit-identical values.
func (c *Cache) Coefficients(to, from, hits int) ([]float64, error) {
	k := Key{To: to, From: from, Hits: hits}
	if err := k.Validate(); err != nil {
		return nil, err
	}

	if v, ok := c.store.Load(k); ok {
		c.hits.Add(1)
		return slices.Clone(v), nil
	}

	var computed bool
	res, _, _ := c.group.Do(k.String(), func() (any, error) {
		// another flight may have finished between Load and Do
		if v, ok := c.store.Load(k); ok {
			return v, nil
		}
		computed = true

		return c.computeAndSave(k), nil
	})
	if !computed {
		c.hits.Add(1)
	}

	return slices.Clone(res.([]float64)), nil
}

// computeAndSave computes, stores and reports the vector for k.
func (c *Cache) computeAndSave(k Key) []float64 {
	v, path := compute(k)
	c.misses.Add(1)
	if path == LogSpacePath {
		c.fallbacks.Add(1)
		c.logger.Debug("direct projection produced NaN, recomputed in log space",
			zap.Stringer("key", k))
	}
	c.store.Save(k, v)
	c.logger.Debug("projection computed",
		zap.Int("to", k.To), zap.Int("from", k.From), zap.Int("hits", k.Hits),
		zap.Stringer("path", path))
	if c.hook != nil {
		c.hook(k, path)
	}

	return v
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Fallbacks: c.fallbacks.Load(),
	}
}
