// Package projection computes and memoizes the coefficients used to project
// an allele-frequency count from a larger sample down to a smaller one.
//
// 🚀 What are projection coefficients?
//
//	Drawing To of From samples without replacement, when Hits of the From
//	carry the derived allele, yields j derived alleles with probability
//
//	  P(j) = C(To, j)·C(From−To, Hits−j) / C(From, Hits),   j = 0..To
//
//	(the hypergeometric distribution). Downstream projection code needs the
//	whole vector for every (To, From, Hits) it meets, usually many times.
//
// ✨ Key features:
//   - a Cache memoizes vectors by Key; a hit returns a copy, never the stored
//     slice
//   - the direct float64 ratio overflows for large samples (Inf/Inf = NaN);
//     any NaN triggers a recomputation of the whole vector in log space
//   - safe for concurrent use: an RWMutex-guarded Store plus singleflight, so
//     concurrent misses on one key compute it once
//   - Stats and a compute hook expose hits, misses and which path ran
//
// ⚙️ Usage:
//
//	c := projection.New(projection.WithLogger(logger))
//	w, err := c.Coefficients(20, 40, 13) // len(w) == 21
//
//	w, err = projection.Cached(20, 40, 13) // process-wide Default cache
//
// Entries are never evicted or persisted; memory grows with the number of
// distinct keys seen.
package projection
