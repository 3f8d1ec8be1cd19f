// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"
	"strconv"
)

// Key identifies one coefficient vector.
type Key struct {
	To   int // sample size projected down to
	From int // sample size projected from
	Hits int // derived alleles among From
}

// Validate returns ErrInvalidKey unless 0 ≤ To ≤ From and 0 ≤ Hits ≤ From.
func (k Key) Validate() error {
	if k.To < 0 || k.From < 0 || k.Hits < 0 || k.To > k.From || k.Hits > k.From {
		return fmt.Errorf("%w: %s", ErrInvalidKey, k)
	}

	return nil
}

// String renders the key as "to/from/hits".
func (k Key) String() string {
	return strconv.Itoa(k.To) + "/" + strconv.Itoa(k.From) + "/" + strconv.Itoa(k.Hits)
}

// Path names the computation that produced a vector.
type Path int

const (
	// DirectPath is the float64 binomial ratio.
	DirectPath Path = iota
	// LogSpacePath is the log-gamma recomputation used when DirectPath
	// produced a NaN.
	LogSpacePath
)

// String returns "direct" or "log-space".
func (p Path) String() string {
	switch p {
	case DirectPath:
		return "direct"
	case LogSpacePath:
		return "log-space"
	default:
		return "Path(" + strconv.Itoa(int(p)) + ")"
	}
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64 // calls answered without computing
	Misses    int64 // vectors computed
	Fallbacks int64 // computations that needed LogSpacePath
}
