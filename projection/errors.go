// SPDX-License-Identifier: MIT

package projection

import "errors"

// ErrInvalidKey indicates a key outside 0 ≤ To ≤ From, 0 ≤ Hits ≤ From.
var ErrInvalidKey = errors.New("projection: invalid key")

// Panic messages for programmer errors in options.
const (
	panicNilStore  = "projection: WithStore: nil store"
	panicNilLogger = "projection: WithLogger: nil logger"
	panicNilHook   = "projection: WithComputeHook: nil hook"
)
