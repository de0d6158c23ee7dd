//go:build !windows

package stablerand

import "time"

// clockSeed folds the current wall-clock nanosecond reading into a 32-bit
// seed. Nanosecond resolution keeps two constructions in quick succession
// from observing the same value on common platforms.
// The result is only seed material; it carries no timestamp semantics.
func clockSeed() uint32 {
	t := time.Now().UnixNano()
	return uint32(t>>32) ^ uint32(t)
}
