package stablerand

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a draw or seeding request that no generator
// state could satisfy: a zero or negative bound, an empty seed key, a
// negative shuffle length. Test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidState reports a generator whose state cannot produce the
// deterministic sequence: extraction on an unseeded zero-value generator
// (surfaced as a panic) or a corrupt state snapshot (surfaced as an error).
// Test with errors.Is.
var ErrInvalidState = errors.New("invalid generator state")

var (
	errEmptyKey = fmt.Errorf("seed key must not be empty: %w", ErrInvalidArgument)
	errUnseeded = fmt.Errorf("generator not seeded, use a constructor: %w", ErrInvalidState)
)
