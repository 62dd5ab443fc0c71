package core

import "errors"

// Error kinds shared by all processors and table builders. Packages wrap
// them with context; match with errors.Is.
var (
	// ErrInvalidParameter reports an out-of-range, non-positive or
	// non-finite frequency, strength, sample rate or state value.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidTableSize reports a table size that is neither a power of
	// two nor a power of two plus one.
	ErrInvalidTableSize = errors.New("invalid table size")
)
