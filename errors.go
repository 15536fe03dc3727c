// errors.go -- error values raised by the bitset engine
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitset

import (
	"errors"
	"fmt"
)

// Both errors signal programmer mistakes. They are never returned; the
// offending call panics with an error that wraps one of them, so a recovered
// value can be tested with errors.Is().
var (
	// ErrOutOfRange is raised by a single-bit access or a ranged mutation
	// whose start index is at or beyond the bitset length.
	ErrOutOfRange = errors.New("index out of range")

	// ErrWidthMismatch is raised when Strict bitsets of different lengths
	// are compared or combined.
	ErrWidthMismatch = errors.New("width mismatch")
)

func outOfRange(i, n uint64) {
	panic(fmt.Errorf("bitset: access at %d in range [0, %d): %w", i, n, ErrOutOfRange))
}

func widthMismatch(op string, a, b uint64) {
	panic(fmt.Errorf("bitset: %s on operands of width %d and %d: %w", op, a, b, ErrWidthMismatch))
}
