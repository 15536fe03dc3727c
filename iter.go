// iter.go -- walking the set bits of a bitset
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
	"math/bits"
	"strings"
)

// NextSet returns the index of the first set bit at or after 'i'. The second
// return value is false if there is no such bit.
func (b *Bitset) NextSet(i uint64) (uint64, bool) {
	if i >= b.n {
		return 0, false
	}

	x := wordIndex(i)
	w := b.v[x] >> bitOffset(i)
	if w != zeros {
		return i + uint64(bits.TrailingZeros(uint(w))), true
	}

	for x++; x < uint64(len(b.v)); x++ {
		if w = b.v[x]; w != zeros {
			return x*WordBits + uint64(bits.TrailingZeros(uint(w))), true
		}
	}
	return 0, false
}

// Indices returns the positions of all set bits in ascending order
func (b *Bitset) Indices() []uint64 {
	idx := make([]uint64, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		idx = append(idx, i)
	}
	return idx
}

// String renders b most significant bit first
func (b *Bitset) String() string {
	var s strings.Builder

	s.Grow(int(b.n))
	for i := b.n; i > 0; i-- {
		if b.v[wordIndex(i-1)]&oneHotMask(i-1) != zeros {
			s.WriteByte('1')
		} else {
			s.WriteByte('0')
		}
	}
	return s.String()
}
