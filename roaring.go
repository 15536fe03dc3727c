// roaring.go -- conversion to and from compressed roaring bitmaps
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
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring returns a roaring bitmap holding the positions of the set bits
// of b. Roaring positions are 32-bit; a set bit at or beyond 2^32 panics.
func (b *Bitset) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()

	buf := make([]uint32, 0, 1024)
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		if i > math.MaxUint32 {
			outOfRange(i, math.MaxUint32+1)
		}

		buf = append(buf, uint32(i))
		if len(buf) == cap(buf) {
			rb.AddMany(buf)
			buf = buf[:0]
		}
	}
	rb.AddMany(buf)
	return rb
}

// FromRoaring creates a bitset of 'nbits' bits with every position of 'rb'
// below 'nbits' set.
func FromRoaring(mode WidthMode, nbits uint64, rb *roaring.Bitmap) *Bitset {
	b := NewSized(mode, nbits, false)

	it := rb.Iterator()
	for it.HasNext() {
		i := uint64(it.Next())
		if i >= nbits {
			break
		}
		b.v[wordIndex(i)] |= oneHotMask(i)
	}
	return b
}
