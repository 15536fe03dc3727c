// bitops.go -- single bit and ranged mutation
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitset

// Test returns true if bit 'i' is set
func (b *Bitset) Test(i uint64) bool {
	if i >= b.n {
		outOfRange(i, b.n)
	}
	return b.v[wordIndex(i)]&oneHotMask(i) != zeros
}

// Set sets bit 'i'
func (b *Bitset) Set(i uint64) *Bitset {
	if i >= b.n {
		outOfRange(i, b.n)
	}
	b.v[wordIndex(i)] |= oneHotMask(i)
	return b
}

// Reset clears bit 'i'
func (b *Bitset) Reset(i uint64) *Bitset {
	if i >= b.n {
		outOfRange(i, b.n)
	}
	b.v[wordIndex(i)] &^= oneHotMask(i)
	return b
}

// Flip toggles bit 'i'
func (b *Bitset) Flip(i uint64) *Bitset {
	if i >= b.n {
		outOfRange(i, b.n)
	}
	b.v[wordIndex(i)] ^= oneHotMask(i)
	return b
}

// SetTo sets bit 'i' to 'val'
func (b *Bitset) SetTo(i uint64, val bool) *Bitset {
	if val {
		return b.Set(i)
	}
	return b.Reset(i)
}

// SetAll sets every bit
func (b *Bitset) SetAll() *Bitset {
	for i := range b.v {
		b.v[i] = ones
	}
	b.zeroUnusedBits()
	return b
}

// ResetAll clears every bit
func (b *Bitset) ResetAll() *Bitset {
	for i := range b.v {
		b.v[i] = zeros
	}
	return b
}

// FlipAll toggles every bit
func (b *Bitset) FlipAll() *Bitset {
	return b.Not()
}

// SetRange sets the bits [start, start+length). The range is clipped to
// Len(); 'start' itself must be a valid index.
func (b *Bitset) SetRange(start, length uint64) *Bitset {
	b.modifyRange(start, length,
		func(Word) Word { return ones },
		func(w Word, s, e uint) Word { return w | rangeMask(s, e) })
	return b
}

// ResetRange clears the bits [start, start+length). The range is clipped to
// Len(); 'start' itself must be a valid index.
func (b *Bitset) ResetRange(start, length uint64) *Bitset {
	b.modifyRange(start, length,
		func(Word) Word { return zeros },
		func(w Word, s, e uint) Word { return w &^ rangeMask(s, e) })
	return b
}

// FlipRange toggles the bits [start, start+length). The range is clipped to
// Len(); 'start' itself must be a valid index.
func (b *Bitset) FlipRange(start, length uint64) *Bitset {
	b.modifyRange(start, length,
		func(w Word) Word { return ^w },
		func(w Word, s, e uint) Word { return w ^ rangeMask(s, e) })
	return b
}

// modifyRange applies 'full' to every word wholly inside [pos, pos+length)
// and 'partial' to the boundary words; partial gets the inclusive in-word
// bit range to modify.
func (b *Bitset) modifyRange(pos, length uint64, full func(Word) Word, partial func(Word, uint, uint) Word) {
	if pos >= b.n {
		outOfRange(pos, b.n)
	}
	if length == 0 {
		return
	}

	end := b.n
	if length < b.n-pos {
		end = pos + length
	}
	stop := end - 1

	sw, so := wordIndex(pos), bitOffset(pos)
	ew, eo := wordIndex(stop), bitOffset(stop)

	if sw == ew {
		b.v[sw] = partial(b.v[sw], so, eo)
		return
	}

	// boundary words that start or stop on a word edge are handled as full
	// words below.
	first, last := sw, ew
	if so != 0 {
		b.v[sw] = partial(b.v[sw], so, msbPos)
		first++
	}
	if eo != msbPos {
		b.v[ew] = partial(b.v[ew], 0, eo)
		last--
	}

	for i := first; i <= last; i++ {
		b.v[i] = full(b.v[i])
	}
}
