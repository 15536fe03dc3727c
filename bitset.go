// bitset.go -- growable, word-packed bitsets
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package bitset implements a growable bit vector packed into machine words.
// It provides bit addressable mutation, ranged set/reset/flip, bulk boolean
// combination and aggregate queries.
//
// A Bitset is created with a WidthMode that decides how two bitsets of
// different lengths interact: Strict bitsets refuse to be compared or combined
// unless their lengths match; Promoted bitsets treat the shorter operand as if
// it were zero-extended to the longer one.
//
// Bits are numbered from 0 (the least significant bit). The bitset grows and
// shrinks only at the most significant end.
//
// Invalid indices and Strict width mismatches are programmer errors and
// cause a panic with an error wrapping ErrOutOfRange or ErrWidthMismatch.
//
// A Bitset is not safe for concurrent mutation.
package bitset

// WidthMode selects how bitsets of unequal length are combined and compared.
type WidthMode int

const (
	// Strict requires both operands of a binary operation to have the same
	// length.
	Strict WidthMode = iota

	// Promoted zero-extends the shorter operand; the result has the length
	// of the longer one.
	Promoted
)

func (m WidthMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Promoted:
		return "promoted"
	default:
		return "unknown"
	}
}

// Bitset represents a sequence of bits stored least-significant word first.
// The unused high bits of the most significant word are always zero.
type Bitset struct {
	v    []Word
	n    uint64
	mode WidthMode
}

// New returns an empty bitset
func New(mode WidthMode) *Bitset {
	return &Bitset{mode: mode}
}

// NewSized creates a bitset of 'nbits' bits where every bit is 'fill'
func NewSized(mode WidthMode, nbits uint64, fill bool) *Bitset {
	b := &Bitset{mode: mode}
	b.Resize(nbits, fill)
	return b
}

// NewFromWord creates a bitset of 'nbits' bits whose least significant word
// is 'w'; every other word is zero. Bits of 'w' beyond 'nbits' are dropped.
func NewFromWord(mode WidthMode, nbits uint64, w Word) *Bitset {
	b := &Bitset{
		v:    make([]Word, wordsNeeded(nbits)),
		n:    nbits,
		mode: mode,
	}

	if len(b.v) > 0 {
		b.v[0] = w
		b.zeroUnusedBits()
	}
	return b
}

// Clone returns a deep copy of b
func (b *Bitset) Clone() *Bitset {
	c := &Bitset{
		n:    b.n,
		mode: b.mode,
	}
	if len(b.v) > 0 {
		c.v = make([]Word, len(b.v))
		copy(c.v, b.v)
	}
	return c
}

// CopyFrom makes b a deep copy of 'src', reusing b's storage where possible.
// b keeps its own width mode.
func (b *Bitset) CopyFrom(src *Bitset) *Bitset {
	if b == src {
		return b
	}
	b.v = append(b.v[:0], src.v...)
	b.n = src.n
	return b
}

// Move transfers the contents of b into a new Bitset and leaves b empty.
func (b *Bitset) Move() *Bitset {
	m := &Bitset{
		v:    b.v,
		n:    b.n,
		mode: b.mode,
	}
	b.v = nil
	b.n = 0
	return m
}

// Swap exchanges the contents of b and 'o'
func (b *Bitset) Swap(o *Bitset) {
	b.v, o.v = o.v, b.v
	b.n, o.n = o.n, b.n
}

// Mode returns the width mode b was created with
func (b *Bitset) Mode() WidthMode {
	return b.mode
}

// Len returns the number of bits in this bitset
func (b *Bitset) Len() uint64 {
	return b.n
}

// NumWords returns the number of words in use
func (b *Bitset) NumWords() int {
	return len(b.v)
}

// WordCapacity returns the number of words b can hold without reallocating
func (b *Bitset) WordCapacity() int {
	return cap(b.v)
}

// BitCapacity returns the number of bits b can hold without reallocating
func (b *Bitset) BitCapacity() uint64 {
	return uint64(cap(b.v)) * WordBits
}

// IsEmpty returns true if b holds no bits
func (b *Bitset) IsEmpty() bool {
	return b.n == 0
}

// IsNarrowerThan returns true if b has fewer bits than 'o'
func (b *Bitset) IsNarrowerThan(o *Bitset) bool {
	return b.n < o.n
}

// Reserve ensures capacity for at least 'nbits' bits. The length is unchanged.
func (b *Bitset) Reserve(nbits uint64) {
	words := int(wordsNeeded(nbits))
	if words <= cap(b.v) {
		return
	}

	v := make([]Word, len(b.v), words)
	copy(v, b.v)
	b.v = v
}

// Clear drops every bit; the capacity is retained.
func (b *Bitset) Clear() {
	b.v = b.v[:0]
	b.n = 0
}

// ShrinkToFit releases unused capacity.
func (b *Bitset) ShrinkToFit() {
	if len(b.v) == cap(b.v) {
		return
	}
	if len(b.v) == 0 {
		b.v = nil
		return
	}

	v := make([]Word, len(b.v))
	copy(v, b.v)
	b.v = v
}

// Resize changes the length of b to 'nbits'. When growing, new bits are set
// to 'fill'.
func (b *Bitset) Resize(nbits uint64, fill bool) {
	oldWords := len(b.v)
	newWords := int(wordsNeeded(nbits))

	var fw Word
	if fill {
		fw = ones
	}

	switch {
	case newWords > oldWords:
		if newWords > cap(b.v) {
			v := make([]Word, oldWords, newWords)
			copy(v, b.v)
			b.v = v
		}
		b.v = b.v[:newWords]
		for i := oldWords; i < newWords; i++ {
			b.v[i] = fw
		}

	case newWords < oldWords:
		b.v = b.v[:newWords]
	}

	// The old MSW has its unused bits cleared; when growing with ones they
	// become part of the bitset and must be set.
	if fill && nbits > b.n {
		if a := b.mswAlignment(); a > 0 {
			b.v[oldWords-1] |= ones << a
		}
	}

	b.n = nbits
	b.zeroUnusedBits()
}

// PushMSB appends 'bit' as the new most significant bit
func (b *Bitset) PushMSB(bit bool) {
	b.Resize(b.n+1, bit)
}

// PopMSB removes the most significant bit
func (b *Bitset) PopMSB() {
	if b.n == 0 {
		outOfRange(0, 0)
	}
	b.Resize(b.n-1, false)
}

// ExtendMSBWithWord appends WordBits new high bits taken from 'w'; bit 0 of
// 'w' becomes bit Len() of b.
func (b *Bitset) ExtendMSBWithWord(w Word) {
	a := b.mswAlignment()
	if a == 0 {
		b.v = append(b.v, w)
	} else {
		b.v[len(b.v)-1] |= w << a
		b.v = append(b.v, w>>(WordBits-a))
	}

	b.n += WordBits
}

// Count returns the number of bits that are set
func (b *Bitset) Count() uint64 {
	var n int
	for _, w := range b.v {
		n += popcount(w)
	}
	return uint64(n)
}

// Any returns true if at least one bit is set
func (b *Bitset) Any() bool {
	for _, w := range b.v {
		if w != zeros {
			return true
		}
	}
	return false
}

// None returns true if no bit is set
func (b *Bitset) None() bool {
	return !b.Any()
}

// All returns true if b is non-empty and every bit is set
func (b *Bitset) All() bool {
	if b.n == 0 {
		return false
	}

	last := len(b.v) - 1
	if b.v[last] != b.usedBitsMask() {
		return false
	}
	for _, w := range b.v[:last] {
		if w != ones {
			return false
		}
	}
	return true
}

// bit position of the first unused bit in the MSW; 0 when word-aligned
func (b *Bitset) mswAlignment() uint {
	return bitOffset(b.n)
}

func (b *Bitset) usedBitsMask() Word {
	if a := b.mswAlignment(); a > 0 {
		return ^(ones << a)
	}
	return ones
}

// zeroUnusedBits restores the invariant that bits past Len() in the MSW are
// zero.
func (b *Bitset) zeroUnusedBits() {
	if len(b.v) == 0 {
		return
	}
	b.v[len(b.v)-1] &= b.usedBitsMask()
}
