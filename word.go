// word.go -- machine word constants
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
)

// Word is the unit of storage; it is the native unsigned integer of the
// target platform (32 or 64 bits).
type Word uint

const (
	// WordBits is the number of bits in a Word
	WordBits = bits.UintSize

	msbPos = WordBits - 1

	zeros Word = 0
	ones  Word = ^zeros

	// Disjoint is the alternating 0101... pattern; Disjoint and Disjoint<<1
	// partition a word.
	Disjoint Word = Word(0x5555555555555555 & uint64(^uint(0)))
)

// number of words needed to hold 'nbits'
func wordsNeeded(nbits uint64) uint64 {
	n := nbits / WordBits
	if nbits%WordBits != 0 {
		n++
	}
	return n
}

func wordIndex(i uint64) uint64 {
	return i / WordBits
}

func bitOffset(i uint64) uint {
	return uint(i % WordBits)
}

func oneHotMask(i uint64) Word {
	return Word(1) << bitOffset(i)
}

// mask with bits [start, stop] (inclusive) set
func rangeMask(start, stop uint) Word {
	m := (ones >> start) << start
	return (m << (msbPos - stop)) >> (msbPos - stop)
}

func popcount(w Word) int {
	return bits.OnesCount(uint(w))
}
