// hash.go -- hashing bitsets consistently with Equal
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
	"encoding/binary"

	"github.com/dchest/siphash"
	"github.com/opencoff/go-fasthash"
)

// Sum64 returns a fast non-cryptographic hash of b. Bitsets that are Equal
// under b's width mode hash to the same value for the same 'seed'.
func (b *Bitset) Sum64(seed uint64) uint64 {
	if b.mode == Strict {
		seed ^= mix(b.n)
	}
	return fasthash.Hash64(seed, wordsToByteSlice(b.significant()))
}

// KeyedSum64 returns the SipHash-2-4 of b under 'key', which must be 16
// bytes long. Use it in preference to Sum64 when the bitsets come from
// untrusted input. Bitsets that are Equal under b's width mode hash to the
// same value.
func (b *Bitset) KeyedSum64(key []byte) uint64 {
	h := siphash.New(key)
	if b.mode == Strict {
		var z [8]byte

		binary.LittleEndian.PutUint64(z[:], b.n)
		h.Write(z[:])
	}
	h.Write(wordsToByteSlice(b.significant()))
	return h.Sum64()
}

// significant returns the words that take part in equality: all of them for
// Strict; for Promoted, trailing zero words are dropped since zero extension
// can't change the outcome.
func (b *Bitset) significant() []Word {
	v := b.v
	if b.mode == Promoted {
		for len(v) > 0 && v[len(v)-1] == zeros {
			v = v[:len(v)-1]
		}
	}
	return v
}

// compression function for fasthash; borrowed from Zi Long Tan's superfast
// hash
func mix(h uint64) uint64 {
	h ^= h >> 23
	h *= 0x2127599bf4325c37
	h ^= h >> 47
	return h
}
