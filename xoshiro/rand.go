// rand.go -- seeding from the system random source
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package xoshiro

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewRandom returns a generator whose full 256-bit state is drawn from
// crypto/rand.
func NewRandom() *Rand {
	var seed [32]byte
	var state [4]uint64

	for {
		entropy(seed[:])
		for i := range state {
			state[i] = binary.LittleEndian.Uint64(seed[8*i:])
		}

		// an all-zero draw is the only way New can fail
		if r, err := New(state); err == nil {
			return r
		}
	}
}

// RandBytes returns 'n' bytes from crypto/rand; useful as a hash key.
func RandBytes(n int) []byte {
	key := make([]byte, n)
	entropy(key)
	return key
}

func entropy(b []byte) {
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("xoshiro: crypto/rand: %s", err))
	}
}
