// xoshiro.go -- xoshiro256++ pseudo random generator
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package xoshiro implements the xoshiro256++ generator of David Blackman
// and Sebastiano Vigna: a fast, deterministic 64-bit generator with 256 bits
// of state. It is not suitable for cryptographic use.
package xoshiro

import (
	"errors"
	"math/bits"
)

// ErrZeroState is returned when a generator is created with an all-zero state
var ErrZeroState = errors.New("xoshiro: state must not be zero")

// Rand is a xoshiro256++ generator. Its state is never all zero.
// A Rand is not safe for concurrent use.
type Rand struct {
	s [4]uint64
}

// ensure we can be used as a math/rand source
var _ interface {
	Int63() int64
	Seed(int64)
	Uint64() uint64
} = &Rand{}

// New returns a generator with the given state
func New(state [4]uint64) (*Rand, error) {
	if state == [4]uint64{} {
		return nil, ErrZeroState
	}
	return &Rand{s: state}, nil
}

// NewSeeded returns a generator whose state is expanded from 'seed' via
// SplitMix64. Zero outputs of the expander are skipped, so the state is
// never all zero.
func NewSeeded(seed uint64) *Rand {
	r := &Rand{}
	r.seed(seed)
	return r
}

func (r *Rand) seed(seed uint64) {
	sm := SplitMix64(seed)
	for i := 0; i < len(r.s); {
		if v := sm.Next(); v != 0 {
			r.s[i] = v
			i++
		}
	}
}

// Next advances the generator and returns the next value
func (r *Rand) Next() uint64 {
	s := &r.s
	v := bits.RotateLeft64(s[0]+s[3], 23) + s[0]
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return v
}

// Uint64 is the same as Next
func (r *Rand) Uint64() uint64 {
	return r.Next()
}

// Int63 returns a non-negative 63-bit value
func (r *Rand) Int63() int64 {
	return int64(r.Next() >> 1)
}

// Seed resets the generator as if created by NewSeeded
func (r *Rand) Seed(seed int64) {
	r.seed(uint64(seed))
}

// Uint64n returns a value in [0, n); n must be positive.
func (r *Rand) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("xoshiro: Uint64n with n == 0")
	}

	// Lemire's nearly divisionless method
	hi, lo := bits.Mul64(r.Next(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Next(), n)
		}
	}
	return hi
}

// SplitMix64 is the generator used to expand a 64-bit seed into xoshiro
// state.
type SplitMix64 uint64

// Next advances the generator and returns the next value
func (x *SplitMix64) Next() uint64 {
	*x += 0x9e3779b97f4a7c15
	z := uint64(*x)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
