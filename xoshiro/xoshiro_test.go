// xoshiro_test.go -- test suite for xoshiro256++
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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroState(t *testing.T) {
	r, err := New([4]uint64{})
	require.ErrorIs(t, err, ErrZeroState)
	assert.Nil(t, r)

	r, err = New([4]uint64{0, 0, 0, 1})
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestKnownState(t *testing.T) {
	r, err := New([4]uint64{1, 2, 3, 4})
	require.NoError(t, err)

	exp := []uint64{0x2800001, 0x3800067, 0xcc00003800067, 0xcc201994400b2}
	for i, e := range exp {
		assert.Equal(t, e, r.Next(), "output %d", i)
	}
}

func TestSplitMix64(t *testing.T) {
	var sm SplitMix64

	exp := []uint64{0xe220a8397b1dcdaf, 0x6e789e6aa1b965f4, 0x06c45d188009454f, 0xf88bb8a8724c81ec}
	for i, e := range exp {
		assert.Equal(t, e, sm.Next(), "output %d", i)
	}
}

func TestSeeded(t *testing.T) {
	r := NewSeeded(0)
	assert.Equal(t, [4]uint64{0xe220a8397b1dcdaf, 0x6e789e6aa1b965f4, 0x06c45d188009454f, 0xf88bb8a8724c81ec}, r.s)

	exp := []uint64{0x53175d61490b23df, 0x61da6f3dc380d507, 0x5c0fdf91ec9a7bfc, 0x02eebf8c3bbe5e1a}
	for i, e := range exp {
		assert.Equal(t, e, r.Next(), "output %d", i)
	}

	// same seed, same stream
	a := NewSeeded(0xdeadbeef)
	b := NewSeeded(0xdeadbeef)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}

	a.Seed(42)
	b = NewSeeded(42)
	assert.Equal(t, b.s, a.s)
}

func TestRandomNotZero(t *testing.T) {
	for i := 0; i < 16; i++ {
		r := NewRandom()
		assert.NotEqual(t, [4]uint64{}, r.s)
	}

	// independent draws of the whole state
	a, b := NewRandom(), NewRandom()
	assert.NotEqual(t, a.s, b.s)
	assert.NotEqual(t, a.Next(), b.Next())

	k1, k2 := RandBytes(16), RandBytes(16)
	assert.Len(t, k1, 16)
	assert.NotEqual(t, k1, k2)
	assert.Empty(t, RandBytes(0))
}

func TestUint64n(t *testing.T) {
	r := NewSeeded(7)
	for i := 0; i < 1000; i++ {
		v := r.Uint64n(10)
		require.Less(t, v, uint64(10))
	}

	assert.Panics(t, func() { r.Uint64n(0) })
}

func TestMathRandSource(t *testing.T) {
	rnd := rand.New(NewSeeded(1))
	for i := 0; i < 100; i++ {
		v := rnd.Intn(50)
		require.True(t, v >= 0 && v < 50)
	}
}
