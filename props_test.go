// props_test.go -- algebraic properties over random bitsets
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
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencoff/go-bitset/xoshiro"
)

var propLengths = []uint64{1, 3, WordBits - 1, WordBits, WordBits + 1, 2*WordBits + 17, 5 * WordBits}

func TestAggregateProps(t *testing.T) {
	r := xoshiro.NewSeeded(1)

	for _, n := range propLengths {
		for k := 0; k < 10; k++ {
			b := randomBitset(r, Strict, n)
			if k%3 == 0 {
				b.SetAll()
			}
			require.True(t, tailClean(b))

			var count uint64
			for i := uint64(0); i < n; i++ {
				if b.Test(i) {
					count++
				}
			}
			require.Equal(t, count, b.Count())
			assert.Equal(t, n > 0 && count == n, b.All())
			assert.Equal(t, count == 0, b.None())
			assert.Equal(t, !b.None(), b.Any())
			assert.Equal(t, int(count), len(b.Indices()))
		}
	}
}

func TestComplementLaws(t *testing.T) {
	r := xoshiro.NewSeeded(2)

	for _, mode := range []WidthMode{Strict, Promoted} {
		for _, n := range propLengths {
			a := randomBitset(r, mode, n)

			assert.True(t, a.Complement().Complement().Equal(a), "%s/%d: ~~a", mode, n)

			z := Intersection(a, a.Complement())
			assert.Equal(t, n, z.Len())
			assert.True(t, z.None(), "%s/%d: a & ~a", mode, n)

			o := Union(a, a.Complement())
			assert.Equal(t, n, o.Len())
			assert.True(t, o.All(), "%s/%d: a | ~a", mode, n)
			assert.True(t, tailClean(o))
		}
	}
}

// a OP b on a shorter 'a' is the same as zero-extending 'a' first
func TestPromotionLaw(t *testing.T) {
	r := xoshiro.NewSeeded(3)

	ops := map[string]func(x, y *Bitset) *Bitset{
		"and": func(x, y *Bitset) *Bitset { return x.And(y) },
		"or":  func(x, y *Bitset) *Bitset { return x.Or(y) },
		"xor": func(x, y *Bitset) *Bitset { return x.Xor(y) },
	}

	for name, op := range ops {
		for k := 0; k < 50; k++ {
			na := 1 + r.Uint64n(4*WordBits)
			nb := na + r.Uint64n(3*WordBits)

			a := randomBitset(r, Promoted, na)
			b := randomBitset(r, Promoted, nb)

			ext := a.Clone()
			ext.Resize(nb, false)

			got := op(a.Clone(), b)
			exp := op(ext, b)
			require.Equal(t, nb, got.Len(), "%s: len", name)
			require.Equal(t, exp.Unstable().Words(), got.Unstable().Words(), "%s: %d vs %d bits", name, na, nb)

			// and the other way around
			got = op(b.Clone(), a)
			require.Equal(t, exp.Unstable().Words(), got.Unstable().Words(), "%s reversed: %d vs %d bits", name, na, nb)
			require.True(t, tailClean(got))
		}
	}
}

func TestHashFollowsEqual(t *testing.T) {
	r := xoshiro.NewSeeded(5)
	key := xoshiro.RandBytes(16)

	for _, n := range propLengths {
		a := randomBitset(r, Promoted, n)

		z := a.Clone()
		z.Resize(n+3*WordBits, false)
		require.True(t, a.Equal(z))
		assert.Equal(t, a.Sum64(7), z.Sum64(7), "promoted %d: Sum64", n)
		assert.Equal(t, a.KeyedSum64(key), z.KeyedSum64(key), "promoted %d: KeyedSum64", n)

		s := randomBitset(r, Strict, n)
		c := s.Clone()
		assert.Equal(t, s.Sum64(7), c.Sum64(7), "strict %d: Sum64", n)
		assert.Equal(t, s.KeyedSum64(key), c.KeyedSum64(key), "strict %d: KeyedSum64", n)

		// different seeds and different contents should not collide here
		assert.NotEqual(t, s.Sum64(7), s.Sum64(8), "strict %d: seed ignored", n)
		c.Flip(n - 1)
		assert.NotEqual(t, s.KeyedSum64(key), c.KeyedSum64(key), "strict %d: flip ignored", n)
	}

	// Strict hashes depend on the length even when the words agree
	x := NewSized(Strict, 3, false)
	y := NewSized(Strict, 4, false)
	assert.NotEqual(t, x.Sum64(0), y.Sum64(0))
	assert.NotEqual(t, x.KeyedSum64(key), y.KeyedSum64(key))
}

func TestRoaring(t *testing.T) {
	r := xoshiro.NewSeeded(6)

	for _, n := range propLengths {
		b := randomBitset(r, Strict, n)

		rb := b.ToRoaring()
		require.Equal(t, b.Count(), rb.GetCardinality())

		idx := b.Indices()
		arr := rb.ToArray()
		require.Len(t, arr, len(idx))
		for i := range idx {
			require.Equal(t, idx[i], uint64(arr[i]))
		}

		c := FromRoaring(Strict, n, rb)
		require.True(t, c.Equal(b), "round trip of %d bits", n)
	}

	// positions past the width are dropped
	rb := roaring.BitmapOf(1, 5, 64, 200)
	b := FromRoaring(Promoted, 65, rb)
	assert.Equal(t, uint64(65), b.Len())
	assert.Equal(t, []uint64{1, 5, 64}, b.Indices())
	assert.True(t, tailClean(b))
}
