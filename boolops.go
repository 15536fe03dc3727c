// boolops.go -- boolean combination and equality of bitsets
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitset

// And sets b to b & o
func (b *Bitset) And(o *Bitset) *Bitset {
	b.apply("and", o, func(x, y Word) Word { return x & y })
	return b
}

// Or sets b to b | o
func (b *Bitset) Or(o *Bitset) *Bitset {
	b.apply("or", o, func(x, y Word) Word { return x | y })
	return b
}

// Xor sets b to b ^ o
func (b *Bitset) Xor(o *Bitset) *Bitset {
	b.apply("xor", o, func(x, y Word) Word { return x ^ y })
	return b
}

// Nand sets b to ^(b & o)
func (b *Bitset) Nand(o *Bitset) *Bitset {
	b.apply("nand", o, func(x, y Word) Word { return ^(x & y) })
	return b
}

// Nor sets b to ^(b | o)
func (b *Bitset) Nor(o *Bitset) *Bitset {
	b.apply("nor", o, func(x, y Word) Word { return ^(x | y) })
	return b
}

// Xnor sets b to ^(b ^ o)
func (b *Bitset) Xnor(o *Bitset) *Bitset {
	b.apply("xnor", o, func(x, y Word) Word { return ^(x ^ y) })
	return b
}

// Not complements every bit of b in place
func (b *Bitset) Not() *Bitset {
	for i, w := range b.v {
		b.v[i] = ^w
	}
	b.zeroUnusedBits()
	return b
}

// Complement returns a new bitset holding ^b
func (b *Bitset) Complement() *Bitset {
	c := &Bitset{mode: b.mode}
	c.Reserve(b.n)
	for _, w := range b.v {
		c.ExtendMSBWithWord(^w)
	}
	c.n = b.n
	c.zeroUnusedBits()
	return c
}

// AndNot clears every bit of b that is set in 'o' (b &= ^o). Unlike the
// other combinators it never promotes or checks widths: only the words both
// bitsets share are touched and b keeps its length.
func (b *Bitset) AndNot(o *Bitset) *Bitset {
	n := min(len(b.v), len(o.v))
	for i := 0; i < n; i++ {
		b.v[i] &^= o.v[i]
	}
	return b
}

// Intersection returns x & y as a new bitset
func Intersection(x, y *Bitset) *Bitset {
	wide, narrow := byWords(x, y)
	return wide.Clone().And(narrow)
}

// Union returns x | y as a new bitset
func Union(x, y *Bitset) *Bitset {
	wide, narrow := byWords(x, y)
	return wide.Clone().Or(narrow)
}

// SymmetricDifference returns x ^ y as a new bitset
func SymmetricDifference(x, y *Bitset) *Bitset {
	wide, narrow := byWords(x, y)
	return wide.Clone().Xor(narrow)
}

// Every supported op is commutative; the result is built from the operand
// with more words so promotion never has to grow it. Ties keep y first, the
// mode of the result is always x's.
func byWords(x, y *Bitset) (*Bitset, *Bitset) {
	if len(x.v) > len(y.v) {
		return x, y
	}
	if x.mode != y.mode {
		c := y.Clone()
		c.mode = x.mode
		return c, x
	}
	return y, x
}

// Equal returns true if b and 'o' hold the same bits. Strict bitsets of
// different lengths panic; Promoted bitsets compare as if the shorter one
// were zero-extended, though an empty bitset only equals another empty one.
func (b *Bitset) Equal(o *Bitset) bool {
	if b.mode == Promoted {
		if b.IsEmpty() != o.IsEmpty() {
			return false
		}

		narrow, wide := b, o
		if o.IsNarrowerThan(b) {
			narrow, wide = o, b
		}

		i := 0
		for ; i < len(narrow.v); i++ {
			if narrow.v[i] != wide.v[i] {
				return false
			}
		}
		for ; i < len(wide.v); i++ {
			if wide.v[i] != zeros {
				return false
			}
		}
		return true
	}

	if b.n != o.n {
		widthMismatch("compare", b.n, o.n)
	}
	for i, w := range b.v {
		if w != o.v[i] {
			return false
		}
	}
	return true
}

func (b *Bitset) apply(name string, o *Bitset, op func(x, y Word) Word) {
	if b.mode == Promoted {
		bw, ow := len(b.v), len(o.v)

		i := 0
		for ; i < min(bw, ow); i++ {
			b.v[i] = op(b.v[i], o.v[i])
		}
		for ; i < bw; i++ {
			b.v[i] = op(b.v[i], zeros)
		}
		for ; i < ow; i++ {
			b.v = append(b.v, op(o.v[i], zeros))
		}

		b.n = max(b.n, o.n)
		b.zeroUnusedBits()
		return
	}

	if b.n != o.n {
		widthMismatch(name, b.n, o.n)
	}
	for i := range b.v {
		b.v[i] = op(b.v[i], o.v[i])
	}
	b.zeroUnusedBits()
}
