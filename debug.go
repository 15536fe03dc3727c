// debug.go -- raw access to the word storage
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitset

// RawView exposes the internal word layout of a Bitset.
//
// WARNING: RawView exists for white-box testing. The layout it reveals is
// not part of the API and may change between versions without notice.
type RawView struct {
	b *Bitset
}

// Unstable returns a RawView of b. See the warning on RawView.
func (b *Bitset) Unstable() RawView {
	return RawView{b}
}

// Words returns a copy of the word sequence, least significant word first
func (r RawView) Words() []Word {
	v := make([]Word, len(r.b.v))
	copy(v, r.b.v)
	return v
}

// WordAt returns word 'i'
func (r RawView) WordAt(i int) Word {
	if i < 0 || i >= len(r.b.v) {
		outOfRange(uint64(i), uint64(len(r.b.v)))
	}
	return r.b.v[i]
}
