// helpers_test.go -- shared test helpers
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
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/opencoff/go-bitset/xoshiro"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

// panics returns true if fn panics with an error wrapping 'want'
func panics(want error, fn func()) (ok bool) {
	defer func() {
		r := recover()
		err, isErr := r.(error)
		ok = isErr && errors.Is(err, want)
	}()

	fn()
	return false
}

// build a bitset by appending whole words
func fromWords(mode WidthMode, words ...Word) *Bitset {
	b := New(mode)
	for _, w := range words {
		b.ExtendMSBWithWord(w)
	}
	return b
}

func wordsEqual(a, b []Word) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// tail bits of the MSW must always be zero
func tailClean(b *Bitset) bool {
	if b.n == 0 {
		return len(b.v) == 0
	}
	if uint64(len(b.v)) != wordsNeeded(b.n) {
		return false
	}
	return b.v[len(b.v)-1]&^b.usedBitsMask() == zeros
}

func randomBitset(r *xoshiro.Rand, mode WidthMode, nbits uint64) *Bitset {
	b := New(mode)
	b.Reserve(nbits)
	for b.Len()+WordBits <= nbits {
		b.ExtendMSBWithWord(Word(r.Next()))
	}
	for b.Len() < nbits {
		b.PushMSB(r.Next()&1 == 1)
	}
	return b
}
