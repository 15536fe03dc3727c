// mmap.go -- view word slices as bytes without copying
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
	"unsafe"
)

// word-slice to byte-slice; the bytes are in native endian order and alias 'v'.
func wordsToByteSlice(v []Word) []byte {
	if len(v) == 0 {
		return nil
	}

	n := len(v) * int(unsafe.Sizeof(v[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), n)
}
