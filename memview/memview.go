package memview

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"github.com/mel2oo/go-revslice/internal/flip"
)

// Controls whether representation invariants are checked in MemView.repOk.
// When enabled, a panic occurs when an invariant is found to be violated.
var CheckInvariants = false

// MemView represents a "view" on a collection of byte slices. Conceptually, you
// may think of it as a [][]byte, with helper methods to make it seem like one
// contiguous []byte. It is designed to help minimize the amount of copying when
// dealing with large buffers of data.
//
// MemView satisfies seq.Mutable[byte]. A reversed view built over a *MemView
// follows the MemView as it grows through Append; one built over a MemView
// value sees the length the value had when it was copied.
//
// Copying a MemView or passing memView by value is like copying a slice - it's
// efficient, but element writes through the copy affect the original MemView
// and vice versa. Use `DeepCopy` to create a MemView whose chunk list is
// independent.
//
// The zero value is an empty MemView ready to use.
type MemView struct {
	// Invariants, checked by repOk:
	//   - length is the sum of the lengths of the chunks in buf.
	buf    [][]byte
	length int
}

// The new MemView does NOT make a copy of data, so the caller MUST ensure that
// the underlying memory of data remains valid after this call returns. Writes
// through SetAt modify data.
func New(data []byte) MemView {
	return MemView{
		buf:    [][]byte{data},
		length: len(data),
	}
}

// Make an empty memview
func Empty() MemView {
	return MemView{
		buf:    [][]byte{},
		length: 0,
	}
}

func (dst *MemView) Append(src MemView) {
	dst.buf = append(dst.buf, src.buf...)
	dst.length += src.length
	dst.repOk()
}

// Creates a MemView whose chunk list is independent from the current one. The
// chunks themselves are still shared.
func (mv MemView) DeepCopy() MemView {
	newBuf := make([][]byte, len(mv.buf))
	copy(newBuf, mv.buf)
	return MemView{
		buf:    newBuf,
		length: mv.length,
	}
}

func (mv *MemView) Clear() {
	mv.buf = mv.buf[:0] // clear without reallocating memory
	mv.length = 0
}

func (mv MemView) Len() int {
	return mv.length
}

// Returns the chunk holding byte i and the offset of byte i in that chunk.
func (mv MemView) locate(i int) (chunk []byte, offset int, err error) {
	if err := flip.CheckIndex(i, mv.length); err != nil {
		return nil, 0, errors.Wrap(err, "memview")
	}

	n := i
	for _, b := range mv.buf {
		if n < len(b) {
			return b, n, nil
		}
		n -= len(b)
	}

	// Unreachable while length agrees with buf.
	return nil, 0, errors.Errorf("memview: byte %d missing from %d chunks", i, len(mv.buf))
}

// Returns the byte at the given index, or an error wrapping
// flip.ErrOutOfBounds if the index is out of bounds.
func (mv MemView) Get(i int) (byte, error) {
	chunk, offset, err := mv.locate(i)
	if err != nil {
		return 0, err
	}
	return chunk[offset], nil
}

// Returns the byte at the given index. Panics if index is out of bounds.
func (mv MemView) At(i int) byte {
	b, err := mv.Get(i)
	if err != nil {
		panic(err)
	}
	return b
}

// Overwrites the byte at the given index in the underlying chunk. Panics if
// index is out of bounds.
func (mv MemView) SetAt(i int, b byte) {
	chunk, offset, err := mv.locate(i)
	if err != nil {
		panic(err)
	}
	chunk[offset] = b
}

// Returns mv[start:end] (end is not inclusive), sharing the underlying chunks.
// Returns an error wrapping flip.ErrRangeOutOfBounds unless
// 0 <= start <= end <= Len().
func (mv MemView) SubView(start, end int) (MemView, error) {
	if err := flip.CheckRange(start, end, mv.length); err != nil {
		return MemView{}, errors.Wrap(err, "memview")
	}
	if start == end {
		return MemView{}, nil
	}

	startBuf := -1
	endBuf := -1
	var startOffset, endOffset int

	var n int
	for i, b := range mv.buf {
		lb := len(b)
		if startBuf == -1 && n+lb > start {
			startBuf = i
			startOffset = start - n
		}
		if endBuf == -1 && n+lb >= end { // >= because end is not inclusive
			endBuf = i
			endOffset = end - n
			break
		}
		n += lb
	}

	newBuf := make([][]byte, endBuf+1-startBuf)
	copy(newBuf, mv.buf[startBuf:endBuf+1])
	if len(newBuf) == 1 {
		newBuf[0] = newBuf[0][startOffset:endOffset]
	} else {
		newBuf[0] = newBuf[0][startOffset:]
		newBuf[len(newBuf)-1] = newBuf[len(newBuf)-1][:endOffset]
	}

	rv := MemView{
		buf:    newBuf,
		length: end - start,
	}
	rv.repOk()
	return rv, nil
}

// Returns a copy of all the data referenced by this MemView.
func (mv MemView) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(mv.length)
	for _, b := range mv.buf {
		buf.Write(b)
	}
	return buf.Bytes()
}

// Returns a string of all the data referenced by this MemView. Note that is
// creates a COPY of the underlying data.
func (mv MemView) String() string {
	return string(mv.Bytes())
}

func (left MemView) Equal(right MemView) bool {
	if left.length != right.length {
		return false
	}

	leftBufIdx := 0
	leftBufOffset := 0
	rightBufIdx := 0
	rightBufOffset := 0
	for idx := 0; idx < left.length; idx++ {
		// Assume both MemViews are internally consistent, so we don't need to do
		// any bounds checks on left.buf and right.buf.

		// Seek through the buffers on each side until we find the next byte.
		for leftBufOffset >= len(left.buf[leftBufIdx]) {
			leftBufIdx++
			leftBufOffset = 0
		}
		for rightBufOffset >= len(right.buf[rightBufIdx]) {
			rightBufIdx++
			rightBufOffset = 0
		}

		if left.buf[leftBufIdx][leftBufOffset] != right.buf[rightBufIdx][rightBufOffset] {
			return false
		}

		leftBufOffset++
		rightBufOffset++
	}

	return true
}

func (mv MemView) repOk() {
	if !CheckInvariants {
		return
	}

	total := 0
	for _, b := range mv.buf {
		total += len(b)
	}
	if total != mv.length {
		panic(fmt.Sprintf("memview: length %d does not match chunk total %d", mv.length, total))
	}
}
