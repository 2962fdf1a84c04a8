// Package seq provides reversed views over any indexable sequence, not only
// over Go slices.
//
// A Sequence only needs a length and indexed reads. Views implement Sequence
// themselves, so they can be reversed, sub-sliced and reversed again in any
// combination, and reversing a reversed view gives back a forward view of the
// same window.
//
// A view never caches the length of the sequence it reads. Until it is
// sub-sliced it follows the sequence as it grows or shrinks. A sub-slice
// covers a fixed window of the sequence; if the sequence later shrinks below
// that window, accesses fail instead of being clamped.
package seq

import (
	"iter"

	"github.com/mel2oo/go-revslice/internal/flip"
)

var (
	// ErrOutOfBounds is wrapped by errors from point access: an index outside
	// [0, Len()), or a window the sequence has shrunk below.
	ErrOutOfBounds = flip.ErrOutOfBounds

	// ErrRangeOutOfBounds is wrapped by errors from Sub and SplitAt when the
	// range is not within [0, Len()], or the window has gone stale.
	ErrRangeOutOfBounds = flip.ErrRangeOutOfBounds
)

// Sequence is a type that can be indexed like a slice.
type Sequence[T any] interface {
	// Len returns the current length of this sequence.
	Len() int

	// At returns the element at the given index.
	//
	// Should panic if i < 0 or i >= Len().
	At(i int) T
}

// Mutable is a Sequence whose elements can be overwritten in place.
type Mutable[T any] interface {
	Sequence[T]

	// SetAt sets the value of the element at the given index.
	//
	// Should panic if i < 0 or i >= Len().
	SetAt(i int, v T)
}

// Items adapts a []T to Mutable. Its length is fixed by the slice header it
// was converted from.
type Items[T any] []T

var _ Mutable[int] = Items[int](nil)

func (s Items[T]) Len() int {
	return len(s)
}

func (s Items[T]) At(i int) T {
	return s[i]
}

func (s Items[T]) SetAt(i int, v T) {
	s[i] = v
}

// All returns an iterator over the elements in s, like [slices.All].
func All[T any](s Sequence[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := s.Len()
		for i := 0; i < n; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in s, like [slices.Values].
func Values[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range All(s) {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect copies s into a new slice.
func Collect[T any](s Sequence[T]) []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
