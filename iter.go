package revslice

import (
	"fmt"
	"iter"

	"github.com/mel2oo/go-revslice/slices"
)

// All returns an iterator over index-value pairs of the view, in the view's
// order. The length is read once when iteration starts.
func (r Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := len(r.s)
		for i := 0; i < n; i++ {
			if !yield(i, r.s[n-1-i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the view. Iterating over
// Of(s).Values() is the same as walking s from its end to its start.
func (r Slice[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(r.s) - 1; i >= 0; i-- {
			if !yield(r.s[i]) {
				return
			}
		}
	}
}

// Pointers is like All, but yields pointers into the viewed slice so that the
// loop body can modify elements in place.
func (r Slice[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		n := len(r.s)
		for i := 0; i < n; i++ {
			if !yield(i, &r.s[n-1-i]) {
				return
			}
		}
	}
}

// Collect returns a new slice holding the elements of the view in the view's
// order. Unlike every other operation on Slice, it copies.
func (r Slice[T]) Collect() []T {
	return slices.Reverse(r.s)
}

func (r Slice[T]) String() string {
	return fmt.Sprintf("rev%v", r.Collect())
}
