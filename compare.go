package revslice

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b Slice[T]) bool {
	// Reversing both sides preserves equality.
	return slices.Equal(a.s, b.s)
}

// Compare orders a and b by the slices they view, compared lexicographically
// front to back, returning -1, 0 or +1. This is the order of a.Rev() and
// b.Rev(), not the order the views read in: Of([]int{1, 5}) is less than
// Of([]int{9, 4}) because 1 < 9.
func Compare[T constraints.Ordered](a, b Slice[T]) int {
	return slices.Compare(a.s, b.s)
}
