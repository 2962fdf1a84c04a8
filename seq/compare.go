package seq

import "golang.org/x/exp/constraints"

// Equal reports whether a and b have the same length and equal elements at
// every index. Like At, it panics if either is a view whose window has gone
// stale.
func Equal[T comparable](a, b Sequence[T]) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically in the order they read, returning
// -1, 0 or +1. A sequence that is a prefix of the other compares as less. To
// order reversed views by the windows they cover, use CompareViews. Like At,
// it panics if either is a view whose window has gone stale.
func Compare[T constraints.Ordered](a, b Sequence[T]) int {
	na, nb := a.Len(), b.Len()
	for i := 0; i < na && i < nb; i++ {
		x, y := a.At(i), b.At(i)
		switch {
		case x < y:
			return -1
		case x > y:
			return +1
		}
	}

	switch {
	case na < nb:
		return -1
	case na > nb:
		return +1
	}
	return 0
}

// CompareViews orders a and b by the windows of the sequences they cover,
// read front to back whatever each view's direction. This is the order
// revslice.Compare uses: Reverse(Items{1, 5}) is less than
// Reverse(Items{9, 4}) because 1 < 9.
func CompareViews[T constraints.Ordered](a, b View[T]) int {
	return Compare[T](a.forward(), b.forward())
}
