// Package revslice offers a reversed view into a slice.
//
// A Slice[T] wraps a []T and indexes it backwards: Of(s).At(0) is the last
// element of s, so Of(s).At(i) stands in for the s[-1-i] that Go does not
// allow. Sub-slicing a view, splitting it or iterating over it never copies
// elements; every result shares the backing array of the wrapped slice, and
// writes through a view land in that array.
//
// Like a slice, a Slice[T] is a small value that is cheap to pass around. It
// performs no locking. The caller must not let a view outlive the data it
// wraps, and must not write through a view while another goroutine reads the
// same elements.
package revslice

import (
	"github.com/mel2oo/go-revslice/internal/flip"
	"github.com/mel2oo/go-revslice/optionals"
)

var (
	// ErrOutOfBounds is wrapped by the errors Get, Ptr and Set return for an
	// index outside [0, Len()).
	ErrOutOfBounds = flip.ErrOutOfBounds

	// ErrRangeOutOfBounds is wrapped by the errors Sub and SplitAt return for a
	// range outside [0, Len()].
	ErrRangeOutOfBounds = flip.ErrRangeOutOfBounds
)

// Slice is a reversed view of a []T. The zero value is an empty view.
type Slice[T any] struct {
	// The viewed elements in forward order.
	s []T
}

// Of returns a reversed view of s. It does not copy s.
func Of[T any](s []T) Slice[T] {
	return Slice[T]{s: s}
}

// Rev reverses the view again, returning the slice it is a view of. For any
// slice s, Of(s).Rev() is s itself. After sub-slicing, the result is exactly
// the window of the original slice that the view covers.
func (r Slice[T]) Rev() []T {
	return r.s
}

func (r Slice[T]) Len() int {
	return len(r.s)
}

func (r Slice[T]) IsEmpty() bool {
	return len(r.s) == 0
}

// Returns element i of the view, which is s[len(s)-1-i] of the viewed slice.
// Returns an error wrapping ErrOutOfBounds unless 0 <= i < Len().
func (r Slice[T]) Get(i int) (T, error) {
	n := len(r.s)
	if err := flip.CheckIndex(i, n); err != nil {
		var zero T
		return zero, err
	}
	return r.s[flip.Index(n, i)], nil
}

// Like Get, but returns None instead of an error.
func (r Slice[T]) Lookup(i int) optionals.Optional[T] {
	v, err := r.Get(i)
	return optionals.Of(v, err == nil)
}

// Like Get, but panics if i is out of bounds.
func (r Slice[T]) At(i int) T {
	v, err := r.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

// Returns a pointer to element i of the view. The pointer aliases the viewed
// slice's backing array.
func (r Slice[T]) Ptr(i int) (*T, error) {
	n := len(r.s)
	if err := flip.CheckIndex(i, n); err != nil {
		return nil, err
	}
	return &r.s[flip.Index(n, i)], nil
}

// Set writes v to element i of the view, and so to s[len(s)-1-i] of the
// viewed slice.
func (r Slice[T]) Set(i int, v T) error {
	p, err := r.Ptr(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Like Set, but panics if i is out of bounds.
func (r Slice[T]) SetAt(i int, v T) {
	if err := r.Set(i, v); err != nil {
		panic(err)
	}
}

// Sub returns the view of elements [start, end) of r, reading them in the same
// order r does. It is the same as reversing s[Len()-end:Len()-start] of the
// viewed slice s. Returns an error wrapping ErrRangeOutOfBounds unless
// 0 <= start <= end <= Len().
func (r Slice[T]) Sub(start, end int) (Slice[T], error) {
	n := len(r.s)
	if err := flip.CheckRange(start, end, n); err != nil {
		return Slice[T]{}, err
	}
	lo, hi := flip.Range(n, start, end)
	// Cap the window so that appending to Rev() cannot write over elements
	// outside of it.
	return Slice[T]{s: r.s[lo:hi:hi]}, nil
}

// SubFrom returns r.Sub(start, r.Len()).
func (r Slice[T]) SubFrom(start int) (Slice[T], error) {
	return r.Sub(start, len(r.s))
}

// SubTo returns r.Sub(0, end).
func (r Slice[T]) SubTo(end int) (Slice[T], error) {
	return r.Sub(0, end)
}

// Like Sub, but panics if the range is out of bounds.
func (r Slice[T]) MustSub(start, end int) Slice[T] {
	sub, err := r.Sub(start, end)
	if err != nil {
		panic(err)
	}
	return sub
}
