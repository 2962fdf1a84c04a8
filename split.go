package revslice

import (
	"github.com/mel2oo/go-revslice/internal/flip"
	"github.com/mel2oo/go-revslice/optionals"
)

// First returns element 0 of the view, which is the last element of the
// viewed slice.
func (r Slice[T]) First() optionals.Optional[T] {
	if len(r.s) == 0 {
		return optionals.None[T]()
	}
	return optionals.Some(r.s[len(r.s)-1])
}

// Last returns element Len()-1 of the view, which is the first element of the
// viewed slice.
func (r Slice[T]) Last() optionals.Optional[T] {
	if len(r.s) == 0 {
		return optionals.None[T]()
	}
	return optionals.Some(r.s[0])
}

// SplitFirst returns the first element of the view and a view of the rest.
// ok is false if the view is empty.
func (r Slice[T]) SplitFirst() (first T, rest Slice[T], ok bool) {
	n := len(r.s)
	if n == 0 {
		return first, Slice[T]{}, false
	}
	return r.s[n-1], Of(r.s[: n-1 : n-1]), true
}

// SplitLast returns the last element of the view and a view of everything
// before it. ok is false if the view is empty.
func (r Slice[T]) SplitLast() (last T, rest Slice[T], ok bool) {
	if len(r.s) == 0 {
		return last, Slice[T]{}, false
	}
	return r.s[0], Of(r.s[1:]), true
}

// SplitAt divides the view in two at mid. The first view holds elements
// [0, mid) of r and the second holds [mid, Len()). Returns an error wrapping
// ErrRangeOutOfBounds unless 0 <= mid <= Len().
func (r Slice[T]) SplitAt(mid int) (Slice[T], Slice[T], error) {
	n := len(r.s)
	if err := flip.CheckRange(0, mid, n); err != nil {
		return Slice[T]{}, Slice[T]{}, err
	}
	rmid := flip.Fencepost(n, mid)
	head, tail := r.s[:rmid:rmid], r.s[rmid:]
	return Of(tail), Of(head), nil
}
