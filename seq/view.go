package seq

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"github.com/mel2oo/go-revslice/internal/flip"
	"github.com/mel2oo/go-revslice/optionals"
)

// View presents a Sequence in forward or reversed order, optionally limited to
// a window of it. It holds a reference to the sequence and never copies
// elements.
//
// The zero value is not usable; create views with Reverse or Window.
type View[T any] struct {
	seq Sequence[T]

	// Whether element 0 of the view is the last element of the window.
	rev bool

	// When windowed is set, the view covers seq[lo:hi]. Otherwise it covers
	// all of seq at whatever length seq has when the view is used.
	windowed bool
	lo, hi   int
}

var _ Sequence[int] = View[int]{}

// Reverse returns a reversed view of s. If s is itself a view, the result is
// that view flipped back, so Reverse(Reverse(x)) reads exactly like x.
func Reverse[T any](s Sequence[T]) View[T] {
	switch v := s.(type) {
	case View[T]:
		return v.Reverse()
	case MutView[T]:
		return v.View.Reverse()
	}
	return View[T]{seq: s, rev: true}
}

// Window returns a forward view of all of s. If s is already a view it is
// returned as is.
func Window[T any](s Sequence[T]) View[T] {
	switch v := s.(type) {
	case View[T]:
		return v
	case MutView[T]:
		return v.View
	}
	return View[T]{seq: s}
}

// Reverse returns the view with its order flipped over the same window.
func (v View[T]) Reverse() View[T] {
	v.rev = !v.rev
	return v
}

// Returns v reading its window front to back.
func (v View[T]) forward() View[T] {
	v.rev = false
	return v
}

// Reversed reports whether v reads its sequence back to front.
func (v View[T]) Reversed() bool {
	return v.rev
}

// Unwrap returns the sequence v reads from.
func (v View[T]) Unwrap() Sequence[T] {
	return v.seq
}

// Returns the part of seq covered by v, in forward coordinates.
func (v View[T]) span() (lo, hi int) {
	if !v.windowed {
		return 0, v.seq.Len()
	}
	return v.lo, v.hi
}

// Returns an error if v covers a window that the sequence has since shrunk
// below.
func (v View[T]) checkLive(hi int, sentinel error) error {
	if n := v.seq.Len(); hi > n {
		return errors.Wrapf(sentinel, "window [%d, %d) of sequence with length %d", v.lo, v.hi, n)
	}
	return nil
}

func (v View[T]) Len() int {
	lo, hi := v.span()
	return hi - lo
}

func (v View[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Returns the index into the underlying sequence of element i of v.
func (v View[T]) locate(i int) (int, error) {
	lo, hi := v.span()
	if err := flip.CheckIndex(i, hi-lo); err != nil {
		return 0, err
	}
	if err := v.checkLive(hi, ErrOutOfBounds); err != nil {
		return 0, err
	}

	if v.rev {
		return lo + flip.Index(hi-lo, i), nil
	}
	return lo + i, nil
}

// Returns element i of the view. Returns an error wrapping ErrOutOfBounds
// unless 0 <= i < Len() and the view's window still lies within the sequence.
func (v View[T]) Get(i int) (T, error) {
	j, err := v.locate(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.seq.At(j), nil
}

// Like Get, but panics on error.
func (v View[T]) At(i int) T {
	x, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return x
}

// Like Get, but returns None instead of an error.
func (v View[T]) Lookup(i int) optionals.Optional[T] {
	x, err := v.Get(i)
	return optionals.Of(x, err == nil)
}

func (v View[T]) First() optionals.Optional[T] {
	return v.Lookup(0)
}

func (v View[T]) Last() optionals.Optional[T] {
	return v.Lookup(v.Len() - 1)
}

// Sub returns the view of elements [start, end) of v, in v's order. The result
// covers a fixed window of the underlying sequence, computed against the
// sequence's length at the time of the call. Chained calls compose: the window
// is always expressed against the original sequence.
//
// Returns an error wrapping ErrRangeOutOfBounds unless
// 0 <= start <= end <= Len() and v's own window still lies within the
// sequence.
func (v View[T]) Sub(start, end int) (View[T], error) {
	lo, hi := v.span()
	n := hi - lo
	if err := flip.CheckRange(start, end, n); err != nil {
		return View[T]{}, err
	}
	if err := v.checkLive(hi, ErrRangeOutOfBounds); err != nil {
		return View[T]{}, err
	}

	a, b := start, end
	if v.rev {
		a, b = flip.Range(n, start, end)
	}
	return View[T]{
		seq:      v.seq,
		rev:      v.rev,
		windowed: true,
		lo:       lo + a,
		hi:       lo + b,
	}, nil
}

// SubFrom returns v.Sub(start, v.Len()).
func (v View[T]) SubFrom(start int) (View[T], error) {
	return v.Sub(start, v.Len())
}

// SubTo returns v.Sub(0, end).
func (v View[T]) SubTo(end int) (View[T], error) {
	return v.Sub(0, end)
}

// Like Sub, but panics on error.
func (v View[T]) MustSub(start, end int) View[T] {
	sub, err := v.Sub(start, end)
	if err != nil {
		panic(err)
	}
	return sub
}

// SplitAt divides v into the views [0, mid) and [mid, Len()).
func (v View[T]) SplitAt(mid int) (View[T], View[T], error) {
	n := v.Len()
	if err := flip.CheckRange(0, mid, n); err != nil {
		return View[T]{}, View[T]{}, err
	}
	head, err := v.Sub(0, mid)
	if err != nil {
		return View[T]{}, View[T]{}, err
	}
	tail, err := v.Sub(mid, n)
	if err != nil {
		return View[T]{}, View[T]{}, err
	}
	return head, tail, nil
}

// SplitFirst returns element 0 of v and a view of the rest. ok is false if v
// is empty or its window has gone stale.
func (v View[T]) SplitFirst() (first T, rest View[T], ok bool) {
	x, err := v.Get(0)
	if err != nil {
		return first, View[T]{}, false
	}
	rest, err = v.SubFrom(1)
	if err != nil {
		return first, View[T]{}, false
	}
	return x, rest, true
}

// SplitLast returns the last element of v and a view of everything before it.
func (v View[T]) SplitLast() (last T, rest View[T], ok bool) {
	n := v.Len()
	x, err := v.Get(n - 1)
	if err != nil {
		return last, View[T]{}, false
	}
	rest, err = v.SubTo(n - 1)
	if err != nil {
		return last, View[T]{}, false
	}
	return x, rest, true
}

// All returns an iterator over index-value pairs of v in v's order. The length
// is read when iteration starts; like At, the iterator panics if the sequence
// shrinks under it.
func (v View[T]) All() iter.Seq2[int, T] {
	return All[T](v)
}

// Values returns an iterator over the elements of v in v's order.
func (v View[T]) Values() iter.Seq[T] {
	return Values[T](v)
}

// Collect copies the elements of v, in v's order, into a new slice. Like At,
// it panics if v's window has gone stale.
func (v View[T]) Collect() []T {
	return Collect[T](v)
}

// String renders the elements of v in v's order, e.g. "rev[3 2 1]". A view
// whose window has gone stale renders as "rev<stale [lo, hi) of length n>".
func (v View[T]) String() string {
	prefix := "fwd"
	if v.rev {
		prefix = "rev"
	}
	lo, hi := v.span()
	if err := v.checkLive(hi, ErrOutOfBounds); err != nil {
		return fmt.Sprintf("%s<stale [%d, %d) of length %d>", prefix, lo, hi, v.seq.Len())
	}
	return fmt.Sprintf("%s%v", prefix, v.Collect())
}
