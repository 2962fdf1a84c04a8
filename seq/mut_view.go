package seq

// MutView is a View over a Mutable sequence. Writes through it land in the
// underlying sequence at the translated index. Callers that share the sequence
// between goroutines must serialize writes themselves.
type MutView[T any] struct {
	View[T]
	m Mutable[T]
}

var _ Mutable[int] = MutView[int]{}

// ReverseMut is like Reverse, but keeps write access to s.
func ReverseMut[T any](s Mutable[T]) MutView[T] {
	if v, ok := s.(MutView[T]); ok {
		return v.Reverse()
	}
	return MutView[T]{
		View: View[T]{seq: s, rev: true},
		m:    s,
	}
}

// WindowMut is like Window, but keeps write access to s.
func WindowMut[T any](s Mutable[T]) MutView[T] {
	if v, ok := s.(MutView[T]); ok {
		return v
	}
	return MutView[T]{
		View: View[T]{seq: s},
		m:    s,
	}
}

func (v MutView[T]) wrap(view View[T]) MutView[T] {
	return MutView[T]{View: view, m: v.m}
}

// Set writes x to element i of the view. Returns an error wrapping
// ErrOutOfBounds under the same conditions as Get.
func (v MutView[T]) Set(i int, x T) error {
	j, err := v.locate(i)
	if err != nil {
		return err
	}
	v.m.SetAt(j, x)
	return nil
}

// Like Set, but panics on error.
func (v MutView[T]) SetAt(i int, x T) {
	if err := v.Set(i, x); err != nil {
		panic(err)
	}
}

// Reverse returns the view with its order flipped, keeping write access.
func (v MutView[T]) Reverse() MutView[T] {
	return v.wrap(v.View.Reverse())
}

// Sub is like View.Sub, but the result keeps write access.
func (v MutView[T]) Sub(start, end int) (MutView[T], error) {
	sub, err := v.View.Sub(start, end)
	if err != nil {
		return MutView[T]{}, err
	}
	return v.wrap(sub), nil
}

// SubFrom returns v.Sub(start, v.Len()).
func (v MutView[T]) SubFrom(start int) (MutView[T], error) {
	return v.Sub(start, v.Len())
}

// SubTo returns v.Sub(0, end).
func (v MutView[T]) SubTo(end int) (MutView[T], error) {
	return v.Sub(0, end)
}

// MustSub is like Sub, but panics on error.
func (v MutView[T]) MustSub(start, end int) MutView[T] {
	return v.wrap(v.View.MustSub(start, end))
}

// SplitAt is like View.SplitAt, but both halves keep write access.
func (v MutView[T]) SplitAt(mid int) (MutView[T], MutView[T], error) {
	head, tail, err := v.View.SplitAt(mid)
	if err != nil {
		return MutView[T]{}, MutView[T]{}, err
	}
	return v.wrap(head), v.wrap(tail), nil
}
