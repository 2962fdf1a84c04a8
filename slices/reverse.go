package slices

// Returns a new slice of the same type as s holding its elements in reverse
// order. This is the copying counterpart of revslice.Of(s), which backs
// revslice's Collect; prefer the view unless the result must outlive s or be
// appended to.
func Reverse[S ~[]E, E any](s S) S {
	// Keep nil distinct from empty.
	if s == nil {
		return nil
	}

	rev := make(S, len(s))
	for i, v := range s {
		rev[len(s)-1-i] = v
	}
	return rev
}
