// Package flip translates positions between a reversed view and the sequence
// underneath it. A view of length n maps its index i to n-1-i, and its
// half-open range [start, end) to [n-end, n-start).
package flip

import "github.com/pkg/errors"

var (
	ErrOutOfBounds      = errors.New("index out of bounds")
	ErrRangeOutOfBounds = errors.New("range out of bounds")
)

// Index returns the underlying index of element i of a reversed view of
// length n. The caller must have checked i with CheckIndex.
func Index(n, i int) int {
	return n - (i + 1)
}

// Fencepost returns the underlying position of the boundary before element i
// of a reversed view of length n. Boundaries run from 0 to n inclusive.
func Fencepost(n, i int) int {
	return n - i
}

// Range returns the underlying half-open range holding the elements of
// [start, end) of a reversed view of length n.
func Range(n, start, end int) (lo, hi int) {
	return Fencepost(n, end), Fencepost(n, start)
}

// Returns nil if 0 <= i < n. Otherwise returns an error wrapping
// ErrOutOfBounds.
func CheckIndex(i, n int) error {
	if 0 <= i && i < n {
		return nil
	}
	return errors.Wrapf(ErrOutOfBounds, "index %d with length %d", i, n)
}

// Returns nil if 0 <= start <= end <= n. Otherwise returns an error wrapping
// ErrRangeOutOfBounds.
func CheckRange(start, end, n int) error {
	if 0 <= start && start <= end && end <= n {
		return nil
	}
	return errors.Wrapf(ErrRangeOutOfBounds, "range [%d, %d) with length %d", start, end, n)
}
