package revslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func TestEqual(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     []string
		expected bool
	}{
		{name: "both empty", a: nil, b: []string{}, expected: true},
		{name: "same", a: []string{"a", "b"}, b: []string{"a", "b"}, expected: true},
		{name: "reversed", a: []string{"a", "b"}, b: []string{"b", "a"}},
		{name: "prefix", a: []string{"a"}, b: []string{"a", "b"}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Equal(Of(tc.a), Of(tc.b)), tc.name)
	}
}

// Views order by the slices they wrap, front to back.
func TestCompare(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     []int
		expected int
	}{
		{name: "both empty", expected: 0},
		{name: "equal", a: []int{1, 2, 3}, b: []int{1, 2, 3}, expected: 0},
		// The views read 5 1 and 4 9, but the wrapped slices decide: 1 < 9.
		{name: "first wrapped element decides", a: []int{1, 5}, b: []int{9, 4}, expected: -1},
		{name: "later elements ignored once decided", a: []int{9, 9, 3}, b: []int{0, 0, 4}, expected: +1},
		{name: "wrapped prefix is less", a: []int{1, 2}, b: []int{1, 2, 3}, expected: -1},
		// rev[3 2] reads as a prefix of rev[3 2 1], but [2 3] > [1 2 3].
		{name: "view prefix is not less", a: []int{2, 3}, b: []int{1, 2, 3}, expected: +1},
		{name: "empty is least", a: nil, b: []int{0}, expected: -1},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Compare(Of(tc.a), Of(tc.b)), tc.name)
		assert.Equal(t, -tc.expected, Compare(Of(tc.b), Of(tc.a)), tc.name)
	}
}

// Comparing views agrees with comparing what Rev returns, including after
// sub-slicing.
func TestCompareMatchesRev(t *testing.T) {
	s := []int{3, 1, 4, 1, 5, 9, 2, 6}
	r := Of(s)
	for a := 0; a <= len(s); a++ {
		for b := a; b <= len(s); b++ {
			x := r.MustSub(a, b)
			y := r.MustSub(0, b-a)
			assert.Equal(t, slices.Compare(x.Rev(), y.Rev()), Compare(x, y), "[%d, %d)", a, b)
		}
	}
}
