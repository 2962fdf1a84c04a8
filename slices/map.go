package slices

import (
	"github.com/pkg/errors"

	"github.com/mel2oo/go-revslice/seq"
)

// Apply f to each element of s in order, returning the results. Passing a
// reversed view maps the elements back to front.
func Map[T1, T2 any](s seq.Sequence[T1], f func(T1) T2) []T2 {
	result, _ := MapWithErr[T1, T2](s, func(t T1) (T2, error) {
		return f(t), nil
	})
	return result
}

// Apply f to each element of s in order, returning the results.  Returns
// an error if f returns a non-nil error on any element, annotated with the
// element's index in s.
func MapWithErr[T1, T2 any](s seq.Sequence[T1], f func(T1) (T2, error)) (rv []T2, err error) {
	if s == nil {
		return nil, nil
	}

	rv = make([]T2, s.Len())
	for i, v := range seq.All(s) {
		rv[i], err = f(v)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
	}

	return rv, nil
}
