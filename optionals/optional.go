package optionals

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var ErrNone = errors.New("optional value is None")

// An Optional[T] is an option type. Checked lookups on reversed views return
// one where a slice would otherwise need a bounds check at the call site.
//
// The JSON serialization/deserialization of an Optional[T] is compatible with
// that of a *T.
type Optional[T any] struct {
	value *T
}

func Some[T any](t T) Optional[T] {
	return Optional[T]{
		value: &t,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Of returns Some(t) if ok, and None otherwise. It adapts the (value, ok)
// returns used throughout Go.
func Of[T any](t T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(t)
}

func (opt Optional[T]) IsSome() bool {
	return opt.value != nil
}

func (opt Optional[T]) IsNone() bool {
	return opt.value == nil
}

func (opt Optional[T]) Get() (T, bool) {
	var defaultResult T
	if opt.IsNone() {
		return defaultResult, false
	}

	return *opt.value, true
}

// Returns the value inhabiting this option. Panics with ErrNone if this is
// None.
func (opt Optional[T]) MustGet() T {
	if opt.IsNone() {
		panic(ErrNone)
	}
	return *opt.value
}

// Returns the value inhabiting this option. If this is None, then returns the
// given default value.
func (opt Optional[T]) GetOrDefault(defaultValue T) T {
	if opt.IsNone() {
		return defaultValue
	}
	return *opt.value
}

// Returns the value inhabiting this option. If this is None, then returns the
// result of calling the supplied function.
func (opt Optional[T]) GetOrCompute(computeValue func() (T, error)) (T, error) {
	if opt.IsNone() {
		return computeValue()
	}
	return *opt.value, nil
}

func Bind[T, U any](opt Optional[T], f func(T) Optional[U]) Optional[U] {
	if opt.IsNone() {
		return None[U]()
	}

	return f(*opt.value)
}

func Map[T, U any](opt Optional[T], f func(T) U) Optional[U] {
	if opt.IsNone() {
		return None[U]()
	}

	return Some(f(*opt.value))
}

func (opt Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(opt.value)
}

func (opt *Optional[T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &opt.value); err != nil {
		return errors.Wrap(err, "failed to unmarshal optional")
	}
	return nil
}
