package result

import (
	"github.com/ib-77/typekit/pkg/kit/option"
)

// Try runs a Go style (value, error) call and captures its outcome.
func Try[T any](f func() (T, error)) Result[T, error] {
	v, err := f()
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// FromOption turns Some into Ok and None into Err(onNone).
func FromOption[T, E any](o option.Option[T], onNone E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](onNone)
}

// ToOption keeps the success value and drops the error.
func ToOption[T, E any](r Result[T, E]) option.Option[T] {
	if r.ok {
		return option.Some(r.value)
	}
	return option.None[T]()
}
