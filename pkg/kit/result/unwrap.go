package result

import (
	"github.com/ib-77/typekit/pkg/kit"
	"github.com/ib-77/typekit/pkg/kit/dual"
)

func IsOk[T, E any](r Result[T, E]) bool {
	return r.ok
}

func IsErr[T, E any](r Result[T, E]) bool {
	return !r.ok
}

// TryUnwrap returns the success value, or a *kit.UnwrapError describing the
// error payload.
func TryUnwrap[T, E any](r Result[T, E]) (T, error) {
	if !r.ok {
		var zero T
		return zero, kit.NewUnwrapError("unwrap", string(ErrTag), r.err)
	}
	return r.value, nil
}

// Unwrap returns the success value and panics with a *kit.UnwrapError on Err.
func Unwrap[T, E any](r Result[T, E]) T {
	v, err := TryUnwrap(r)
	if err != nil {
		panic(err)
	}
	return v
}

func UnwrapOr[T, E any](r Result[T, E], defaultValue T) T {
	return r.UnwrapOr(defaultValue)
}

func UnwrapOrWith[T, E any](defaultValue T) func(Result[T, E]) T {
	return dual.Last(UnwrapOr[T, E])(defaultValue)
}

// TryUnwrapErr returns the error payload, or a *kit.UnwrapError describing
// the success value.
func TryUnwrapErr[T, E any](r Result[T, E]) (E, error) {
	if r.ok {
		var zero E
		return zero, kit.NewUnwrapError("unwrapErr", string(OkTag), r.value)
	}
	return r.err, nil
}

// UnwrapErr returns the error payload and panics with a *kit.UnwrapError on Ok.
func UnwrapErr[T, E any](r Result[T, E]) E {
	e, err := TryUnwrapErr(r)
	if err != nil {
		panic(err)
	}
	return e
}

func UnwrapErrOr[T, E any](r Result[T, E], defaultError E) E {
	return r.UnwrapErrOr(defaultError)
}

func UnwrapErrOrWith[T, E any](defaultError E) func(Result[T, E]) E {
	return dual.Last(UnwrapErrOr[T, E])(defaultError)
}

// Expect is Unwrap with a caller supplied panic message.
func Expect[T, E any](r Result[T, E], message string) T {
	if !r.ok {
		panic(kit.NewUnwrapError("expect", string(ErrTag), r.err).WithMessage(message))
	}
	return r.value
}

func ExpectWith[T, E any](message string) func(Result[T, E]) T {
	return dual.Last(Expect[T, E])(message)
}
