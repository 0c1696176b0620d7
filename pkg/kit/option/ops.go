package option

import "github.com/ib-77/typekit/pkg/kit/dual"

func IsSome[T any](o Option[T]) bool {
	return o.IsSome()
}

func IsNone[T any](o Option[T]) bool {
	return o.IsNone()
}

func UnwrapOr[T any](o Option[T], fallback T) T {
	return o.UnwrapOr(fallback)
}

func UnwrapOrWith[T any](fallback T) func(Option[T]) T {
	return dual.Last(UnwrapOr[T])(fallback)
}

// Map applies onSome to the value of a Some. None passes through.
func Map[T, U any](o Option[T], onSome func(T) U) Option[U] {
	if o.some {
		return Some(onSome(o.value))
	}
	return None[U]()
}

func MapWith[T, U any](onSome func(T) U) func(Option[T]) Option[U] {
	return dual.Last(Map[T, U])(onSome)
}

// FlatMap replaces a Some with the Option returned by onSome.
func FlatMap[T, U any](o Option[T], onSome func(T) Option[U]) Option[U] {
	if o.some {
		return onSome(o.value)
	}
	return None[U]()
}

func FlatMapWith[T, U any](onSome func(T) Option[U]) func(Option[T]) Option[U] {
	return dual.Last(FlatMap[T, U])(onSome)
}

// Ap hands the whole Option to apply, None included, and returns its result.
func Ap[T, U any](o Option[T], apply func(Option[T]) Option[U]) Option[U] {
	return apply(o)
}

func ApWith[T, U any](apply func(Option[T]) Option[U]) func(Option[T]) Option[U] {
	return dual.Last(Ap[T, U])(apply)
}

// Handlers reduces an Option to a concrete value.
type Handlers[T, Out any] struct {
	OnSome func(value T) Out
	OnNone func() Out
}

func Match[T, Out any](o Option[T], handlers Handlers[T, Out]) Out {
	if o.some {
		return handlers.OnSome(o.value)
	}
	return handlers.OnNone()
}

func MatchWith[T, Out any](handlers Handlers[T, Out]) func(Option[T]) Out {
	return dual.Last(Match[T, Out])(handlers)
}
