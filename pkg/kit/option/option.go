package option

import (
	"fmt"

	"github.com/ib-77/typekit/pkg/kit/pipe"
	"github.com/ib-77/typekit/pkg/kit/tagged"
)

const (
	SomeTag tagged.Tag = "some"
	NoneTag tagged.Tag = "none"
)

// Option holds a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns the empty Option. It carries no state, so every None[T] is
// equal to every other.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Tag() tagged.Tag {
	if o.some {
		return SomeTag
	}
	return NoneTag
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// Pipe threads o through fns, see pipe.Pipe.
func (o Option[T]) Pipe(fns ...func(Option[T]) Option[T]) Option[T] {
	return pipe.Pipe(o, fns...)
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
