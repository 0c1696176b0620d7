package result

import (
	"fmt"

	"github.com/ib-77/typekit/pkg/kit/pipe"
	"github.com/ib-77/typekit/pkg/kit/tagged"
)

const (
	OkTag  tagged.Tag = "ok"
	ErrTag tagged.Tag = "err"
)

// Result holds either a success value of type T or an error of type E. The
// zero value is Err holding the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

func (r Result[T, E]) Tag() tagged.Tag {
	if r.ok {
		return OkTag
	}
	return ErrTag
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

func (r Result[T, E]) UnwrapErrOr(defaultError E) E {
	if r.ok {
		return defaultError
	}
	return r.err
}

// Pipe threads r through fns, see pipe.Pipe.
func (r Result[T, E]) Pipe(fns ...func(Result[T, E]) Result[T, E]) Result[T, E] {
	return pipe.Pipe(r, fns...)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
