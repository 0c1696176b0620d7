package either

import (
	"github.com/ib-77/typekit/pkg/kit/option"
	"github.com/ib-77/typekit/pkg/kit/result"
)

func LeftToOption[L, R any](e Either[L, R]) option.Option[L] {
	if e.isRight {
		return option.None[L]()
	}
	return option.Some(e.left)
}

func RightToOption[L, R any](e Either[L, R]) option.Option[R] {
	if e.isRight {
		return option.Some(e.right)
	}
	return option.None[R]()
}

// FromResult maps Ok to Right and Err to Left.
func FromResult[T, E any](r result.Result[T, E]) Either[E, T] {
	return result.Match(r, result.FinallyHandlers[T, E, Either[E, T]]{
		OnOk:  Right[E, T],
		OnErr: Left[E, T],
	})
}

// ToResult maps Right to Ok and Left to Err.
func ToResult[L, R any](e Either[L, R]) result.Result[R, L] {
	if e.isRight {
		return result.Ok[R, L](e.right)
	}
	return result.Err[R](e.left)
}
