package either

import (
	"fmt"

	"github.com/ib-77/typekit/pkg/kit/pipe"
	"github.com/ib-77/typekit/pkg/kit/tagged"
)

const (
	LeftTag  tagged.Tag = "left"
	RightTag tagged.Tag = "right"
)

// Either holds a value of type L or a value of type R. The zero value is Left
// holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

func (e Either[L, R]) Tag() tagged.Tag {
	if e.isRight {
		return RightTag
	}
	return LeftTag
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) UnwrapLeftOr(defaultValue L) L {
	if e.isRight {
		return defaultValue
	}
	return e.left
}

func (e Either[L, R]) UnwrapRightOr(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{left: e.right, right: e.left, isRight: !e.isRight}
}

// Pipe threads e through fns, see pipe.Pipe.
func (e Either[L, R]) Pipe(fns ...func(Either[L, R]) Either[L, R]) Either[L, R] {
	return pipe.Pipe(e, fns...)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
