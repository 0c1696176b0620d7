package either

import (
	"github.com/ib-77/typekit/pkg/kit"
	"github.com/ib-77/typekit/pkg/kit/dual"
)

func IsLeft[L, R any](e Either[L, R]) bool {
	return e.IsLeft()
}

func IsRight[L, R any](e Either[L, R]) bool {
	return e.IsRight()
}

// TryUnwrapLeft returns the left value, or a *kit.UnwrapError describing the
// right one.
func TryUnwrapLeft[L, R any](e Either[L, R]) (L, error) {
	if e.isRight {
		var zero L
		return zero, kit.NewUnwrapError("unwrapLeft", string(RightTag), e.right)
	}
	return e.left, nil
}

// UnwrapLeft returns the left value and panics with a *kit.UnwrapError on Right.
func UnwrapLeft[L, R any](e Either[L, R]) L {
	v, err := TryUnwrapLeft(e)
	if err != nil {
		panic(err)
	}
	return v
}

func UnwrapLeftOr[L, R any](e Either[L, R], defaultValue L) L {
	return e.UnwrapLeftOr(defaultValue)
}

func UnwrapLeftOrWith[L, R any](defaultValue L) func(Either[L, R]) L {
	return dual.Last(UnwrapLeftOr[L, R])(defaultValue)
}

// TryUnwrapRight returns the right value, or a *kit.UnwrapError describing
// the left one.
func TryUnwrapRight[L, R any](e Either[L, R]) (R, error) {
	if !e.isRight {
		var zero R
		return zero, kit.NewUnwrapError("unwrapRight", string(LeftTag), e.left)
	}
	return e.right, nil
}

// UnwrapRight returns the right value and panics with a *kit.UnwrapError on Left.
func UnwrapRight[L, R any](e Either[L, R]) R {
	v, err := TryUnwrapRight(e)
	if err != nil {
		panic(err)
	}
	return v
}

func UnwrapRightOr[L, R any](e Either[L, R], defaultValue R) R {
	return e.UnwrapRightOr(defaultValue)
}

func UnwrapRightOrWith[L, R any](defaultValue R) func(Either[L, R]) R {
	return dual.Last(UnwrapRightOr[L, R])(defaultValue)
}
