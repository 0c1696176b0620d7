package either

import "github.com/ib-77/typekit/pkg/kit/dual"

// Handlers transforms both sides of an Either.
type Handlers[L1, R1, L2, R2 any] struct {
	OnLeft  func(value L1) L2
	OnRight func(value R1) R2
}

// FlatHandlers replaces an Either from either side.
type FlatHandlers[L1, R1, L2, R2 any] struct {
	OnLeft  func(value L1) Either[L2, R2]
	OnRight func(value R1) Either[L2, R2]
}

// FinallyHandlers reduces an Either to a concrete value.
type FinallyHandlers[L, R, Out any] struct {
	OnLeft  func(value L) Out
	OnRight func(value R) Out
}

// Flatten returns the outer Left untouched or the inner Either of a Right.
func Flatten[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	if e.isRight {
		return e.right
	}
	return Left[L, R](e.left)
}

// Flatten2 returns whichever nested Either is present.
func Flatten2[L, R any](e Either[Either[L, R], Either[L, R]]) Either[L, R] {
	if e.isRight {
		return e.right
	}
	return e.left
}

// Collapse flattens a nested Either whose sides share one type. The result is
// Right only when both levels are Right; otherwise it is Left holding the
// inner payload.
func Collapse[T any](e Either[Either[T, T], Either[T, T]]) Either[T, T] {
	inner := Flatten2(e)
	if e.isRight && inner.isRight {
		return inner
	}
	if inner.isRight {
		return Left[T, T](inner.right)
	}
	return inner
}

func MapLeft[L1, R, L2 any](e Either[L1, R], onLeft func(L1) L2) Either[L2, R] {
	if e.isRight {
		return Right[L2](e.right)
	}
	return Left[L2, R](onLeft(e.left))
}

func MapLeftWith[L1, R, L2 any](onLeft func(L1) L2) func(Either[L1, R]) Either[L2, R] {
	return dual.Last(MapLeft[L1, R, L2])(onLeft)
}

func MapRight[L, R1, R2 any](e Either[L, R1], onRight func(R1) R2) Either[L, R2] {
	if e.isRight {
		return Right[L](onRight(e.right))
	}
	return Left[L, R2](e.left)
}

func MapRightWith[L, R1, R2 any](onRight func(R1) R2) func(Either[L, R1]) Either[L, R2] {
	return dual.Last(MapRight[L, R1, R2])(onRight)
}

func BiMap[L1, R1, L2, R2 any](e Either[L1, R1], handlers Handlers[L1, R1, L2, R2]) Either[L2, R2] {
	if e.isRight {
		return Right[L2](handlers.OnRight(e.right))
	}
	return Left[L2, R2](handlers.OnLeft(e.left))
}

func BiMapWith[L1, R1, L2, R2 any](handlers Handlers[L1, R1, L2, R2]) func(Either[L1, R1]) Either[L2, R2] {
	return dual.Last(BiMap[L1, R1, L2, R2])(handlers)
}

func FlatMapLeft[L1, R, L2 any](e Either[L1, R], onLeft func(L1) Either[L2, R]) Either[L2, R] {
	if e.isRight {
		return Right[L2](e.right)
	}
	return onLeft(e.left)
}

func FlatMapLeftWith[L1, R, L2 any](onLeft func(L1) Either[L2, R]) func(Either[L1, R]) Either[L2, R] {
	return dual.Last(FlatMapLeft[L1, R, L2])(onLeft)
}

func FlatMapRight[L, R1, R2 any](e Either[L, R1], onRight func(R1) Either[L, R2]) Either[L, R2] {
	if e.isRight {
		return onRight(e.right)
	}
	return Left[L, R2](e.left)
}

func FlatMapRightWith[L, R1, R2 any](onRight func(R1) Either[L, R2]) func(Either[L, R1]) Either[L, R2] {
	return dual.Last(FlatMapRight[L, R1, R2])(onRight)
}

func BiFlatMap[L1, R1, L2, R2 any](e Either[L1, R1], handlers FlatHandlers[L1, R1, L2, R2]) Either[L2, R2] {
	if e.isRight {
		return handlers.OnRight(e.right)
	}
	return handlers.OnLeft(e.left)
}

func BiFlatMapWith[L1, R1, L2, R2 any](handlers FlatHandlers[L1, R1, L2, R2]) func(Either[L1, R1]) Either[L2, R2] {
	return dual.Last(BiFlatMap[L1, R1, L2, R2])(handlers)
}

func Match[L, R, Out any](e Either[L, R], handlers FinallyHandlers[L, R, Out]) Out {
	if e.isRight {
		return handlers.OnRight(e.right)
	}
	return handlers.OnLeft(e.left)
}

func MatchWith[L, R, Out any](handlers FinallyHandlers[L, R, Out]) func(Either[L, R]) Out {
	return dual.Last(Match[L, R, Out])(handlers)
}
