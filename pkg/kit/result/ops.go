package result

import "github.com/ib-77/typekit/pkg/kit/dual"

// Handlers transforms both sides of a Result.
type Handlers[T1, E1, T2, E2 any] struct {
	OnOk  func(value T1) T2
	OnErr func(err E1) E2
}

// FlatHandlers replaces a Result from either side.
type FlatHandlers[T1, E1, T2, E2 any] struct {
	OnOk  func(value T1) Result[T2, E2]
	OnErr func(err E1) Result[T2, E2]
}

// Flatten returns the inner Result of an Ok, or the outer Err.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Err[T](r.err)
}

func Map[T1, E, T2 any](r Result[T1, E], onOk func(T1) T2) Result[T2, E] {
	if r.ok {
		return Ok[T2, E](onOk(r.value))
	}
	return Err[T2](r.err)
}

func MapWith[T1, E, T2 any](onOk func(T1) T2) func(Result[T1, E]) Result[T2, E] {
	return dual.Last(Map[T1, E, T2])(onOk)
}

func MapErr[T, E1, E2 any](r Result[T, E1], onErr func(E1) E2) Result[T, E2] {
	if r.ok {
		return Ok[T, E2](r.value)
	}
	return Err[T](onErr(r.err))
}

func MapErrWith[T, E1, E2 any](onErr func(E1) E2) func(Result[T, E1]) Result[T, E2] {
	return dual.Last(MapErr[T, E1, E2])(onErr)
}

func BiMap[T1, E1, T2, E2 any](r Result[T1, E1], handlers Handlers[T1, E1, T2, E2]) Result[T2, E2] {
	if r.ok {
		return Ok[T2, E2](handlers.OnOk(r.value))
	}
	return Err[T2](handlers.OnErr(r.err))
}

func BiMapWith[T1, E1, T2, E2 any](handlers Handlers[T1, E1, T2, E2]) func(Result[T1, E1]) Result[T2, E2] {
	return dual.Last(BiMap[T1, E1, T2, E2])(handlers)
}

func FlatMap[T1, E, T2 any](r Result[T1, E], onOk func(T1) Result[T2, E]) Result[T2, E] {
	if r.ok {
		return onOk(r.value)
	}
	return Err[T2](r.err)
}

func FlatMapWith[T1, E, T2 any](onOk func(T1) Result[T2, E]) func(Result[T1, E]) Result[T2, E] {
	return dual.Last(FlatMap[T1, E, T2])(onOk)
}

func FlatMapErr[T, E1, E2 any](r Result[T, E1], onErr func(E1) Result[T, E2]) Result[T, E2] {
	if r.ok {
		return Ok[T, E2](r.value)
	}
	return onErr(r.err)
}

func FlatMapErrWith[T, E1, E2 any](onErr func(E1) Result[T, E2]) func(Result[T, E1]) Result[T, E2] {
	return dual.Last(FlatMapErr[T, E1, E2])(onErr)
}

func BiFlatMap[T1, E1, T2, E2 any](r Result[T1, E1], handlers FlatHandlers[T1, E1, T2, E2]) Result[T2, E2] {
	if r.ok {
		return handlers.OnOk(r.value)
	}
	return handlers.OnErr(r.err)
}

func BiFlatMapWith[T1, E1, T2, E2 any](handlers FlatHandlers[T1, E1, T2, E2]) func(Result[T1, E1]) Result[T2, E2] {
	return dual.Last(BiFlatMap[T1, E1, T2, E2])(handlers)
}

// FinallyHandlers reduces a Result to a concrete value.
type FinallyHandlers[T, E, Out any] struct {
	OnOk  func(value T) Out
	OnErr func(err E) Out
}

func Match[T, E, Out any](r Result[T, E], handlers FinallyHandlers[T, E, Out]) Out {
	if r.ok {
		return handlers.OnOk(r.value)
	}
	return handlers.OnErr(r.err)
}

func MatchWith[T, E, Out any](handlers FinallyHandlers[T, E, Out]) func(Result[T, E]) Out {
	return dual.Last(Match[T, E, Out])(handlers)
}
