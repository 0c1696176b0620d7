// Package result implements Result[T, E], a value that is either Ok(value) or
// Err(error). E is any type, not necessarily a Go error.
//
// Each operation taking an argument besides the Result has a data-first form
// and a data-last "With" form for use with pipe.
//
// Key operations:
// - Ok/Err/Try: construct a Result
// - IsOk/IsErr: discriminant predicates
// - Unwrap/UnwrapErr/Expect: extract a side or panic with *kit.UnwrapError
// - TryUnwrap/TryUnwrapErr: extract a side or return *kit.UnwrapError
// - UnwrapOr/UnwrapErrOr: extract a side or fall back to a default
// - Map/MapErr/BiMap: transform one or both sides
// - FlatMap/FlatMapErr/BiFlatMap: replace the Result from one or both sides
// - Flatten: collapse Result[Result[T, E], E]
// - Match: reduce to a concrete value
// - FromOption/ToOption: bridge to package option
package result
