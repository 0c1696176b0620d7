// Package pipe composes unary functions left to right.
//
// Pipe threads a value through transforms of one type. Pipe1..Pipe6 allow
// the type to change at every stage, which is how the data-last forms of the
// option, result and either operations are chained:
//
//	out := pipe.Pipe3(
//		result.Ok[int, string](1),
//		result.MapWith[int, string](double),
//		result.FlatMapWith(validate),
//		result.UnwrapOrWith[int, string](0),
//	)
//
// There is no error translation: a panic in any stage reaches the caller.
package pipe
