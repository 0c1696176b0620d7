// Package either implements Either[L, R], a value that is either Left(l) or
// Right(r). Unlike result.Result neither side means failure; every operation
// exists for both sides.
package either
