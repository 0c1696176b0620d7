// Package option implements Option[T], a value that is either Some(value) or
// None.
//
// Each operation has a data-first form and a data-last "With" form for use
// with pipe:
// - Some/None: construct an Option
// - IsSome/IsNone/Get/UnwrapOr: inspect it
// - Map/FlatMap: transform the present value
// - Ap: apply a transform over the whole Option
// - Match: reduce to a concrete value
package option
