// Package dual provides the two calling conventions used across typekit.
//
// Every operation with a subject and further arguments exists in a data-first
// form, op(subject, args...), and a data-last form, opWith(args...)(subject),
// which plugs into pipe for left-to-right composition. The builders here turn
// a data-first function into its data-last form, so the subject always ends up
// as the first operand.
//
// Key operations:
// - Last/Last3/LastN: build the data-last form of a data-first function
// - First: the inverse of Last
// - Dynamic: a single entry point that picks the convention from the number
// of supplied arguments
package dual
