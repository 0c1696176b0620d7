// Package kit is the root of the typekit toolkit. It holds the error taxonomy
// shared by the sum types and the tagging primitive, plus small helpers used
// to describe payloads in error messages.
//
// The toolkit itself lives in sub-packages:
// - tagged: discriminants, immutable tagged values and one-shot record stamping
// - dual: data-first / data-last calling conventions
// - pipe: left-to-right composition
// - option, result, either: the sum types and their operations
package kit
