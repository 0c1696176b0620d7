package dual

// Continuation awaits the subject of a partially applied Dynamic call.
type Continuation func(subject any) any

// Last returns the data-last form of body: Last(body)(arg)(subject) == body(subject, arg).
func Last[S, A, R any](body func(S, A) R) func(A) func(S) R {
	return func(arg A) func(S) R {
		return func(subject S) R {
			return body(subject, arg)
		}
	}
}

// Last2 is Last for operations returning two values, typically (value, error).
func Last2[S, A, R1, R2 any](body func(S, A) (R1, R2)) func(A) func(S) (R1, R2) {
	return func(arg A) func(S) (R1, R2) {
		return func(subject S) (R1, R2) {
			return body(subject, arg)
		}
	}
}

// Last3 is Last for operations taking two arguments besides the subject.
func Last3[S, A, B, R any](body func(S, A, B) R) func(A, B) func(S) R {
	return func(a A, b B) func(S) R {
		return func(subject S) R {
			return body(subject, a, b)
		}
	}
}

// LastN captures any number of trailing arguments. The subject is prepended
// to them when the returned function is called.
func LastN[S, A, R any](body func(S, ...A) R) func(...A) func(S) R {
	return func(args ...A) func(S) R {
		captured := append([]A(nil), args...)
		return func(subject S) R {
			return body(subject, captured...)
		}
	}
}

// First turns a data-last builder back into a data-first function.
func First[S, A, R any](build func(A) func(S) R) func(S, A) R {
	return func(subject S, arg A) R {
		return build(arg)(subject)
	}
}

// Dynamic wraps body so that callers may supply either all arity arguments,
// subject first, or only the trailing ones. In the second case the result is
// a Continuation awaiting the subject.
//
// For arity 2 only an exact count of two arguments is a full call; a nil
// second argument still counts. Any other count curries the first supplied
// argument. For other arities a call with at least arity arguments runs body
// with all of them, excess included.
func Dynamic(arity int, body func(args ...any) any) func(args ...any) any {
	if arity == 2 {
		return func(args ...any) any {
			if len(args) == 2 {
				return body(args[0], args[1])
			}

			var captured any
			if len(args) > 0 {
				captured = args[0]
			}
			return Continuation(func(subject any) any {
				return body(subject, captured)
			})
		}
	}

	return func(args ...any) any {
		if len(args) >= arity {
			return body(args...)
		}

		captured := append([]any(nil), args...)
		return Continuation(func(subject any) any {
			return body(append([]any{subject}, captured...)...)
		})
	}
}
