package pipe

// Pipe applies fns to v in order. With no fns v is returned unchanged.
func Pipe[T any](v T, fns ...func(T) T) T {
	for _, f := range fns {
		v = f(v)
	}
	return v
}

func Pipe1[A, B any](a A, ab func(A) B) B {
	return ab(a)
}

func Pipe2[A, B, C any](a A, ab func(A) B, bc func(B) C) C {
	return bc(ab(a))
}

func Pipe3[A, B, C, D any](a A, ab func(A) B, bc func(B) C, cd func(C) D) D {
	return cd(bc(ab(a)))
}

func Pipe4[A, B, C, D, E any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E) E {
	return de(cd(bc(ab(a))))
}

func Pipe5[A, B, C, D, E, F any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E,
	ef func(E) F) F {
	return ef(de(cd(bc(ab(a)))))
}

func Pipe6[A, B, C, D, E, F, G any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E,
	ef func(E) F, fg func(F) G) G {
	return fg(ef(de(cd(bc(ab(a))))))
}

// Compose returns the function applying ab, then bc.
func Compose[A, B, C any](ab func(A) B, bc func(B) C) func(A) C {
	return func(a A) C {
		return bc(ab(a))
	}
}

// Flow folds fns into a single function. Flow() is Identity.
func Flow[T any](fns ...func(T) T) func(T) T {
	fns = append([]func(T) T(nil), fns...)
	return func(v T) T {
		return Pipe(v, fns...)
	}
}

func Identity[T any](v T) T {
	return v
}
