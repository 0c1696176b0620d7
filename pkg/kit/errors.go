package kit

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalState is returned when a record that already carries a tag is stamped again.
	ErrIllegalState = errors.New("illegal state")
	// ErrNotExtensible is returned when a record cannot accept a new field.
	ErrNotExtensible = errors.New("not extensible")
	// ErrUnwrapMismatch matches every *UnwrapError.
	ErrUnwrapMismatch = errors.New("unwrap mismatch")
)

// UnwrapError is raised by unwrap-style accessors invoked on the wrong variant.
type UnwrapError struct {
	// Op is the accessor name, e.g. "unwrap" or "unwrapLeft".
	Op string
	// Variant is the tag of the variant that was actually found.
	Variant string
	// Payload describes the unexpected payload.
	Payload string
	// Message is the caller supplied message of Expect.
	Message string
}

func NewUnwrapError(op, variant string, payload any) *UnwrapError {
	return &UnwrapError{
		Op:      op,
		Variant: variant,
		Payload: Describe(payload),
	}
}

func (e *UnwrapError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("cannot %s %s value: %s", e.Op, e.Variant, e.Payload)
}

func (e *UnwrapError) Is(target error) bool {
	return target == ErrUnwrapMismatch
}

// WithMessage returns a copy of e reporting msg instead of the generated text.
func (e *UnwrapError) WithMessage(msg string) *UnwrapError {
	c := *e
	c.Message = msg
	return &c
}
