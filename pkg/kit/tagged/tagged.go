package tagged

import (
	"fmt"

	"github.com/ib-77/typekit/pkg/kit/dual"
)

// TagField is the reserved field name holding the discriminant of a Record.
const TagField = "_tag"

type Tag string

// Tagged is implemented by every value exposing a read-only discriminant.
type Tagged interface {
	Tag() Tag
}

// Is reports whether v carries tag.
func Is(v Tagged, tag Tag) bool {
	return v != nil && v.Tag() == tag
}

type Value[T any] struct {
	tag  Tag
	data T
}

// New derives a tagged value from data. data itself is left untouched.
func New[T any](data T, tag Tag) Value[T] {
	return Value[T]{tag: tag, data: data}
}

// With is the data-last form of New.
func With[T any](tag Tag) func(T) Value[T] {
	return dual.Last(New[T])(tag)
}

func (v Value[T]) Tag() Tag {
	return v.tag
}

func (v Value[T]) Data() T {
	return v.data
}

// Retag returns a new value holding the same data under tag.
func (v Value[T]) Retag(tag Tag) Value[T] {
	return New(v.data, tag)
}

func (v Value[T]) String() string {
	return fmt.Sprintf("%s(%v)", v.tag, v.data)
}
