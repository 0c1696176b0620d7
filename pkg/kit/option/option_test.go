package option

import (
	"strconv"
	"testing"

	"github.com/ib-77/typekit/pkg/kit/tagged"
	"github.com/stretchr/testify/assert"
)

func add1(v int) int { return v + 1 }

func incSome(o Option[int]) Option[int] {
	if v, ok := o.Get(); ok {
		return Some(v + 1)
	}
	return None[int]()
}

func TestSome(t *testing.T) {
	t.Parallel()

	o := Some(1)

	assert.Equal(t, SomeTag, o.Tag())
	assert.True(t, IsSome(o))
	assert.False(t, IsNone(o))

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestNone(t *testing.T) {
	t.Parallel()

	o := None[int]()

	assert.Equal(t, NoneTag, o.Tag())
	assert.True(t, IsNone(o))
	assert.False(t, IsSome(o))
	assert.Equal(t, None[int](), o)
	assert.Equal(t, Option[int]{}, o)
}

func TestOption_ImplementsTagged(t *testing.T) {
	t.Parallel()

	var v tagged.Tagged = Some("x")

	assert.True(t, tagged.Is(v, SomeTag))
}

func TestOption_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(1)", Some(1).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, UnwrapOr(Some(1), 2))
	assert.Equal(t, 2, UnwrapOr(None[int](), 2))
	assert.Equal(t, 2, UnwrapOrWith(2)(None[int]()))
}

func TestMap_DataFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(2), Map(Some(1), add1))
	assert.Equal(t, None[int](), Map(None[int](), add1))
	assert.Equal(t, Some("1"), Map(Some(1), strconv.Itoa))
}

func TestMap_DataLast(t *testing.T) {
	t.Parallel()

	m := MapWith(add1)

	assert.Equal(t, Some(2), m(Some(1)))
	assert.Equal(t, None[int](), m(None[int]()))
}

func TestMap_NoneSkipsFunction(t *testing.T) {
	t.Parallel()

	called := false
	Map(None[int](), func(v int) int {
		called = true
		return v
	})

	assert.False(t, called)
}

func TestMap_Identity(t *testing.T) {
	t.Parallel()

	id := func(v int) int { return v }

	assert.Equal(t, Some(7), Map(Some(7), id))
	assert.Equal(t, None[int](), Map(None[int](), id))
}

func TestFlatMap_DataFirst(t *testing.T) {
	t.Parallel()

	twice := func(v int) Option[int] { return Some(v * 2) }
	drop := func(int) Option[int] { return None[int]() }

	assert.Equal(t, Some(4), FlatMap(Some(2), twice))
	assert.Equal(t, None[int](), FlatMap(Some(2), drop))
	assert.Equal(t, None[int](), FlatMap(None[int](), twice))
}

func TestFlatMap_DataLast(t *testing.T) {
	t.Parallel()

	fm := FlatMapWith(func(v int) Option[int] { return Some(v * 2) })

	assert.Equal(t, Some(4), fm(Some(2)))
	assert.Equal(t, None[int](), fm(None[int]()))
}

func TestFlatMap_RightIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(3), FlatMap(Some(3), Some[int]))
	assert.Equal(t, None[int](), FlatMap(None[int](), Some[int]))
}

func TestAp_DataFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(2), Ap(Some(1), incSome))
	assert.Equal(t, None[int](), Ap(None[int](), incSome))
}

func TestAp_DataLast(t *testing.T) {
	t.Parallel()

	ap := ApWith(incSome)

	assert.Equal(t, Some(2), ap(Some(1)))
	assert.Equal(t, None[int](), ap(None[int]()))
}

func TestAp_SeesNone(t *testing.T) {
	t.Parallel()

	fallback := func(o Option[int]) Option[string] {
		if o.IsNone() {
			return Some("absent")
		}
		return Some("present")
	}

	assert.Equal(t, Some("absent"), Ap(None[int](), fallback))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	handlers := Handlers[int, string]{
		OnSome: strconv.Itoa,
		OnNone: func() string { return "none" },
	}

	assert.Equal(t, "1", Match(Some(1), handlers))
	assert.Equal(t, "none", MatchWith(handlers)(None[int]()))
}

func TestOption_Pipe(t *testing.T) {
	t.Parallel()

	out := Some(1).Pipe(MapWith(add1), FlatMapWith(func(v int) Option[int] { return Some(v * 10) }))

	assert.Equal(t, Some(20), out)
	assert.Equal(t, Some(1), Some(1).Pipe())
}
