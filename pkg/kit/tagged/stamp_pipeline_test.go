package tagged_test

import (
	"testing"

	"github.com/ib-77/typekit/pkg/kit"
	"github.com/ib-77/typekit/pkg/kit/pipe"
	"github.com/ib-77/typekit/pkg/kit/result"
	"github.com/ib-77/typekit/pkg/kit/tagged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tryStep(step func(*tagged.Record) (*tagged.Record, error)) func(*tagged.Record) result.Result[*tagged.Record, error] {
	return func(r *tagged.Record) result.Result[*tagged.Record, error] {
		return result.Try(func() (*tagged.Record, error) {
			return step(r)
		})
	}
}

func TestStampWith_InPipeline(t *testing.T) {
	t.Parallel()

	out := pipe.Pipe2(
		map[string]any{"name": "ann"},
		tagged.NewRecord,
		tryStep(tagged.StampWith("User")),
	)
	require.True(t, result.IsOk(out))

	r := result.Unwrap(out)
	assert.True(t, tagged.Is(r, "User"))

	name, ok := r.Field("name")
	assert.True(t, ok)
	assert.Equal(t, "ann", name)
}

func TestStampWith_InPipelineTwice(t *testing.T) {
	t.Parallel()

	out := pipe.Pipe3(
		map[string]any{"name": "ann"},
		tagged.NewRecord,
		tryStep(tagged.StampWith("User")),
		result.FlatMapWith(tryStep(tagged.StampWith("Admin"))),
	)
	require.True(t, result.IsErr(out))
	assert.ErrorIs(t, result.UnwrapErr(out), kit.ErrIllegalState)
}
