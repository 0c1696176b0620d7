package pipe_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ib-77/typekit/pkg/kit/dual"
	"github.com/ib-77/typekit/pkg/kit/either"
	"github.com/ib-77/typekit/pkg/kit/option"
	"github.com/ib-77/typekit/pkg/kit/pipe"
	"github.com/ib-77/typekit/pkg/kit/result"
	"github.com/stretchr/testify/assert"
)

var errInvalidURL = errors.New("invalid URL")

func validateURL(url string) result.Result[string, error] {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return result.Err[string](fmt.Errorf("%s: %w", url, errInvalidURL))
	}
	return result.Ok[string, error](url)
}

func mockFetchTitle(url string) result.Result[string, error] {
	if strings.Contains(url, "---") {
		return result.Err[string](errors.New("fetch failed"))
	}
	return result.Ok[string, error]("Mock Page Title for " + url)
}

func processURL(url string) string {
	return pipe.Pipe4(
		result.Ok[string, error](url),
		result.FlatMapWith(validateURL),
		result.FlatMapWith(mockFetchTitle),
		result.MapWith[string, error](func(title string) int { return len(title) }),
		result.MatchWith(result.FinallyHandlers[int, error, string]{
			OnOk: func(n int) string { return fmt.Sprintf("title length: %d", n) },
			OnErr: func(err error) string {
				if errors.Is(err, errInvalidURL) {
					return "invalid"
				}
				return "failed"
			},
		}),
	)
}

func TestURLProcessing(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.micros---oft.com",
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	got := make([]string, 0, len(urls))
	for _, u := range urls {
		got = append(got, processURL(u))
	}

	assert.Equal(t, []string{
		"title length: 43",
		"title length: 40",
		"failed",
		"invalid",
		"invalid",
	}, got)
}

func TestOptionPipeline(t *testing.T) {
	t.Parallel()

	lookup := map[string]int{"a": 1, "b": 2}
	find := func(key string) option.Option[int] {
		v, ok := lookup[key]
		if !ok {
			return option.None[int]()
		}
		return option.Some(v)
	}

	run := func(key string) int {
		return pipe.Pipe3(
			find(key),
			option.MapWith(func(v int) int { return v * 10 }),
			option.FlatMapWith(func(v int) option.Option[int] {
				if v > 10 {
					return option.None[int]()
				}
				return option.Some(v)
			}),
			option.UnwrapOrWith(-1),
		)
	}

	assert.Equal(t, 10, run("a"))
	assert.Equal(t, -1, run("b"))
	assert.Equal(t, -1, run("c"))
}

func TestEitherPipeline(t *testing.T) {
	t.Parallel()

	classify := func(n int) either.Either[string, int] {
		if n < 0 {
			return either.Left[string, int]("negative")
		}
		return either.Right[string](n)
	}

	describe := pipe.Compose(
		either.FlatMapRightWith(func(n int) either.Either[string, int] { return classify(n - 5) }),
		either.MatchWith(either.FinallyHandlers[string, int, string]{
			OnLeft:  func(s string) string { return "left:" + s },
			OnRight: func(n int) string { return fmt.Sprintf("right:%d", n) },
		}),
	)

	assert.Equal(t, "right:5", describe(classify(10)))
	assert.Equal(t, "left:negative", describe(classify(3)))
	assert.Equal(t, "left:negative", describe(classify(-1)))
}

func TestDynamicInPipe(t *testing.T) {
	t.Parallel()

	sum := dual.Dynamic(2, func(args ...any) any {
		return args[0].(int) + args[1].(int)
	})

	out := pipe.Pipe(any(1), func(v any) any {
		return sum(2).(dual.Continuation)(v)
	})

	assert.Equal(t, 3, out)
}

func TestBridgesInPipe(t *testing.T) {
	t.Parallel()

	out := pipe.Pipe3(
		option.Some(4),
		func(o option.Option[int]) result.Result[int, string] { return result.FromOption(o, "missing") },
		either.FromResult[int, string],
		either.RightToOption[string, int],
	)

	assert.Equal(t, option.Some(4), out)
}
