package purefn_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/on-the-ground/effect_ive_fn/purefn"
	"github.com/on-the-ground/effect_ive_fn/shared/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunction1_Views(t *testing.T) {
	f := purefn.Of1(strings.ToUpper)
	assert.Equal(t, 1, f.Arity())
	assert.Equal(t, "ABC", f.Apply("abc"))
	assert.Equal(t, "ABC", f.Curried().Apply("abc"))
	assert.Equal(t, "ABC", f.Reversed().Apply("abc"))
}

func TestFunction1_MemoizedViewsStayMemoized(t *testing.T) {
	memo := purefn.Of1(strings.ToUpper).Memoized()
	assert.True(t, memo.IsMemoized())
	assert.True(t, memo.Curried() == memo)
	assert.True(t, memo.Reversed() == memo)
	assert.True(t, memo.Memoized() == memo)
}

func TestFunction1_Constant(t *testing.T) {
	f := purefn.Constant1[string]("x")
	assert.Equal(t, "x", f.Apply("anything"))
}

func TestFunction1_Fibonacci(t *testing.T) {
	count := 0
	var fib purefn.Function1[int, int]
	fib = purefn.Func1[int, int](func(n int) int {
		count++
		if n <= 1 {
			return n
		}
		return fib.Apply(n-1) + fib.Apply(n-2)
	}).Memoized()

	assert.Equal(t, 6765, fib.Apply(20))
	assert.Equal(t, 21, count)
	assert.Equal(t, 832040, fib.Apply(30))
	assert.Equal(t, 31, count)

	stats, ok := purefn.MemoStats(fib)
	require.True(t, ok)
	assert.Equal(t, 31, stats.Entries)
	assert.Equal(t, uint64(31), stats.Misses)
}

func TestFunction1_ComposeAndThen(t *testing.T) {
	atoi := purefn.Of1(func(s string) int {
		n, err := strconv.Atoi(s)
		if err != nil {
			panic(err)
		}
		return n
	})
	double := purefn.Of1(func(n int) int { return 2 * n })

	assert.Equal(t, 84, purefn.AndThen1(atoi, double).Apply("42"))
	assert.Equal(t, 84, purefn.Compose1At1(double, atoi).Apply("42"))

	lifted := purefn.LiftTry1(atoi)
	_, err := lifted.Apply("forty-two").Unpack()
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	n, err := lifted.Apply("42").Unpack()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	assert.True(t, purefn.Lift1(atoi).Apply("x").IsNone())
	assert.Equal(t, 7, purefn.Lift1(atoi).Apply("7").UnwrapOr(-1))
}

func TestFunction1_LiftTryWrapsNonErrorPanics(t *testing.T) {
	f := purefn.Of1(func(s string) string { panic("no " + s) })
	_, err := purefn.LiftTry1(f).Apply("way").Unpack()
	assert.ErrorIs(t, err, helper.ErrPanicked)
	assert.Contains(t, err.Error(), "no way")
}

func TestFunction1_Narrow(t *testing.T) {
	wide := purefn.Of1(func(v any) string { return strconv.Quote(v.(string)) })
	narrow := purefn.Narrow1[string, any](wide)
	assert.Equal(t, `"x"`, narrow.Apply("x"))
}
