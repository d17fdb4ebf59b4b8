package purefn_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/effect_ive_fn/pure"
	"github.com/on-the-ground/effect_ive_fn/purefn"
	"github.com/on-the-ground/effect_ive_fn/shared/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFunction2_PartialCurryTupleReverse(t *testing.T) {
	sub := purefn.Of2(func(a, b int) int { return a - b })
	assert.Equal(t, 2, sub.Arity())
	assert.Equal(t, 7, sub.Partial1(10).Apply(3))
	assert.Equal(t, 7, sub.Curried().Apply(10).Apply(3))
	assert.Equal(t, 7, sub.Tupled().Apply(purefn.NewTuple2(10, 3)))
	assert.Equal(t, 7, sub.Reversed().Apply(3, 10))
}

func TestFunction2_ConcurrentCallersShareOneEvaluation(t *testing.T) {
	var calls atomic.Int32
	pow := purefn.Of2(func(base, exp int) int {
		calls.Add(1)
		res := 1
		for i := 0; i < exp; i++ {
			res *= base
		}
		return res
	}).Memoized()

	g := errgroup.Group{}
	for i := 0; i < 64; i++ {
		exp := i % 4
		g.Go(func() error {
			want := []int{1, 3, 9, 27}[exp]
			if got := pow.Apply(3, exp); got != want {
				return fmt.Errorf("pow(3, %d) = %d, want %d", exp, got, want)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(4), calls.Load())

	stats, ok := purefn.MemoStats(pow)
	require.True(t, ok)
	assert.Equal(t, 4, stats.Entries)
	assert.Equal(t, uint64(64), stats.Hits+stats.Misses)
}

func TestFunction2_MemoizedNonDeterministicFunctionFreezesFirstAnswer(t *testing.T) {
	var tick atomic.Int64
	now := purefn.Of2(func(string, string) int64 { return tick.Add(1) }).Memoized()

	first := now.Apply("a", "b")
	assert.Equal(t, first, now.Apply("a", "b"))
	assert.NotEqual(t, first, now.Apply("b", "a"))
}

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.0fC", float64(c)) }

func TestFunction2_MemoizedKeysComparableStringersByValue(t *testing.T) {
	add := purefn.Of2(func(a, b celsius) float64 { return float64(a + b) }).Memoized()

	assert.InDelta(t, 20.2, add.Apply(10.1, 10.1), 1e-9)
	assert.InDelta(t, 20.8, add.Apply(10.4, 10.4), 1e-9)
	assert.InDelta(t, 20.2, add.Apply(10.1, 10.1), 1e-9)

	stats, ok := purefn.MemoStats(add)
	require.True(t, ok)
	assert.Equal(t, 2, stats.Entries)
}

type tags []string

func (ts tags) String() string { return fmt.Sprint([]string(ts)) }

func TestFunction2_StringerArguments(t *testing.T) {
	count := 0
	size := purefn.Of2(func(ts tags, extra int) int {
		count++
		return len(ts) + extra
	}).Memoized()

	assert.Equal(t, 3, size.Apply(tags{"a", "b"}, 1))
	assert.Equal(t, 3, size.Apply(tags{"a", "b"}, 1))
	assert.Equal(t, 1, count)
}

func TestFunction2_UnhashableArgumentPanics(t *testing.T) {
	sum := purefn.Of2(func(xs []int, x int) int { return len(xs) + x }).Memoized()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, pure.ErrUnhashableArgument)
	}()
	sum.Apply([]int{1}, 1)
}

func TestFunction2_NarrowToIncompatibleTypesPanics(t *testing.T) {
	wide := purefn.Of2(func(a, b string) string { return a + b })
	narrow := purefn.Narrow2[any, any, string](wide)

	assert.Equal(t, "ab", narrow.Apply("a", "b"))

	_, err := purefn.LiftTry2(narrow).Apply(1, 2).Unpack()
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
}
