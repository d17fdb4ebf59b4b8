package pure_test

import (
	"fmt"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/on-the-ground/effect_ive_fn/pure"

	"github.com/rickb777/date/v2/timespan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func testLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

func newTable[O any](arity int) *pure.Table[O] {
	return pure.NewTable[O](pure.NewTableConfig(arity, testLogger()))
}

// counters drops the evaluation span, which depends on the clock.
func counters(s pure.Stats) pure.Stats {
	s.Slowest = timespan.TimeSpan{}
	return s
}

func TestTable_BasicUsage(t *testing.T) {
	table := newTable[string](3)

	count := 0
	eval := func() string {
		count++
		return "final"
	}

	assert.Equal(t, "final", table.Apply(eval, "a", "b", "c"))
	assert.Equal(t, "final", table.Apply(eval, "a", "b", "c")) // cached
	assert.Equal(t, 1, count)

	val, ok := table.Load("a", "b", "c")
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = table.Load("a", "b", "x")
	assert.False(t, ok)
	_, ok = table.Load("x", "b", "c")
	assert.False(t, ok)

	// a present entry is never replaced
	assert.Equal(t, "final", table.Apply(func() string { return "updated" }, "a", "b", "c"))

	assert.Equal(t, pure.Stats{Entries: 1, Hits: 2, Misses: 1}, counters(table.Stats()))
}

func TestTable_DistinctTuples(t *testing.T) {
	table := newTable[int](2)
	count := 0
	add := func(a, b int) int {
		return table.Apply(func() int {
			count++
			return a + b
		}, a, b)
	}

	assert.Equal(t, 5, add(2, 3))
	assert.Equal(t, 5, add(3, 2))
	assert.Equal(t, 5, add(2, 3))
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, table.Len())
}

func TestTable_NilArgumentsAndNilResult(t *testing.T) {
	table := newTable[*int](2)
	count := 0
	eval := func() *int {
		count++
		return nil
	}

	var nilPtr *int
	assert.Nil(t, table.Apply(eval, nil, nilPtr))
	assert.Nil(t, table.Apply(eval, nil, nilPtr))
	assert.Equal(t, 1, count)

	// a typed nil pointer is a different key than an untyped nil
	assert.Nil(t, table.Apply(eval, nilPtr, nil))
	assert.Equal(t, 2, count)
}

type NonComparable struct {
	Field []int // slices are not comparable
}

func (n NonComparable) String() string {
	return fmt.Sprintf("NonComparable%v", n.Field)
}

func TestTable_WithStringerFallback(t *testing.T) {
	table := newTable[int](1)
	count := 0
	fn := func(n NonComparable) int {
		return table.Apply(func() int {
			count++
			return len(n.Field)
		}, n)
	}

	assert.Equal(t, 3, fn(NonComparable{Field: []int{1, 2, 3}}))
	assert.Equal(t, 3, fn(NonComparable{Field: []int{1, 2, 3}}))
	assert.Equal(t, 1, count)

	// same text, different type
	table.Apply(func() int { count++; return 0 }, "NonComparable[1 2 3]")
	assert.Equal(t, 2, count)
}

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.0fC", float64(c)) }

func TestTable_ComparableStringerKeyedByValue(t *testing.T) {
	table := newTable[float64](2)
	add := func(a, b celsius) float64 {
		return table.Apply(func() float64 { return float64(a + b) }, a, b)
	}

	assert.InDelta(t, 20.2, add(10.1, 10.1), 1e-9)
	assert.InDelta(t, 20.8, add(10.4, 10.4), 1e-9)
	assert.Equal(t, 2, table.Len())
}

type point struct{ x int }

func (p *point) String() string { return "point" }

func TestTable_DistinctPointersWithSameText(t *testing.T) {
	table := newTable[int](1)
	a, b := &point{x: 1}, &point{x: 2}
	get := func(p *point) int {
		return table.Apply(func() int { return p.x }, p)
	}

	assert.Equal(t, 1, get(a))
	assert.Equal(t, 2, get(b))
	assert.Equal(t, 1, get(a))
}

func TestTable_NaNArgumentsShareOneEntry(t *testing.T) {
	table := newTable[int](2)
	count := 0
	eval := func() int {
		count++
		return count
	}

	assert.Equal(t, 1, table.Apply(eval, math.NaN(), 1))
	assert.Equal(t, 1, table.Apply(eval, math.NaN(), 1))
	assert.Equal(t, 1, table.Len())

	// float32 NaN is a different key
	assert.Equal(t, 2, table.Apply(eval, float32(math.NaN()), 1))
	assert.Equal(t, 2, table.Len())
}

func TestTable_SlowestEvaluationSpan(t *testing.T) {
	table := newTable[string](1)
	assert.Zero(t, table.Stats().Slowest.Duration())

	table.Apply(func() string { return "fast" }, "fast")
	table.Apply(func() string {
		time.Sleep(20 * time.Millisecond)
		return "slow"
	}, "slow")
	table.Apply(func() string { return "fast again" }, "fast again")

	slowest := table.Stats().Slowest
	assert.GreaterOrEqual(t, slowest.Duration(), 20*time.Millisecond)
	assert.False(t, slowest.Start().IsZero())
}

type TotallyInvalid struct {
	Field []int
}

func TestTable_PanicIfNoComparableOrStringer(t *testing.T) {
	table := newTable[int](1)
	evaluated := false

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic due to missing Stringer and non-comparable type")
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, pure.ErrUnhashableArgument)
		assert.False(t, evaluated)
	}()

	table.Apply(func() int {
		evaluated = true
		return 0
	}, TotallyInvalid{Field: []int{1}})
}

func TestTable_WrongArgumentCountPanics(t *testing.T) {
	table := newTable[int](2)
	assert.Panics(t, func() {
		table.Apply(func() int { return 0 }, 1)
	})
}

func TestTable_FailureIsNotCached(t *testing.T) {
	table := newTable[int](1)
	calls := 0
	eval := func() int {
		calls++
		if calls == 1 {
			panic("transient")
		}
		return 42
	}

	assert.PanicsWithValue(t, "transient", func() {
		table.Apply(eval, "k")
	})
	_, ok := table.Load("k")
	assert.False(t, ok)

	assert.Equal(t, 42, table.Apply(eval, "k"))
	assert.Equal(t, 42, table.Apply(eval, "k"))
	assert.Equal(t, 2, calls)
	assert.Equal(t, pure.Stats{Entries: 1, Hits: 1, Misses: 2, Failures: 1}, counters(table.Stats()))
}

func TestTable_ConcurrentSameTupleEvaluatesOnce(t *testing.T) {
	table := newTable[int](2)
	var calls atomic.Int32
	release := make(chan struct{})

	eval := func() int {
		calls.Add(1)
		<-release
		return 99
	}

	const callers = 32
	results := make([]int, callers)
	started := sync.WaitGroup{}
	g := errgroup.Group{}
	for i := 0; i < callers; i++ {
		started.Add(1)
		g.Go(func() error {
			started.Done()
			results[i] = table.Apply(eval, "same", 1)
			return nil
		})
	}
	started.Wait()
	time.Sleep(10 * time.Millisecond)
	close(release)
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, 99, r)
	}
}

func TestTable_BlockedTupleDoesNotBlockOthers(t *testing.T) {
	table := newTable[string](1)
	release := make(chan struct{})
	slowStarted := make(chan struct{})

	done := make(chan string)
	go func() {
		done <- table.Apply(func() string {
			close(slowStarted)
			<-release
			return "slow"
		}, "slow")
	}()
	<-slowStarted

	fast := make(chan string)
	go func() {
		fast <- table.Apply(func() string { return "fast" }, "fast")
	}()

	select {
	case v := <-fast:
		assert.Equal(t, "fast", v)
	case <-time.After(time.Second):
		t.Fatal("evaluation of an unrelated tuple was blocked")
	}

	close(release)
	assert.Equal(t, "slow", <-done)
}

func TestTable_RecursionThroughDistinctTuples(t *testing.T) {
	table := newTable[int](1)
	var fib func(n int) int
	fib = func(n int) int {
		return table.Apply(func() int {
			if n <= 1 {
				return n
			}
			return fib(n-1) + fib(n-2)
		}, n)
	}

	assert.Equal(t, 6765, fib(20))
	assert.Equal(t, 21, table.Len())
	assert.Equal(t, uint64(21), table.Stats().Misses)
}

func TestTable_IDsAreUnique(t *testing.T) {
	a := newTable[int](1)
	b := newTable[int](1)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewTableConfig_Defaults(t *testing.T) {
	config := pure.NewTableConfig(0, nil)
	assert.Equal(t, 1, config.Arity)
	assert.NotNil(t, config.Logger)
}
