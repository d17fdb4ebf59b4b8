package pure

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Table is a lazily populated memo of a pure function, keyed by argument tuple.
//
// Each argument position is one level of a trie of sync.Maps, so lookups of
// unrelated tuples never contend on a shared lock. The leaf for a tuple is an
// entry that moves from absent to present exactly once:
//
//	Absent -> Computing -> Present(value)
//
// Present is terminal. A panic while computing leaves the entry absent, so the
// next call for the same tuple evaluates again.
//
// A NaN argument is keyed as one value per float type. A NaN nested inside a
// struct or array key still never equals itself, so such tuples are evaluated
// on every call. Re-entering the tuple under evaluation blocks forever.
type Table[O any] struct {
	id     string
	arity  int
	root   *sync.Map
	logger *zap.Logger

	entries  atomic.Int64
	hits     atomic.Uint64
	misses   atomic.Uint64
	failures atomic.Uint64
	slowest  atomic.Pointer[timespan.TimeSpan]
}

type entry[O any] struct {
	mu      sync.Mutex
	present atomic.Bool
	value   O
}

func (e *entry[O]) load() (O, bool) {
	if e.present.Load() {
		return e.value, true
	}
	var zero O
	return zero, false
}

// store must be called with e.mu held.
func (e *entry[O]) store(v O) {
	e.value = v
	e.present.Store(true)
}

func NewTable[O any](config TableConfig) *Table[O] {
	config = NewTableConfig(config.Arity, config.Logger)
	t := &Table[O]{
		id:     uuid.New().String(),
		arity:  config.Arity,
		root:   &sync.Map{},
		logger: config.Logger,
	}
	t.logger.Debug("created memo table",
		zap.String("table_id", t.id),
		zap.Int("arity", t.arity),
	)
	return t
}

// ID identifies the table in log output.
func (t *Table[O]) ID() string {
	return t.id
}

// Apply returns the value memoized for args, evaluating eval on the first call
// for that tuple. Concurrent callers of the same tuple wait for the single
// evaluation in flight; callers of other tuples proceed independently.
func (t *Table[O]) Apply(eval func() O, args ...ComparableOrStringer) O {
	e := t.leaf(t.keysOf(args))
	if v, ok := e.load(); ok {
		t.hits.Add(1)
		return v
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// another caller may have finished while we waited for the lock
	if v, ok := e.load(); ok {
		t.hits.Add(1)
		return v
	}

	t.misses.Add(1)
	v := t.evaluate(eval)
	e.store(v)
	t.entries.Add(1)
	return v
}

// Load returns the memoized value for args without evaluating anything.
func (t *Table[O]) Load(args ...ComparableOrStringer) (O, bool) {
	m, k := t.traverse(t.keysOf(args), false)
	if m == nil {
		var zero O
		return zero, false
	}
	raw, ok := m.Load(k)
	if !ok {
		var zero O
		return zero, false
	}
	return raw.(*entry[O]).load()
}

// Len is the number of present entries.
func (t *Table[O]) Len() int {
	return int(t.entries.Load())
}

func (t *Table[O]) Stats() Stats {
	return Stats{
		Entries:  t.Len(),
		Hits:     t.hits.Load(),
		Misses:   t.misses.Load(),
		Failures: t.failures.Load(),
		Slowest:  t.slowestSpan(),
	}
}

func (t *Table[O]) slowestSpan() timespan.TimeSpan {
	if span := t.slowest.Load(); span != nil {
		return *span
	}
	return timespan.TimeSpan{}
}

// recordSpan keeps the longest evaluation seen so far.
func (t *Table[O]) recordSpan(span timespan.TimeSpan) {
	for {
		current := t.slowest.Load()
		if current != nil && current.Duration() >= span.Duration() {
			return
		}
		if t.slowest.CompareAndSwap(current, &span) {
			return
		}
	}
}

func (t *Table[O]) keysOf(args []ComparableOrStringer) []ComparableOrString {
	if len(args) != t.arity {
		panic(fmt.Sprintf("memo table %s: expected %d arguments, got %d", t.id, t.arity, len(args)))
	}
	return tableKeys(args)
}

func (t *Table[O]) leaf(keys []ComparableOrString) *entry[O] {
	m, k := t.traverse(keys, true)
	raw, ok := m.Load(k)
	if !ok {
		raw, _ = m.LoadOrStore(k, &entry[O]{})
	}
	return raw.(*entry[O])
}

// traverse walks every level but the last and returns the map holding the
// leaf together with the leaf key. Missing levels are created when create is
// set; otherwise a missing level yields a nil map.
func (t *Table[O]) traverse(keys []ComparableOrString, create bool) (*sync.Map, ComparableOrString) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	targetMap := t.root
	for _, k := range keys[:length-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			if !create {
				return nil, nil
			}
			v, _ = targetMap.LoadOrStore(k, &sync.Map{})
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

func (t *Table[O]) evaluate(eval func() O) O {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			t.failures.Add(1)
			t.logger.Warn("evaluation panicked, entry left absent",
				zap.String("table_id", t.id),
				zap.Any("panic", r),
			)
			panic(r)
		}
	}()

	v := eval()

	span := timespan.BetweenTimes(start, time.Now())
	t.recordSpan(span)
	t.logger.Debug("evaluated memo entry",
		zap.String("table_id", t.id),
		zap.Stringer("span", span),
		zap.Duration("elapsed", span.Duration()),
	)
	return v
}
