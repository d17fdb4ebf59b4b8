package purefn

import (
	"sync/atomic"

	"github.com/on-the-ground/effect_ive_fn/pure"
	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// SetLogger sets the logger handed to memo tables created by later Memoized calls.
// A nil logger restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

func tableConfig(arity int) pure.TableConfig {
	return pure.NewTableConfig(arity, logger.Load())
}

// MemoStats returns the memo table counters of a function produced by Memoized.
// It reports false for any other function.
func MemoStats(f any) (pure.Stats, bool) {
	if m, ok := f.(interface{ Stats() pure.Stats }); ok {
		return m.Stats(), true
	}
	return pure.Stats{}, false
}
