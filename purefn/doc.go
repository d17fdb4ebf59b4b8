// Package purefn provides fixed-arity pure function types for Go.
//
// A FunctionN is a capability: given N inputs it produces one output, with no
// state beyond what its closure captures. Any func value, method value or other
// combinator adapts to it through FuncN or OfN, and every implementation can be
//
//	→ curried into a chain of unary functions,
//	→ tupled into a unary function over one TupleN,
//	→ reversed, partially applied, pre- and post-composed,
//	→ memoized.
//
// Memoized is the interesting one. It asks the developer:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// A memoized function evaluates each distinct argument tuple at most once for its
// lifetime and returns the first computed value forever after, even when the
// wrapped function is not deterministic. Memoizing a memoized function returns it
// unchanged. Concurrent callers of a fresh tuple share one evaluation, callers of
// other tuples are never held back by it, and a panic during evaluation is
// propagated without being cached.
//
// Go methods cannot introduce type parameters, so the combinators that change a
// type (AndThenN, ComposeNAtK, LiftN, LiftTryN, NarrowN) are free functions.
//
// Example:
//
//	var fib purefn.Function1[int, int]
//	fib = purefn.Func1[int, int](func(n int) int {
//		if n <= 1 {
//			return n
//		}
//		return fib.Apply(n-1) + fib.Apply(n-2)
//	}).Memoized()
//
// The FunctionN family is generated; see cmd/fngen.
//
// WARNING: memoizing an impure function (time, I/O, randomness) freezes its first answer.
package purefn

//go:generate go run ../cmd/fngen --out .
