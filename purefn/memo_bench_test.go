package purefn_test

import (
	"testing"

	"github.com/on-the-ground/effect_ive_fn/purefn"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var fib purefn.Function1[int, int]
	fib = purefn.Func1[int, int](func(n int) int {
		if n <= 1 {
			return n
		}
		return fib.Apply(n-1) + fib.Apply(n-2)
	}).Memoized()

	for i := 0; i < b.N; i++ {
		_ = fib.Apply(20)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func memoizedLevenshtein() purefn.Function2[string, string, int] {
	var lev purefn.Function2[string, string, int]
	lev = purefn.Func2[string, string, int](func(a, b string) int {
		if len(a) == 0 {
			return len(b)
		}
		if len(b) == 0 {
			return len(a)
		}
		if a[0] == b[0] {
			return lev.Apply(a[1:], b[1:])
		}
		return 1 + min(
			lev.Apply(a[1:], b),
			lev.Apply(a, b[1:]),
			lev.Apply(a[1:], b[1:]),
		)
	}).Memoized()
	return lev
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	b.Run("Warm", func(b *testing.B) {
		lev := memoizedLevenshtein()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = lev.Apply("kitten", "sitting")
		}
	})
	b.Run("Cold", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = memoizedLevenshtein().Apply("kitten", "sitting")
		}
	})
}

type Point struct {
	X, Y float64
}

func naiveDist(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}

func BenchmarkNaiveDist(b *testing.B) {
	p1 := Point{1.5, 2.5}
	p2 := Point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = naiveDist(p1, p2)
	}
}

func BenchmarkMemoizedDist(b *testing.B) {
	dist := purefn.Of2(naiveDist).Memoized()

	p1 := Point{1.5, 2.5}
	p2 := Point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = dist.Apply(p1, p2)
	}
}

func BenchmarkMemoizedDistParallel(b *testing.B) {
	dist := purefn.Of2(naiveDist).Memoized()

	b.RunParallel(func(pb *testing.PB) {
		p1 := Point{1.5, 2.5}
		p2 := Point{3.0, 4.0}
		for pb.Next() {
			_ = dist.Apply(p1, p2)
		}
	})
}
