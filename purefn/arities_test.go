package purefn_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/effect_ive_fn/purefn"

	"github.com/stretchr/testify/assert"
)

var upper = purefn.Of1(strings.ToUpper)

func TestFunction3(t *testing.T) {
	f := purefn.Of3(func(a, b, c string) string { return a + b + c })
	assert.Equal(t, 3, f.Arity())
	assert.Equal(t, "abc", f.Partial1("a").Apply("b", "c"))
	assert.Equal(t, "abc", f.Partial2("a", "b").Apply("c"))
	assert.Equal(t, "abc", f.Curried().Apply("a").Apply("b").Apply("c"))
	assert.Equal(t, "abc", f.Tupled().Apply(purefn.NewTuple3("a", "b", "c")))
	assert.Equal(t, "abc", f.Reversed().Apply("c", "b", "a"))
	assert.Equal(t, "aBc", purefn.Compose3At2(f, upper).Apply("a", "b", "c"))
	assert.Equal(t, "ABC", purefn.AndThen3(f, upper).Apply("a", "b", "c"))

	memo := f.Memoized()
	assert.True(t, memo.IsMemoized())
	assert.Equal(t, "abc", memo.Apply("a", "b", "c"))
	assert.True(t, memo.Memoized() == memo)
}

func TestFunction4(t *testing.T) {
	f := purefn.Of4(func(a, b, c, d int) int { return a*1000 + b*100 + c*10 + d })
	assert.Equal(t, 4, f.Arity())
	assert.Equal(t, 1234, f.Partial3(1, 2, 3).Apply(4))
	assert.Equal(t, 1234, f.Curried().Apply(1).Apply(2).Apply(3).Apply(4))
	assert.Equal(t, 1234, f.Tupled().Apply(purefn.NewTuple4(1, 2, 3, 4)))
	assert.Equal(t, 1234, f.Reversed().Apply(4, 3, 2, 1))
	assert.Equal(t, 1234, purefn.Constant4[int, int, int, int](1234).Apply(0, 0, 0, 0))

	calls := 0
	counted := purefn.Of4(func(a, b, c, d int) int {
		calls++
		return f.Apply(a, b, c, d)
	}).Memoized()
	counted.Apply(1, 2, 3, 4)
	counted.Partial2(1, 2).Apply(3, 4)
	assert.Equal(t, 1, calls)
}

func TestFunction5(t *testing.T) {
	f := purefn.Of5(func(a, b, c, d, e string) string { return strings.Join([]string{a, b, c, d, e}, "") })
	assert.Equal(t, 5, f.Arity())
	assert.Equal(t, "abcde", f.Partial4("a", "b", "c", "d").Apply("e"))
	assert.Equal(t, "abcde", f.Curried().Apply("a").Apply("b").Apply("c").Apply("d").Apply("e"))
	assert.Equal(t, "abcde", f.Tupled().Apply(purefn.NewTuple5("a", "b", "c", "d", "e")))
	assert.Equal(t, "abcde", f.Reversed().Apply("e", "d", "c", "b", "a"))
	assert.Equal(t, "abcdE", purefn.Compose5At5(f, upper).Apply("a", "b", "c", "d", "e"))
	assert.True(t, purefn.Lift5(f).Apply("a", "b", "c", "d", "e").IsSome())
}

func TestFunction6(t *testing.T) {
	f := purefn.Of6(func(a, b, c, d, e, g int) int { return a - b + c - d + e - g })
	assert.Equal(t, 6, f.Arity())
	assert.Equal(t, -3, f.Apply(1, 2, 3, 4, 5, 6))
	assert.Equal(t, -3, f.Partial5(1, 2, 3, 4, 5).Apply(6))
	assert.Equal(t, -3, f.Curried().Apply(1).Apply(2).Apply(3).Apply(4).Apply(5).Apply(6))
	assert.Equal(t, -3, f.Tupled().Apply(purefn.NewTuple6(1, 2, 3, 4, 5, 6)))
	assert.Equal(t, -3, f.Reversed().Apply(6, 5, 4, 3, 2, 1))
	assert.Equal(t, 3, f.Reversed().Apply(1, 2, 3, 4, 5, 6))
}

func TestFunction7(t *testing.T) {
	f := purefn.Of7(func(a, b, c, d, e, g, h int) int { return a + b + c + d + e + g + h })
	assert.Equal(t, 7, f.Arity())
	assert.Equal(t, 28, f.Partial6(1, 2, 3, 4, 5, 6).Apply(7))
	assert.Equal(t, 28, f.Curried().Apply(1).Apply(2).Apply(3).Apply(4).Apply(5).Apply(6).Apply(7))
	assert.Equal(t, 28, f.Tupled().Apply(purefn.NewTuple7(1, 2, 3, 4, 5, 6, 7)))
	assert.Equal(t, 28, f.Reversed().Apply(7, 6, 5, 4, 3, 2, 1))

	res := purefn.LiftTry7(purefn.Of7(func(a, b, c, d, e, g, h int) int { return a / b })).Apply(1, 0, 0, 0, 0, 0, 0)
	assert.True(t, res.IsErr())
}
