package helper_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/on-the-ground/effect_ive_fn/shared/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCast(t *testing.T) {
	v, err := helper.Cast[fmt.Stringer](stringer("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", v.String())

	n, err := helper.Cast[int](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = helper.Cast[int]("not an int")
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)
}

func TestMustCastPanics(t *testing.T) {
	assert.Panics(t, func() {
		helper.MustCast[string](42)
	})
	assert.Equal(t, 42, helper.MustCast[int](42))
}

func TestTry(t *testing.T) {
	v, err := helper.Try(func() int { return 7 })
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	zero := 0
	_, err = helper.Try(func() int { return 10 / zero })
	require.Error(t, err)
	var rtErr runtime.Error
	assert.True(t, errors.As(err, &rtErr))
	assert.Contains(t, err.Error(), "integer divide by zero")

	_, err = helper.Try(func() string { panic("boom") })
	assert.ErrorIs(t, err, helper.ErrPanicked)
	assert.Contains(t, err.Error(), "boom")
}

func TestAsErrorKeepsErrors(t *testing.T) {
	sentinel := errors.New("sentinel")
	assert.Same(t, sentinel, helper.AsError(sentinel))
}

type stringer string

func (s stringer) String() string { return string(s) }
