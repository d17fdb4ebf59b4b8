package helper

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedType = errors.New("unexpected type")
	ErrPanicked       = errors.New("evaluation panicked")
)

// Cast safely asserts v to the expected type T.
// A nil v yields the zero value of T.
// Returns an error if type assertion fails.
func Cast[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}

	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T is not %T", ErrUnexpectedType, v, zero)
	}

	return val, nil
}

// MustCast is the panic-on-failure variant of Cast.
// Use when failure means a caller picked incompatible types.
func MustCast[T any](v any) T {
	res, err := Cast[T](v)
	if err != nil {
		panic(err)
	}
	return res
}

// Try runs eval and converts a panic into an error.
// The panic value is kept as-is when it already is an error.
func Try[T any](eval func() T) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			res, err = zero, AsError(r)
		}
	}()
	return eval(), nil
}

// AsError turns a recovered panic value into an error.
func AsError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPanicked, r)
}
