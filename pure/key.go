package pure

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ComparableOrStringer is an argument accepted by a Table: either a comparable
// value or a fmt.Stringer.
type ComparableOrStringer any

// ComparableOrString is the key a Table stores for one argument position.
type ComparableOrString any

var ErrUnhashableArgument = errors.New("argument is neither comparable nor a fmt.Stringer")

// stringerKey keeps the dynamic type next to the rendered value so that
// a Stringer never collides with a plain string of the same text.
type stringerKey struct {
	typ reflect.Type
	str string
}

// nanKey stands in for a NaN, which is never equal to itself.
type nanKey struct {
	typ reflect.Type
}

// tableKey keys comparable values by themselves and falls back to String()
// only for values that cannot be compared.
func tableKey(i ComparableOrStringer) ComparableOrString {
	if i == nil {
		return nil
	}
	v := reflect.ValueOf(i)
	if k := v.Kind(); (k == reflect.Float32 || k == reflect.Float64) && math.IsNaN(v.Float()) {
		return nanKey{typ: v.Type()}
	}
	if v.Comparable() {
		return i
	}
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringerKey{typ: v.Type(), str: stringer.String()}
	}
	panic(fmt.Errorf("%w: %T", ErrUnhashableArgument, i))
}

func tableKeys(args []ComparableOrStringer) []ComparableOrString {
	if len(args) == 0 {
		panic("tableKeys: empty argument tuple")
	}
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}
