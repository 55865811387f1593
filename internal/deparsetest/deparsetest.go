// Package deparsetest holds assertions shared by the entity tests.
package deparsetest

import (
	"context"
	"reflect"
	"testing"

	"github.com/lestrrat-go/gdtf/deparse"
	"github.com/stretchr/testify/require"
)

// Parse decodes the first T element of doc, failing the test on error.
func Parse[T any, PT deparse.EntityPtr[T]](t testing.TB, doc string, options ...deparse.Option) T {
	t.Helper()
	v, err := deparse.Unmarshal[T, PT](context.Background(), []byte(doc), options...)
	require.NoError(t, err, "parsing should succeed: %s", doc)
	return v
}

// ParseError decodes doc and returns the error, failing the test if
// there is none.
func ParseError[T any, PT deparse.EntityPtr[T]](t testing.TB, doc string, options ...deparse.Option) error {
	t.Helper()
	_, err := deparse.Unmarshal[T, PT](context.Background(), []byte(doc), options...)
	require.Error(t, err, "parsing should fail: %s", doc)
	return err
}

// AssertParse checks that doc decodes to expected, tolerating absent
// values on both sides.
func AssertParse[T any, PT deparse.EntityPtr[T]](t testing.TB, expected T, doc string, options ...deparse.Option) {
	t.Helper()
	actual := Parse[T, PT](t, doc, options...)
	if !EqualAllowEmpty(expected, actual, true) {
		require.Equal(t, expected, actual, "decoded value should match: %s", doc)
	}
}

// AssertRoundTrip decodes doc, writes the result back out and decodes
// that again. Both values must be equal, and decoding doc a second time
// must give the same value as the first time.
func AssertRoundTrip[T any, PT deparse.MarshalPtr[T]](t testing.TB, doc string, options ...deparse.Option) T {
	t.Helper()
	first := Parse[T, PT](t, doc, options...)
	second := Parse[T, PT](t, doc, options...)
	require.Equal(t, first, second, "decoding the same document twice should give equal values")

	out, err := deparse.Marshal(PT(&first))
	require.NoError(t, err, "marshaling should succeed")

	again := Parse[T, PT](t, string(out), options...)
	require.Equal(t, first, again, "round trip should preserve the value, wrote: %s", out)
	return first
}

var boolType = reflect.TypeOf(true)

// EqualAllowEmpty compares a and b structurally. Values that provide
// their own EqualAllowEmpty(T, bool) bool method are compared with it.
// Nil pointers, slices and maps only compare equal to each other, or
// to empty slices and maps, when allowEmpty is set.
func EqualAllowEmpty(a, b any, allowEmpty bool) bool {
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b), allowEmpty)
}

func customEqual(a, b reflect.Value, allowEmpty bool) (bool, bool) {
	if !a.CanInterface() {
		return false, false
	}
	m := a.MethodByName("EqualAllowEmpty")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 2 || mt.In(0) != a.Type() || mt.In(1) != boolType || mt.NumOut() != 1 || mt.Out(0) != boolType {
		return false, false
	}
	return m.Call([]reflect.Value{b, reflect.ValueOf(allowEmpty)})[0].Bool(), true
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func equalValue(a, b reflect.Value, allowEmpty bool) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	if eq, ok := customEqual(a, b, allowEmpty); ok {
		return eq
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil() && allowEmpty
		}
		return equalValue(a.Elem(), b.Elem(), allowEmpty)
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return allowEmpty && isEmpty(a) && isEmpty(b)
		}
		fallthrough
	case reflect.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := range a.Len() {
			if !equalValue(a.Index(i), b.Index(i), allowEmpty) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() || b.IsNil() {
			return allowEmpty && isEmpty(a) && isEmpty(b)
		}
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !equalValue(iter.Value(), bv, allowEmpty) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range a.NumField() {
			if !equalValue(a.Field(i), b.Field(i), allowEmpty) {
				return false
			}
		}
		return true
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() == b.Float()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.String:
		return a.String() == b.String()
	}
	return false
}
