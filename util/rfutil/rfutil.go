// Small reflect helpers shared by the util packages.
package rfutil

import "reflect"

// Check if v is nil, including typed nil pointers, maps, slices, funcs and interfaces.
func IsAnyNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Check if v is the zero value of its type.
func IsZeroVal(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}
