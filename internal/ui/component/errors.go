package component

import (
	"errors"
	"reflect"
)

var (
	// ErrIndexOutOfRange is returned by index-based accessors given a bad index.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNilItem is returned when a nil value is stored as an item.
	ErrNilItem = errors.New("cannot add nil elements to a ComboCheckList")
)

// isNil reports whether v is nil or a typed nil pointer, map, slice, func, chan or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
