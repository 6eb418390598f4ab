package list

import (
	"errors"
	"reflect"
)

var (
	// ErrInvalidArgument is returned when an absent (nil) value is stored or a nil comparator is given.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyList is returned when removing or peeking from an empty list.
	ErrEmptyList = errors.New("list is empty")
	// ErrIndexOutOfRange is returned on positional access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrIteratorExhausted is returned when a cursor is advanced past a list boundary.
	ErrIteratorExhausted = errors.New("iterator exhausted")
	// ErrStaleCursor is returned when a cursor is advanced after its list was structurally modified.
	ErrStaleCursor = errors.New("cursor invalidated by list modification")
)

// isAbsent reports whether `v` is a nil value; nil pointers, interfaces, maps, channels and funcs can't be stored.
func isAbsent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() { // A nil interface.
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice,
		reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
