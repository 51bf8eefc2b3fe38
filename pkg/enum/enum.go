package enum

import (
	"fmt"
	"reflect"
)

var enumManager = map[reflect.Type]any{}

type enum[T comparable] struct {
	toEnum   map[string]T
	toString map[T]string
	values   []T
}

// New registers value under name and returns value, so it can be used to
// declare the members of an enum type:
//
//	var MediaTypeImage = enum.New(MediaType("image"), "image")
func New[T comparable](value T, name string) T {
	t := reflect.TypeOf(value)
	if _, ok := enumManager[t]; !ok {
		enumManager[t] = &enum[T]{toEnum: map[string]T{}, toString: map[T]string{}}
	}

	e := enumManager[t].(*enum[T])
	if _, ok := e.toString[value]; !ok {
		e.values = append(e.values, value)
	}
	e.toEnum[name] = value
	e.toString[value] = name
	return value
}

// ToEnum returns the member of T registered under name s.
func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(*enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// ToString returns the registered name of value, or an empty string if value
// is not a member of its enum.
func ToString[T comparable](value T) string {
	e, ok := enumManager[reflect.TypeOf(value)]
	if !ok {
		return ""
	}

	return e.(*enum[T]).toString[value]
}

// Values returns the members of T in registration order.
func Values[T comparable]() []T {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)]
	if !ok {
		return nil
	}

	values := e.(*enum[T]).values
	return append([]T(nil), values...)
}
