package helper

import (
	"fmt"
)

// TypedOf asserts the result of a getter function to the expected type T.
// Returns an error if the getter fails or the assertion does not hold.
func TypedOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// TypedOf2 is the comma-ok variant of TypedOf.
// ok is false when the getter finds nothing or the value is not a T.
func TypedOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustTyped is the panic-on-failure variant of TypedOf.
// Use when a mismatch can only be a programming error.
func MustTyped[T any](getFn func() (any, error)) T {
	res, err := TypedOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}
