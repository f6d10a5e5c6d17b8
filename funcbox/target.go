package funcbox

import (
	"reflect"

	"github.com/on-the-ground/func_ive_go/funcbox/internal/erasure"
)

// Erased is implemented by every container type of this package.
type Erased interface {
	view() erasure.View
}

var (
	_ Erased = (*Func0[any])(nil)
	_ Erased = (*Func1[any, any])(nil)
	_ Erased = (*Func2[any, any, any])(nil)
	_ Erased = (*Func3[any, any, any, any])(nil)
)

// Target returns the stored payload if f holds exactly a T.
// It returns false for any other type and for an empty container.
//
// The returned pointer is owned by f and stays valid until f releases or
// hands over its payload.
func Target[T any](f Erased) (*T, bool) {
	return erasure.Target[T](f.view())
}

// TargetType returns the type of the stored payload, nil when f is empty.
func TargetType(f Erased) reflect.Type {
	return f.view().Held()
}
