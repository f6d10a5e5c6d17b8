package erasure

import (
	"fmt"
	"io"
	"reflect"

	"go.uber.org/zap"
)

// Cloner is implemented by payloads that know how to deep-copy themselves.
type Cloner[T any] interface {
	Clone() T
}

// NoCopy marks a payload as move-only when embedded.
//
// Containers holding such a payload refuse to be copied. Lock and Unlock
// exist only so that go vet reports by-value copies of the payload.
type NoCopy struct{}

func (*NoCopy) Lock()     {}
func (*NoCopy) Unlock()   {}
func (*NoCopy) moveOnly() {}

type moveOnly interface {
	moveOnly()
}

// copierOf picks the copy operation for T from the method set of *T.
// An explicit Clone wins over the NoCopy marker.
func copierOf[T any]() func(obj any) (any, error) {
	switch any((*T)(nil)).(type) {
	case Cloner[T]:
		return func(obj any) (any, error) {
			cloned := any(obj.(*T)).(Cloner[T]).Clone()
			return &cloned, nil
		}
	case moveOnly:
		typ := reflect.TypeFor[T]()
		return func(any) (any, error) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedCopy, typ)
		}
	default:
		return func(obj any) (any, error) {
			dup := *obj.(*T)
			return &dup, nil
		}
	}
}

// freerOf picks the release operation for T. Payloads that are io.Closers
// get closed; everything else is left to the garbage collector.
func freerOf[T any]() func(obj any) {
	if _, ok := any((*T)(nil)).(io.Closer); !ok {
		return func(any) {}
	}
	typ := reflect.TypeFor[T]()
	return func(obj any) {
		if err := any(obj.(*T)).(io.Closer).Close(); err != nil {
			log().Warn("failed to close payload",
				zap.Stringer("payload", typ),
				zap.Error(err),
			)
		}
	}
}
