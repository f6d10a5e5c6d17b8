package erasure

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/on-the-ground/func_ive_go/shared/helper"
	"go.uber.org/zap"
)

// Methods is the dispatch table for one payload type under one signature.
//
// F is the signature's invoke function type; its first parameter is the
// erased handle. Tables are immutable once built and live for the whole
// process, so a *Methods pointer doubles as the payload's type tag.
type Methods[F any] struct {
	Invoke F

	free func(obj any)
	copy func(obj any) (any, error)
	key  tableKey
	id   string
}

// ID returns the table id assigned when the table was built.
func (m *Methods[F]) ID() string {
	return m.id
}

// Payload returns the payload type served by the table, nil for the empty table.
func (m *Methods[F]) Payload() reflect.Type {
	return m.key.payload
}

// EmptyTable returns the empty table of signature F.
//
// invoke is installed only on first use; it must fail with ErrEmptyInvocation.
func EmptyTable[F any](invoke F) *Methods[F] {
	key := tableKey{sig: reflect.TypeFor[F]()}
	return tableFor(key, func() *Methods[F] {
		return &Methods[F]{
			Invoke: invoke,
			free:   func(any) {},
			copy:   func(any) (any, error) { return nil, nil },
		}
	})
}

// TableOf returns the table serving payload type T under signature F.
//
// invoke is installed only on first use; it must assert its handle to *T.
func TableOf[T, F any](invoke F) *Methods[F] {
	key := tableKey{payload: reflect.TypeFor[T](), sig: reflect.TypeFor[F]()}
	return tableFor(key, func() *Methods[F] {
		return &Methods[F]{
			Invoke: invoke,
			free:   freerOf[T](),
			copy:   copierOf[T](),
		}
	})
}

func tableFor[F any](key tableKey, build func() *Methods[F]) *Methods[F] {
	return helper.MustTyped[*Methods[F]](func() (any, error) {
		return loadOrBuild(key, func() any {
			m := build()
			m.key = key
			m.id = uuid.New().String()
			log().Debug("built dispatch table",
				zap.String("tableId", m.id),
				zap.Stringer("key", key),
			)
			return m
		}), nil
	})
}

// identical reports whether table is the registered table of payload type T
// under signature sig. It never builds a table.
func identical[T any](table any, sig reflect.Type) bool {
	registered, ok := lookup(tableKey{payload: reflect.TypeFor[T](), sig: sig})
	return ok && registered == table
}
