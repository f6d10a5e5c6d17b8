package erasure

import (
	"reflect"

	"github.com/on-the-ground/func_ive_go/shared/helper"
)

// Storage is an owned, erased payload paired with its dispatch table.
//
// The zero value is the empty handle. Every method that may observe the
// empty state takes the signature's empty table, so that a zero Storage and
// one reset by Take or Release behave the same.
//
// Storage is not safe for concurrent use.
type Storage[F any] struct {
	obj   any
	table *Methods[F]
}

// Absorb moves val onto the heap and binds it to table.
func Absorb[T, F any](val T, table *Methods[F]) Storage[F] {
	obj := new(T)
	*obj = val
	return Storage[F]{obj: obj, table: table}
}

// Table returns the installed table, or empty when nothing is installed.
func (s *Storage[F]) Table(empty *Methods[F]) *Methods[F] {
	if s.table == nil {
		return empty
	}
	return s.table
}

// Obj returns the erased handle passed to the table's Invoke.
func (s *Storage[F]) Obj() any {
	return s.obj
}

// Valid reports whether a payload is held.
func (s *Storage[F]) Valid(empty *Methods[F]) bool {
	return s.Table(empty) != empty
}

// Copy duplicates the payload through the table's copy operation.
// On failure the source is untouched and the returned storage is empty.
func (s *Storage[F]) Copy(empty *Methods[F]) (Storage[F], error) {
	table := s.Table(empty)
	obj, err := table.copy(s.obj)
	if err != nil {
		return Storage[F]{table: empty}, err
	}
	if obj == nil {
		return Storage[F]{table: empty}, nil
	}
	return Storage[F]{obj: obj, table: table}, nil
}

// Assign replaces the payload with a copy of src's.
// s keeps its payload if the copy fails.
func (s *Storage[F]) Assign(src *Storage[F], empty *Methods[F]) error {
	if s == src {
		return nil
	}
	dup, err := src.Copy(empty)
	if err != nil {
		return err
	}
	s.Release(empty)
	*s = dup
	return nil
}

// Take hands the payload over to the returned storage and leaves s empty.
func (s *Storage[F]) Take(empty *Methods[F]) Storage[F] {
	out := Storage[F]{obj: s.obj, table: s.Table(empty)}
	s.obj = nil
	s.table = empty
	return out
}

// MoveFrom releases the current payload and takes over src's.
func (s *Storage[F]) MoveFrom(src *Storage[F], empty *Methods[F]) {
	if s == src {
		return
	}
	s.Release(empty)
	*s = src.Take(empty)
}

// Release frees the payload through its table and leaves s empty.
func (s *Storage[F]) Release(empty *Methods[F]) {
	s.Table(empty).free(s.obj)
	s.obj = nil
	s.table = empty
}

// Swap exchanges the payloads of s and other.
func (s *Storage[F]) Swap(other *Storage[F]) {
	*s, *other = *other, *s
}

// View returns the signature-independent view used for typed recovery.
func (s *Storage[F]) View(empty *Methods[F]) View {
	return View{
		obj:   s.obj,
		table: s.Table(empty),
		sig:   reflect.TypeFor[F](),
		held:  s.Table(empty).Payload(),
	}
}

// View is a read-only, signature-independent snapshot of a Storage.
type View struct {
	obj   any
	table any
	sig   reflect.Type
	held  reflect.Type
}

// Held returns the held payload type, nil when empty.
func (v View) Held() reflect.Type {
	return v.held
}

// Target returns the payload as *T if the view's table is exactly T's table.
//
// The check compares table identity: only a table built by TableOf for T
// under the same signature matches, so the empty table never does.
func Target[T any](v View) (*T, bool) {
	return helper.TypedOf2[*T](func() (any, bool) {
		return v.obj, v.held != nil && identical[T](v.table, v.sig)
	})
}
