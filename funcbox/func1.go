package funcbox

import (
	"github.com/on-the-ground/func_ive_go/funcbox/internal/erasure"
)

// Callable1 is implemented by payloads callable with one argument.
type Callable1[A1, R any] interface {
	Call(A1) R
}

// Fn1 adapts a plain function to Callable1.
type Fn1[A1, R any] func(A1) R

func (fn Fn1[A1, R]) Call(a1 A1) R {
	return fn(a1)
}

type invoke1[A1, R any] func(obj any, a1 A1) (R, error)

func empty1[A1, R any]() *erasure.Methods[invoke1[A1, R]] {
	return erasure.EmptyTable(invoke1[A1, R](func(any, A1) (R, error) {
		var zero R
		return zero, ErrEmptyInvocation
	}))
}

// Func1 holds any callable of signature (A1) -> R.
//
// The zero value is empty. Copy and move rules are those of Func2.
type Func1[A1, R any] struct {
	stg erasure.Storage[invoke1[A1, R]]
}

// From1 stores val in a new Func1. See From2.
func From1[A1, R any, T any, PT interface {
	*T
	Callable1[A1, R]
}](val T) Func1[A1, R] {
	table := erasure.TableOf[T](invoke1[A1, R](func(obj any, a1 A1) (R, error) {
		return PT(obj.(*T)).Call(a1), nil
	}))
	return Func1[A1, R]{stg: erasure.Absorb(val, table)}
}

// Of1 stores a plain function. A nil fn yields an empty Func1.
func Of1[A1, R any](fn func(A1) R) Func1[A1, R] {
	if fn == nil {
		return Func1[A1, R]{}
	}
	return From1[A1, R](Fn1[A1, R](fn))
}

// Valid reports whether f holds a payload.
func (f *Func1[A1, R]) Valid() bool {
	return f.stg.Valid(empty1[A1, R]())
}

// Call invokes the payload. It fails with ErrEmptyInvocation when f is empty.
func (f *Func1[A1, R]) Call(a1 A1) (R, error) {
	return f.stg.Table(empty1[A1, R]()).Invoke(f.stg.Obj(), a1)
}

func (f *Func1[A1, R]) MustCall(a1 A1) R {
	res, err := f.Call(a1)
	if err != nil {
		panic(err)
	}
	return res
}

// Clone returns an independent copy of f.
func (f *Func1[A1, R]) Clone() (Func1[A1, R], error) {
	stg, err := f.stg.Copy(empty1[A1, R]())
	return Func1[A1, R]{stg: stg}, err
}

// CopyFrom replaces f's payload with a copy of src's. On failure f is unchanged.
func (f *Func1[A1, R]) CopyFrom(src *Func1[A1, R]) error {
	return f.stg.Assign(&src.stg, empty1[A1, R]())
}

// Take moves the payload into the returned Func1 and leaves f empty.
func (f *Func1[A1, R]) Take() Func1[A1, R] {
	return Func1[A1, R]{stg: f.stg.Take(empty1[A1, R]())}
}

// MoveFrom releases f's payload and takes over src's, leaving src empty.
func (f *Func1[A1, R]) MoveFrom(src *Func1[A1, R]) {
	f.stg.MoveFrom(&src.stg, empty1[A1, R]())
}

func (f *Func1[A1, R]) Swap(other *Func1[A1, R]) {
	f.stg.Swap(&other.stg)
}

// Close releases the payload and leaves f empty. Closing an empty Func1 is a no-op.
func (f *Func1[A1, R]) Close() {
	f.stg.Release(empty1[A1, R]())
}

func (f *Func1[A1, R]) view() erasure.View {
	return f.stg.View(empty1[A1, R]())
}
