package funcbox

import (
	"github.com/on-the-ground/func_ive_go/funcbox/internal/erasure"
)

// Callable3 is implemented by payloads callable with three arguments.
type Callable3[A1, A2, A3, R any] interface {
	Call(A1, A2, A3) R
}

// Fn3 adapts a plain function to Callable3.
type Fn3[A1, A2, A3, R any] func(A1, A2, A3) R

func (fn Fn3[A1, A2, A3, R]) Call(a1 A1, a2 A2, a3 A3) R {
	return fn(a1, a2, a3)
}

type invoke3[A1, A2, A3, R any] func(obj any, a1 A1, a2 A2, a3 A3) (R, error)

func empty3[A1, A2, A3, R any]() *erasure.Methods[invoke3[A1, A2, A3, R]] {
	return erasure.EmptyTable(invoke3[A1, A2, A3, R](func(any, A1, A2, A3) (R, error) {
		var zero R
		return zero, ErrEmptyInvocation
	}))
}

// Func3 holds any callable of signature (A1, A2, A3) -> R.
//
// The zero value is empty. Copy and move rules are those of Func2.
type Func3[A1, A2, A3, R any] struct {
	stg erasure.Storage[invoke3[A1, A2, A3, R]]
}

// From3 stores val in a new Func3. See From2.
func From3[A1, A2, A3, R any, T any, PT interface {
	*T
	Callable3[A1, A2, A3, R]
}](val T) Func3[A1, A2, A3, R] {
	table := erasure.TableOf[T](invoke3[A1, A2, A3, R](func(obj any, a1 A1, a2 A2, a3 A3) (R, error) {
		return PT(obj.(*T)).Call(a1, a2, a3), nil
	}))
	return Func3[A1, A2, A3, R]{stg: erasure.Absorb(val, table)}
}

// Of3 stores a plain function. A nil fn yields an empty Func3.
func Of3[A1, A2, A3, R any](fn func(A1, A2, A3) R) Func3[A1, A2, A3, R] {
	if fn == nil {
		return Func3[A1, A2, A3, R]{}
	}
	return From3[A1, A2, A3, R](Fn3[A1, A2, A3, R](fn))
}

// Valid reports whether f holds a payload.
func (f *Func3[A1, A2, A3, R]) Valid() bool {
	return f.stg.Valid(empty3[A1, A2, A3, R]())
}

// Call invokes the payload. It fails with ErrEmptyInvocation when f is empty.
func (f *Func3[A1, A2, A3, R]) Call(a1 A1, a2 A2, a3 A3) (R, error) {
	return f.stg.Table(empty3[A1, A2, A3, R]()).Invoke(f.stg.Obj(), a1, a2, a3)
}

func (f *Func3[A1, A2, A3, R]) MustCall(a1 A1, a2 A2, a3 A3) R {
	res, err := f.Call(a1, a2, a3)
	if err != nil {
		panic(err)
	}
	return res
}

// Clone returns an independent copy of f.
func (f *Func3[A1, A2, A3, R]) Clone() (Func3[A1, A2, A3, R], error) {
	stg, err := f.stg.Copy(empty3[A1, A2, A3, R]())
	return Func3[A1, A2, A3, R]{stg: stg}, err
}

// CopyFrom replaces f's payload with a copy of src's. On failure f is unchanged.
func (f *Func3[A1, A2, A3, R]) CopyFrom(src *Func3[A1, A2, A3, R]) error {
	return f.stg.Assign(&src.stg, empty3[A1, A2, A3, R]())
}

// Take moves the payload into the returned Func3 and leaves f empty.
func (f *Func3[A1, A2, A3, R]) Take() Func3[A1, A2, A3, R] {
	return Func3[A1, A2, A3, R]{stg: f.stg.Take(empty3[A1, A2, A3, R]())}
}

// MoveFrom releases f's payload and takes over src's, leaving src empty.
func (f *Func3[A1, A2, A3, R]) MoveFrom(src *Func3[A1, A2, A3, R]) {
	f.stg.MoveFrom(&src.stg, empty3[A1, A2, A3, R]())
}

func (f *Func3[A1, A2, A3, R]) Swap(other *Func3[A1, A2, A3, R]) {
	f.stg.Swap(&other.stg)
}

// Close releases the payload and leaves f empty. Closing an empty Func3 is a no-op.
func (f *Func3[A1, A2, A3, R]) Close() {
	f.stg.Release(empty3[A1, A2, A3, R]())
}

func (f *Func3[A1, A2, A3, R]) view() erasure.View {
	return f.stg.View(empty3[A1, A2, A3, R]())
}
