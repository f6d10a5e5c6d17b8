package funcbox

import (
	"github.com/on-the-ground/func_ive_go/funcbox/internal/erasure"
)

// Callable2 is implemented by payloads callable with two arguments.
type Callable2[A1, A2, R any] interface {
	Call(A1, A2) R
}

// Fn2 adapts a plain function to Callable2.
type Fn2[A1, A2, R any] func(A1, A2) R

func (fn Fn2[A1, A2, R]) Call(a1 A1, a2 A2) R {
	return fn(a1, a2)
}

type invoke2[A1, A2, R any] func(obj any, a1 A1, a2 A2) (R, error)

func empty2[A1, A2, R any]() *erasure.Methods[invoke2[A1, A2, R]] {
	return erasure.EmptyTable(invoke2[A1, A2, R](func(any, A1, A2) (R, error) {
		var zero R
		return zero, ErrEmptyInvocation
	}))
}

// Func2 holds any callable of signature (A1, A2) -> R.
//
// The zero value is empty. A Func2 must not be duplicated by assignment
// once it holds a payload; use Clone or CopyFrom to copy and Take or
// MoveFrom to transfer ownership.
type Func2[A1, A2, R any] struct {
	stg erasure.Storage[invoke2[A1, A2, R]]
}

// From2 stores val in a new Func2. The pointer to the stored copy is what
// gets called, so Call may have a pointer receiver and mutate the payload.
//
// Usage:
//
//	f := funcbox.From2[int, int, int](adder{})
func From2[A1, A2, R any, T any, PT interface {
	*T
	Callable2[A1, A2, R]
}](val T) Func2[A1, A2, R] {
	table := erasure.TableOf[T](invoke2[A1, A2, R](func(obj any, a1 A1, a2 A2) (R, error) {
		return PT(obj.(*T)).Call(a1, a2), nil
	}))
	return Func2[A1, A2, R]{stg: erasure.Absorb(val, table)}
}

// Of2 stores a plain function. A nil fn yields an empty Func2.
func Of2[A1, A2, R any](fn func(A1, A2) R) Func2[A1, A2, R] {
	if fn == nil {
		return Func2[A1, A2, R]{}
	}
	return From2[A1, A2, R](Fn2[A1, A2, R](fn))
}

// Valid reports whether f holds a payload.
func (f *Func2[A1, A2, R]) Valid() bool {
	return f.stg.Valid(empty2[A1, A2, R]())
}

// Call invokes the payload. It fails with ErrEmptyInvocation when f is empty.
func (f *Func2[A1, A2, R]) Call(a1 A1, a2 A2) (R, error) {
	return f.stg.Table(empty2[A1, A2, R]()).Invoke(f.stg.Obj(), a1, a2)
}

// MustCall is the panic-on-failure variant of Call.
func (f *Func2[A1, A2, R]) MustCall(a1 A1, a2 A2) R {
	res, err := f.Call(a1, a2)
	if err != nil {
		panic(err)
	}
	return res
}

// Clone returns an independent copy of f.
// It fails with ErrUnsupportedCopy when the payload is move-only.
func (f *Func2[A1, A2, R]) Clone() (Func2[A1, A2, R], error) {
	stg, err := f.stg.Copy(empty2[A1, A2, R]())
	return Func2[A1, A2, R]{stg: stg}, err
}

// CopyFrom replaces f's payload with a copy of src's. On failure f is unchanged.
func (f *Func2[A1, A2, R]) CopyFrom(src *Func2[A1, A2, R]) error {
	return f.stg.Assign(&src.stg, empty2[A1, A2, R]())
}

// Take moves the payload into the returned Func2 and leaves f empty.
func (f *Func2[A1, A2, R]) Take() Func2[A1, A2, R] {
	return Func2[A1, A2, R]{stg: f.stg.Take(empty2[A1, A2, R]())}
}

// MoveFrom releases f's payload and takes over src's, leaving src empty.
func (f *Func2[A1, A2, R]) MoveFrom(src *Func2[A1, A2, R]) {
	f.stg.MoveFrom(&src.stg, empty2[A1, A2, R]())
}

// Swap exchanges the payloads of f and other.
func (f *Func2[A1, A2, R]) Swap(other *Func2[A1, A2, R]) {
	f.stg.Swap(&other.stg)
}

// Close releases the payload and leaves f empty. Closing an empty Func2 is a no-op.
func (f *Func2[A1, A2, R]) Close() {
	f.stg.Release(empty2[A1, A2, R]())
}

func (f *Func2[A1, A2, R]) view() erasure.View {
	return f.stg.View(empty2[A1, A2, R]())
}
