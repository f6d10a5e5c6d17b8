package funcbox

import (
	"github.com/on-the-ground/func_ive_go/funcbox/internal/erasure"
)

// Callable0 is implemented by payloads callable with no arguments.
type Callable0[R any] interface {
	Call() R
}

// Fn0 adapts a plain function to Callable0.
type Fn0[R any] func() R

func (fn Fn0[R]) Call() R {
	return fn()
}

type invoke0[R any] func(obj any) (R, error)

func empty0[R any]() *erasure.Methods[invoke0[R]] {
	return erasure.EmptyTable(invoke0[R](func(any) (R, error) {
		var zero R
		return zero, ErrEmptyInvocation
	}))
}

// Func0 holds any callable of signature () -> R.
//
// The zero value is empty. A Func0 must not be duplicated by assignment
// once it holds a payload; use Clone or CopyFrom to copy and Take or
// MoveFrom to transfer ownership.
type Func0[R any] struct {
	stg erasure.Storage[invoke0[R]]
}

// From0 stores val in a new Func0. The pointer to the stored copy is what
// gets called, so Call may have a pointer receiver and mutate the payload.
//
// Usage:
//
//	f := funcbox.From0[int](counter{})
func From0[R any, T any, PT interface {
	*T
	Callable0[R]
}](val T) Func0[R] {
	table := erasure.TableOf[T](invoke0[R](func(obj any) (R, error) {
		return PT(obj.(*T)).Call(), nil
	}))
	return Func0[R]{stg: erasure.Absorb(val, table)}
}

// Of0 stores a plain function. A nil fn yields an empty Func0.
func Of0[R any](fn func() R) Func0[R] {
	if fn == nil {
		return Func0[R]{}
	}
	return From0[R](Fn0[R](fn))
}

// Valid reports whether f holds a payload.
func (f *Func0[R]) Valid() bool {
	return f.stg.Valid(empty0[R]())
}

// Call invokes the payload. It fails with ErrEmptyInvocation when f is empty.
func (f *Func0[R]) Call() (R, error) {
	return f.stg.Table(empty0[R]()).Invoke(f.stg.Obj())
}

// MustCall is the panic-on-failure variant of Call.
func (f *Func0[R]) MustCall() R {
	res, err := f.Call()
	if err != nil {
		panic(err)
	}
	return res
}

// Clone returns an independent copy of f.
// It fails with ErrUnsupportedCopy when the payload is move-only.
func (f *Func0[R]) Clone() (Func0[R], error) {
	stg, err := f.stg.Copy(empty0[R]())
	return Func0[R]{stg: stg}, err
}

// CopyFrom replaces f's payload with a copy of src's. On failure f is unchanged.
func (f *Func0[R]) CopyFrom(src *Func0[R]) error {
	return f.stg.Assign(&src.stg, empty0[R]())
}

// Take moves the payload into the returned Func0 and leaves f empty.
func (f *Func0[R]) Take() Func0[R] {
	return Func0[R]{stg: f.stg.Take(empty0[R]())}
}

// MoveFrom releases f's payload and takes over src's, leaving src empty.
func (f *Func0[R]) MoveFrom(src *Func0[R]) {
	f.stg.MoveFrom(&src.stg, empty0[R]())
}

// Swap exchanges the payloads of f and other.
func (f *Func0[R]) Swap(other *Func0[R]) {
	f.stg.Swap(&other.stg)
}

// Close releases the payload and leaves f empty. Closing an empty Func0 is a no-op.
func (f *Func0[R]) Close() {
	f.stg.Release(empty0[R]())
}

func (f *Func0[R]) view() erasure.View {
	return f.stg.View(empty0[R]())
}
