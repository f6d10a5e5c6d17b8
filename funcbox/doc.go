// Package funcbox provides type-erased callable containers.
//
// A container holds any callable payload of a fixed signature and calls it
// without knowing the payload's concrete type. Containers exist per arity:
//   - Func0[R]: () -> R
//   - Func1[A1, R]: (A1) -> R
//   - Func2[A1, A2, R]: (A1, A2) -> R
//   - Func3[A1, A2, A3, R]: (A1, A2, A3) -> R
//
// A payload is any type T whose pointer has the arity's Call method.
// Plain functions are stored with Of0..Of3.
//
// # Erasure
//
// Construction picks a dispatch table for the payload type once: invoke,
// free and copy, specialized to T and cached for the life of the process.
// Every later operation goes through that table. Table identity is also the
// payload's type tag, which is how Target recovers the stored *T.
//
// # Ownership
//
// Containers own their payload and have value semantics layered over Go's
// assignment: Clone and CopyFrom duplicate the payload, Take and MoveFrom
// transfer it and leave the source empty, Close releases it.
//
// Copying depends on the payload type:
//   - types implementing Cloner[T] are copied with Clone.
//   - other types embedding NoCopy are move-only; copying fails with ErrUnsupportedCopy.
//   - everything else is copied by value.
//
// Payloads implementing io.Closer are closed when their container releases them.
//
// Example:
//
//	type counter struct{ n int }
//
//	func (c *counter) Call() int { c.n++; return c.n }
//
//	f := funcbox.From0[int](counter{})
//	f.MustCall() // 1
//	g, _ := f.Clone()
//	g.MustCall() // 2
//	f.MustCall() // 2
//
// Containers are not safe for concurrent use. Dispatch tables are.
package funcbox
