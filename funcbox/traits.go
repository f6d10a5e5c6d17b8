package funcbox

import "github.com/on-the-ground/func_ive_go/funcbox/internal/erasure"

// NoCopy makes a payload move-only when embedded:
//
//	type conn struct {
//	    funcbox.NoCopy
//	    fd int
//	}
type NoCopy = erasure.NoCopy

// Cloner is implemented by payloads that deep-copy themselves.
// Containers holding a Cloner are copied with Clone instead of by value.
type Cloner[T any] interface {
	Clone() T
}
