package funcbox

import "github.com/on-the-ground/func_ive_go/funcbox/internal/erasure"

var (
	// ErrEmptyInvocation is returned by Call on an empty container.
	ErrEmptyInvocation = erasure.ErrEmptyInvocation

	// ErrUnsupportedCopy is returned when copying a container whose payload is move-only.
	ErrUnsupportedCopy = erasure.ErrUnsupportedCopy
)
