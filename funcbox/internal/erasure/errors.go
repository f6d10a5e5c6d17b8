package erasure

import "errors"

// ErrEmptyInvocation is returned when a container holding no payload is called.
var ErrEmptyInvocation = errors.New("empty function call")

// ErrUnsupportedCopy is returned when the held payload type cannot be duplicated.
var ErrUnsupportedCopy = errors.New("unsupported copy")
