package fieldpath

import "errors"

// ErrMissing is returned when no path alternative resolves to a present,
// non-null node.
var ErrMissing = errors.New("field missing")

// ErrInvalid is returned when a node resolves but cannot be coerced to the
// requested type. The wrapped message carries the getter's label and a debug
// rendering of the offending node.
var ErrInvalid = errors.New("invalid field")
