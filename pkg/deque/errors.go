package deque

import "github.com/juju/errors"

const (
	// ErrEmpty is returned by Pop and PopLeft on a deque with no elements.
	ErrEmpty = errors.ConstError("pop from an empty deque")

	// ErrNotFound is returned by Remove, Index and IndexRange when no
	// element is host-equal to the target value.
	ErrNotFound = errors.ConstError("value not in deque")

	// ErrAtCapacity is returned by Insert when the deque is bounded and
	// already holds maxLen elements.
	ErrAtCapacity = errors.ConstError("deque already at its maximum size")
)
