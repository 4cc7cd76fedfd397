// Package deque implements a double-ended queue with an optional maximum
// length. Elements are opaque handles owned by a host object system; the
// deque never inspects them itself and delegates equality, ordering and
// textual rendering to the Host supplied at construction.
//
// Once a bounded deque is at capacity, pushing to one end evicts one element
// from the opposite end, turning the deque into a sliding window.
package deque

import (
	"sync"

	"github.com/i5heu/GoBoundedDeque/internal/ring"
)

// Value is an element handle. Its meaning belongs entirely to the host
// object system; the deque only stores and moves it.
type Value = any

// Host supplies the element capabilities the deque does not define itself.
// Any hook may fail; the failure is propagated unchanged to the caller of
// the deque operation that invoked it.
type Host interface {
	// Equal reports whether a and b are equal.
	Equal(a, b Value) (bool, error)
	// Less reports whether a orders strictly before b.
	Less(a, b Value) (bool, error)
	// Repr renders v for humans.
	Repr(v Value) (string, error)
}

// Deque is the container. All methods serialize access through an internal
// mutex, but host hooks are always invoked with the lock released (on
// snapshots of the element sequence), so an element whose hook re-enters
// the same deque does not deadlock. Interleaving writers still corrupt the
// logical ordering of multi-step operations; the intended use is a single
// writer, as in a cooperative single-threaded host.
type Deque struct {
	mu     sync.Mutex
	items  ring.Ring[Value]
	maxLen int // negative means unbounded
	host   Host
}

// New returns an empty deque without a length bound.
func New(h Host) *Deque {
	return &Deque{maxLen: -1, host: h}
}

// NewBounded returns an empty deque holding at most maxLen elements.
// A negative maxLen means no bound.
func NewBounded(h Host, maxLen int) *Deque {
	return &Deque{maxLen: maxLen, host: h}
}

// NewFrom returns an unbounded deque populated from src, consumed exactly
// once, left to right. A source failure aborts construction.
func NewFrom(h Host, src Iterator) (*Deque, error) {
	return NewBoundedFrom(h, src, -1)
}

// NewBoundedFrom returns a bounded deque populated from src. The bound is
// not enforced during construction: a source longer than maxLen yields a
// longer-than-bound deque, and the bound takes effect on subsequent pushes.
func NewBoundedFrom(h Host, src Iterator, maxLen int) (*Deque, error) {
	d := NewBounded(h, maxLen)
	for {
		v, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return d, nil
		}
		d.items.PushBack(v)
	}
}

type end int8

const (
	front end = iota
	back
)

// makeRoom applies the bound ahead of a push at the given end: a saturated
// deque loses one element from the opposite end first. It reports whether
// the push may proceed; with a bound of zero there is no room to make, and
// the push is swallowed whole.
func (d *Deque) makeRoom(at end) bool {
	if d.maxLen < 0 || d.items.Len() < d.maxLen {
		return true
	}
	if d.maxLen == 0 {
		return false
	}
	if at == back {
		d.items.PopFront()
	} else {
		d.items.PopBack()
	}
	return true
}

// Append adds v at the tail, evicting the head element first when the
// deque is at capacity. It always succeeds.
func (d *Deque) Append(v Value) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.makeRoom(back) {
		d.items.PushBack(v)
	}
}

// AppendLeft adds v at the head, evicting the tail element first when the
// deque is at capacity. It always succeeds.
func (d *Deque) AppendLeft(v Value) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.makeRoom(front) {
		d.items.PushFront(v)
	}
}

// Pop removes and returns the tail element. It fails with ErrEmpty when the
// deque holds no elements.
func (d *Deque) Pop() (Value, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.items.PopBack()
	if !ok {
		return nil, ErrEmpty
	}
	return v, nil
}

// PopLeft removes and returns the head element. It fails with ErrEmpty when
// the deque holds no elements.
func (d *Deque) PopLeft() (Value, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.items.PopFront()
	if !ok {
		return nil, ErrEmpty
	}
	return v, nil
}

// Extend pushes every element produced by src at the tail, one at a time;
// each push may evict independently. If src fails mid-way the error is
// returned and the elements already pushed stay pushed.
func (d *Deque) Extend(src Iterator) error {
	for {
		v, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		d.Append(v)
	}
}

// ExtendLeft is Extend at the head end; the source's elements end up in
// reverse order at the front.
func (d *Deque) ExtendLeft(src Iterator) error {
	for {
		v, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		d.AppendLeft(v)
	}
}

// Clear removes every element. The bound is unchanged.
func (d *Deque) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items.Clear()
}

// Copy returns an independent deque with the same host, the same bound and
// a shallow copy of the element handles.
func (d *Deque) Copy() *Deque {
	d.mu.Lock()
	defer d.mu.Unlock()
	return &Deque{items: d.items.Clone(), maxLen: d.maxLen, host: d.host}
}

// Reverse reverses the element order in place.
func (d *Deque) Reverse() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items.Reverse()
}

// Rotate moves the last n elements to the front one at a time; a negative n
// moves the first -n elements to the back. Rotating past the deque's length
// wraps around naturally, since moving an element out of an empty deque is
// a no-op.
func (d *Deque) Rotate(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for ; n > 0; n-- {
		if v, ok := d.items.PopBack(); ok {
			d.items.PushFront(v)
		}
	}
	for ; n < 0; n++ {
		if v, ok := d.items.PopFront(); ok {
			d.items.PushBack(v)
		}
	}
}

// Len returns the number of elements.
func (d *Deque) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.items.Len()
}

// MaxLen returns the configured bound. ok is false when the deque is
// unbounded.
func (d *Deque) MaxLen() (n int, ok bool) {
	if d.maxLen < 0 {
		return 0, false
	}
	return d.maxLen, true
}

// snapshot copies the handle sequence out under the lock so host hooks can
// run against it with the lock released.
func (d *Deque) snapshot() []Value {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.items.Snapshot()
}
