package deque

import (
	"fmt"

	"github.com/juju/errors"
)

// Remove deletes the first element, scanning from the head, that is
// host-equal to v, and returns the removed handle. It fails with
// ErrNotFound when no element matches. Equality hook failures propagate
// unchanged.
func (d *Deque) Remove(v Value) (Value, error) {
	snap := d.snapshot()
	for i, elem := range snap {
		eq, err := d.host.Equal(elem, v)
		if err != nil {
			return nil, err
		}
		if !eq {
			continue
		}
		d.mu.Lock()
		if i >= d.items.Len() {
			d.mu.Unlock()
			break
		}
		removed := d.items.Delete(i)
		d.mu.Unlock()
		return removed, nil
	}
	return nil, fmt.Errorf("Remove(x): x not in deque%w", errors.Hide(ErrNotFound))
}

// Index returns the position of the first element host-equal to v,
// scanning the whole deque. It fails with ErrNotFound on a miss.
func (d *Deque) Index(v Value) (int, error) {
	return d.IndexRange(v, 0, d.Len())
}

// IndexRange scans the half-open window [start, stop) and returns the
// position of the first match relative to the window start. The window is
// clamped to the deque; an inverted window is empty. It fails with
// ErrNotFound on a miss, embedding the target's repr when the host can
// render it.
func (d *Deque) IndexRange(v Value, start, stop int) (int, error) {
	snap := d.snapshot()
	if start < 0 {
		start = 0
	}
	if stop > len(snap) {
		stop = len(snap)
	}
	for i := start; i < stop; i++ {
		eq, err := d.host.Equal(snap[i], v)
		if err != nil {
			return 0, err
		}
		if eq {
			return i - start, nil
		}
	}
	if repr, err := d.host.Repr(v); err == nil {
		return 0, fmt.Errorf("%s is not in deque%w", repr, errors.Hide(ErrNotFound))
	}
	return 0, ErrNotFound
}

// Count returns how many elements are host-equal to v. It never fails
// except when the equality hook itself does.
func (d *Deque) Count(v Value) (int, error) {
	count := 0
	for _, elem := range d.snapshot() {
		eq, err := d.host.Equal(elem, v)
		if err != nil {
			return 0, err
		}
		if eq {
			count++
		}
	}
	return count, nil
}
