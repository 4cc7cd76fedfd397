// Package ring provides the resizable ring buffer that backs the deque.
package ring

// Ring is a double-ended queue of values of type T stored in a resizable
// ring buffer. Items [off, off+n) modulo len(buf) in buf are valid.
//
// Invariants:
//   - len(buf) is 0 or a power of 2.
//   - If len(buf) == 0, off == 0; otherwise off < len(buf).
//
// Ring is not safe to use concurrently from multiple goroutines; the caller
// owns synchronization.
type Ring[T any] struct {
	off int
	n   int
	buf []T
}

// Preconditions: r.n == len(r.buf).
func (r *Ring[T]) expand() {
	newCap := 2 // arbitrary minimum
	if r.n != 0 {
		newCap = len(r.buf) * 2
	}
	newBuf := make([]T, newCap)
	m := copy(newBuf, r.buf[r.off:])
	copy(newBuf[m:], r.buf[:r.off])
	r.off = 0
	r.buf = newBuf
}

func (r *Ring[T]) mask() int {
	return len(r.buf) - 1
}

// pos maps a logical index to its physical position in buf.
func (r *Ring[T]) pos(i int) int {
	return (r.off + i) & r.mask()
}

// Len returns the number of values in r.
func (r *Ring[T]) Len() int {
	return r.n
}

// PushFront inserts x at the front of r.
func (r *Ring[T]) PushFront(x T) {
	if r.n == len(r.buf) {
		r.expand()
	}
	r.off = (r.off - 1) & r.mask()
	r.buf[r.off] = x
	r.n++
}

// PushBack inserts x at the back of r.
func (r *Ring[T]) PushBack(x T) {
	if r.n == len(r.buf) {
		r.expand()
	}
	r.buf[r.pos(r.n)] = x
	r.n++
}

// PopFront removes and returns the value at the front of r. It reports
// false when r is empty.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	x := r.buf[r.off]
	r.buf[r.off] = zero // drop the reference
	r.off = (r.off + 1) & r.mask()
	r.n--
	return x, true
}

// PopBack removes and returns the value at the back of r. It reports false
// when r is empty.
func (r *Ring[T]) PopBack() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	i := r.pos(r.n - 1)
	x := r.buf[i]
	r.buf[i] = zero
	r.n--
	return x, true
}

// At returns the value at logical index i.
//
// Preconditions: 0 <= i < r.Len().
func (r *Ring[T]) At(i int) T {
	return r.buf[r.pos(i)]
}

// Set replaces the value at logical index i.
//
// Preconditions: 0 <= i < r.Len().
func (r *Ring[T]) Set(i int, x T) {
	r.buf[r.pos(i)] = x
}

// Insert places x at logical index i, shifting whichever side of the ring
// is shorter.
//
// Preconditions: 0 <= i <= r.Len().
func (r *Ring[T]) Insert(i int, x T) {
	switch {
	case i == 0:
		r.PushFront(x)
	case i == r.n:
		r.PushBack(x)
	case i <= r.n-i:
		if r.n == len(r.buf) {
			r.expand()
		}
		newOff := (r.off - 1) & r.mask()
		for k := 0; k < i; k++ {
			r.buf[(newOff+k)&r.mask()] = r.buf[(r.off+k)&r.mask()]
		}
		r.off = newOff
		r.n++
		r.buf[r.pos(i)] = x
	default:
		if r.n == len(r.buf) {
			r.expand()
		}
		for k := r.n; k > i; k-- {
			r.buf[r.pos(k)] = r.buf[r.pos(k-1)]
		}
		r.buf[r.pos(i)] = x
		r.n++
	}
}

// Delete removes and returns the value at logical index i, shifting
// whichever side of the ring is shorter.
//
// Preconditions: 0 <= i < r.Len().
func (r *Ring[T]) Delete(i int) T {
	x := r.buf[r.pos(i)]
	var zero T
	if i < r.n-1-i {
		for k := i; k > 0; k-- {
			r.buf[r.pos(k)] = r.buf[r.pos(k-1)]
		}
		r.buf[r.off] = zero
		r.off = (r.off + 1) & r.mask()
	} else {
		for k := i; k < r.n-1; k++ {
			r.buf[r.pos(k)] = r.buf[r.pos(k+1)]
		}
		r.buf[r.pos(r.n-1)] = zero
	}
	r.n--
	return x
}

// Reverse reverses the order of the values in place.
func (r *Ring[T]) Reverse() {
	for i, j := 0, r.n-1; i < j; i, j = i+1, j-1 {
		pi, pj := r.pos(i), r.pos(j)
		r.buf[pi], r.buf[pj] = r.buf[pj], r.buf[pi]
	}
}

// Clear removes all values from r, releasing the stored references but
// keeping the allocated buffer.
func (r *Ring[T]) Clear() {
	var zero T
	for i := 0; i < r.n; i++ {
		r.buf[r.pos(i)] = zero
	}
	r.off = 0
	r.n = 0
}

// Snapshot returns the values in logical order as a freshly allocated slice.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[r.pos(i)]
	}
	return out
}

// Clone returns an independent copy of r sharing no storage with it.
func (r *Ring[T]) Clone() Ring[T] {
	c := Ring[T]{off: r.off, n: r.n}
	if r.buf != nil {
		c.buf = make([]T, len(r.buf))
		copy(c.buf, r.buf)
	}
	return c
}
