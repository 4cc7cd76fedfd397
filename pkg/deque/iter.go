package deque

// Iterator is the host's iteration protocol as the deque consumes it: a
// single-pass source of values. Next returns the next value and true, or
// false once the source is exhausted. A failing source returns an error,
// and the deque stops consuming it.
type Iterator interface {
	Next() (Value, bool, error)
}

type sliceIter struct {
	vs []Value
	i  int
}

func (it *sliceIter) Next() (Value, bool, error) {
	if it.i >= len(it.vs) {
		return nil, false, nil
	}
	v := it.vs[it.i]
	it.i++
	return v, true, nil
}

// SliceSource returns an Iterator over vs, in order.
func SliceSource(vs ...Value) Iterator {
	return &sliceIter{vs: vs}
}

// Iter returns a single-pass, non-restartable iteration over the elements
// in order. It observes the deque as it was when Iter was called; later
// mutations are not reflected.
func (d *Deque) Iter() Iterator {
	return &sliceIter{vs: d.snapshot()}
}
