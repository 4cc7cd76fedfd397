package deque

// CompareResult is the outcome of a rich comparison. NotImplemented is a
// sentinel, not a failure: it tells the host's comparison dispatch that the
// other operand is not a deque, so a reflected or fallback comparison may
// be attempted.
type CompareResult int8

const (
	False CompareResult = iota
	True
	NotImplemented
)

type compareOp int8

const (
	opEq compareOp = iota
	opNe
	opLt
	opLe
	opGt
	opGe
)

// Eq reports whether d and other hold pairwise host-equal elements.
func (d *Deque) Eq(other any) (CompareResult, error) { return d.richCompare(opEq, other) }

// Ne is the negation of Eq.
func (d *Deque) Ne(other any) (CompareResult, error) { return d.richCompare(opNe, other) }

// Lt reports whether d orders lexicographically before other.
func (d *Deque) Lt(other any) (CompareResult, error) { return d.richCompare(opLt, other) }

// Le reports whether d orders lexicographically before other or equals it.
func (d *Deque) Le(other any) (CompareResult, error) { return d.richCompare(opLe, other) }

// Gt reports whether d orders lexicographically after other.
func (d *Deque) Gt(other any) (CompareResult, error) { return d.richCompare(opGt, other) }

// Ge reports whether d orders lexicographically after other or equals it.
func (d *Deque) Ge(other any) (CompareResult, error) { return d.richCompare(opGe, other) }

func (d *Deque) richCompare(op compareOp, other any) (CompareResult, error) {
	o, ok := other.(*Deque)
	if !ok {
		return NotImplemented, nil
	}
	if d == o {
		// A deque always equals itself; no host hooks run.
		switch op {
		case opEq, opLe, opGe:
			return True, nil
		default:
			return False, nil
		}
	}
	res, err := comparer{host: d.host}.compare(op, d.snapshot(), o.snapshot())
	if err != nil {
		return False, err
	}
	if res {
		return True, nil
	}
	return False, nil
}

// comparer adapts the host's equality and ordering hooks into lexicographic
// sequence comparison: the first pairwise-unequal elements decide, and a
// strict prefix orders before the longer sequence.
type comparer struct {
	host Host
}

func (c comparer) compare(op compareOp, a, b []Value) (bool, error) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		eq, err := c.host.Equal(a[i], b[i])
		if err != nil {
			return false, err
		}
		if eq {
			continue
		}
		switch op {
		case opEq:
			return false, nil
		case opNe:
			return true, nil
		case opLt, opLe:
			return c.host.Less(a[i], b[i])
		default: // opGt, opGe
			return c.host.Less(b[i], a[i])
		}
	}
	// One sequence is a prefix of the other; lengths decide.
	switch op {
	case opEq:
		return len(a) == len(b), nil
	case opNe:
		return len(a) != len(b), nil
	case opLt:
		return len(a) < len(b), nil
	case opLe:
		return len(a) <= len(b), nil
	case opGt:
		return len(a) > len(b), nil
	default: // opGe
		return len(a) >= len(b), nil
	}
}
