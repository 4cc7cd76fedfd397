// Package stdhost is a reference host object system for the deque: it
// supplies equality, ordering and repr over plain Go values (nil, bools,
// strings, the common numeric types) and over nested deque handles. The
// tests and the bench workloads run on it; a real host would bring its own
// object model.
package stdhost

import (
	"fmt"
	"strconv"

	"github.com/juju/errors"

	"github.com/i5heu/GoBoundedDeque/pkg/deque"
)

// Host implements deque.Host. The zero value is ready to use.
type Host struct{}

func asFloat(v deque.Value) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Equal reports whether a and b are equal. Numbers compare across types,
// deque handles compare lexicographically through the deque itself, and
// values of unsupported or mismatched kinds fail with NotSupported.
func (Host) Equal(a, b deque.Value) (bool, error) {
	if a == nil || b == nil {
		return a == nil && b == nil, nil
	}
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			return fa == fb, nil
		}
		return false, nil
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv, nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv, nil
	case *deque.Deque:
		res, err := av.Eq(b)
		if err != nil {
			return false, err
		}
		if res == deque.NotImplemented {
			return false, nil
		}
		return res == deque.True, nil
	}
	return false, errors.NotSupportedf("equality between %T and %T", a, b)
}

// Less reports whether a orders strictly before b. Only values of the same
// kind order against each other; anything else fails with NotSupported.
func (h Host) Less(a, b deque.Value) (bool, error) {
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			return fa < fb, nil
		}
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av < bv, nil
		}
	case *deque.Deque:
		res, err := av.Lt(b)
		if err != nil {
			return false, err
		}
		if res != deque.NotImplemented {
			return res == deque.True, nil
		}
	}
	return false, errors.NotSupportedf("ordering between %T and %T", a, b)
}

// Repr renders v. Deque handles render through their own Repr, which is
// what makes self-referential deques reach the cycle placeholder.
func (Host) Repr(v deque.Value) (string, error) {
	switch rv := v.(type) {
	case nil:
		return "None", nil
	case bool:
		if rv {
			return "True", nil
		}
		return "False", nil
	case string:
		return strconv.Quote(rv), nil
	case float64:
		return strconv.FormatFloat(rv, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(rv), 'g', -1, 32), nil
	case *deque.Deque:
		return rv.Repr()
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
