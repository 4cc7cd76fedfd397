package deque_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i5heu/GoBoundedDeque/pkg/deque"
	"github.com/i5heu/GoBoundedDeque/pkg/stdhost"
)

func TestRepr(t *testing.T) {
	d := fromInts(t, -1, 1, 2, 3)
	s, err := d.Repr()
	require.NoError(t, err)
	assert.Equal(t, "deque([1, 2, 3])", s)
}

func TestReprEmpty(t *testing.T) {
	d := deque.New(host)
	s, err := d.Repr()
	require.NoError(t, err)
	assert.Equal(t, "deque([])", s)
}

func TestReprWithBound(t *testing.T) {
	d := fromInts(t, 3, 1, 2, 3)
	s, err := d.Repr()
	require.NoError(t, err)
	assert.Equal(t, "deque([1, 2, 3], maxlen=3)", s)
}

func TestReprMixedValues(t *testing.T) {
	d := deque.New(host)
	d.Append("a")
	d.Append(true)
	d.Append(nil)
	s, err := d.Repr()
	require.NoError(t, err)
	assert.Equal(t, `deque(["a", True, None])`, s)
}

func TestReprSelfReference(t *testing.T) {
	d := deque.New(host)
	d.Append(int64(1))
	d.Append(d)
	s, err := d.Repr()
	require.NoError(t, err)
	assert.Equal(t, "deque([1, [...]])", s)
}

func TestReprMutualCycle(t *testing.T) {
	a := deque.New(host)
	b := deque.New(host)
	a.Append(b)
	b.Append(a)
	s, err := a.Repr()
	require.NoError(t, err)
	assert.Equal(t, "deque([deque([[...]])])", s)
}

// reprlessHost fails the repr hook.
type reprlessHost struct {
	stdhost.Host
}

var errRepr = errors.New("repr hook failed")

func (reprlessHost) Repr(v deque.Value) (string, error) {
	return "", errRepr
}

func TestReprHookFailureReleasesGuard(t *testing.T) {
	d, err := deque.NewFrom(reprlessHost{}, deque.SliceSource(int64(1)))
	require.NoError(t, err)

	_, err = d.Repr()
	assert.ErrorIs(t, err, errRepr)

	// The guard must have been released: a second call fails the same way
	// rather than short-circuiting to the cycle placeholder.
	_, err = d.Repr()
	assert.ErrorIs(t, err, errRepr)
}
