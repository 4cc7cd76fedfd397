package deque_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i5heu/GoBoundedDeque/pkg/deque"
	"github.com/i5heu/GoBoundedDeque/pkg/stdhost"
)

// brokenHost fails every equality check; ordering and repr are inherited.
type brokenHost struct {
	stdhost.Host
}

var errHook = errors.New("host hook failed")

func (brokenHost) Equal(a, b deque.Value) (bool, error) {
	return false, errHook
}

func TestInsertClampsNegativeOverflow(t *testing.T) {
	d := fromInts(t, -1, 1, 2, 3)
	require.NoError(t, d.Insert(-100, int64(9)))
	assert.Equal(t, []int64{9, 1, 2, 3}, contents(t, d))
}

func TestInsertClampsPositiveOverflow(t *testing.T) {
	// Past-the-end indices insert just before the current last element.
	d := fromInts(t, -1, 1, 2, 3)
	require.NoError(t, d.Insert(100, int64(9)))
	assert.Equal(t, []int64{1, 2, 9, 3}, contents(t, d))
}

func TestInsertNegativeIndex(t *testing.T) {
	d := fromInts(t, -1, 1, 2, 3)
	require.NoError(t, d.Insert(-1, int64(9)))
	assert.Equal(t, []int64{1, 2, 9, 3}, contents(t, d))
}

func TestInsertIntoEmpty(t *testing.T) {
	d := deque.New(host)
	require.NoError(t, d.Insert(5, int64(9)))
	assert.Equal(t, []int64{9}, contents(t, d))
}

func TestInsertAtCapacity(t *testing.T) {
	d := fromInts(t, 3, 1, 2, 3)
	err := d.Insert(1, int64(9))
	assert.ErrorIs(t, err, deque.ErrAtCapacity)
	assert.Equal(t, []int64{1, 2, 3}, contents(t, d))
}

func TestInsertBelowCapacity(t *testing.T) {
	d := fromInts(t, 3, 1, 2)
	require.NoError(t, d.Insert(1, int64(9)))
	assert.Equal(t, []int64{1, 9, 2}, contents(t, d))
}

func TestRemove(t *testing.T) {
	d := fromInts(t, -1, 1, 2, 1, 3)
	v, err := d.Remove(int64(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	// Only the first match goes, order of the rest is preserved.
	assert.Equal(t, []int64{2, 1, 3}, contents(t, d))
}

func TestRemoveMiss(t *testing.T) {
	d := fromInts(t, -1, 1, 2, 3)
	_, err := d.Remove(int64(9))
	assert.ErrorIs(t, err, deque.ErrNotFound)
	assert.Equal(t, 3, d.Len())
}

func TestRemoveHookFailure(t *testing.T) {
	d, err := deque.NewFrom(brokenHost{}, deque.SliceSource(int64(1)))
	require.NoError(t, err)
	_, err = d.Remove(int64(1))
	assert.ErrorIs(t, err, errHook)
	assert.Equal(t, 1, d.Len())
}

func TestIndex(t *testing.T) {
	d := fromInts(t, -1, 5, 6, 7, 6)
	i, err := d.Index(int64(6))
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestIndexRangeRelativeToWindow(t *testing.T) {
	d := fromInts(t, -1, 5, 6, 7, 6)
	i, err := d.IndexRange(int64(6), 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, i) // position 3, window starts at 2
}

func TestIndexRangeMiss(t *testing.T) {
	d := fromInts(t, -1, 5, 6, 7)
	_, err := d.IndexRange(int64(5), 1, 3)
	assert.ErrorIs(t, err, deque.ErrNotFound)
	assert.Contains(t, err.Error(), "is not in deque")
}

func TestIndexRangeClampsAndInverts(t *testing.T) {
	d := fromInts(t, -1, 5, 6, 7)

	i, err := d.IndexRange(int64(7), -10, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	// An inverted window is empty.
	_, err = d.IndexRange(int64(5), 2, 1)
	assert.ErrorIs(t, err, deque.ErrNotFound)
}

func TestCount(t *testing.T) {
	d := fromInts(t, -1, 1, 2, 1, 1, 3)
	n, err := d.Count(int64(1))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = d.Count(int64(9))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountHookFailure(t *testing.T) {
	d, err := deque.NewFrom(brokenHost{}, deque.SliceSource(int64(1)))
	require.NoError(t, err)
	_, err = d.Count(int64(1))
	assert.ErrorIs(t, err, errHook)
}
