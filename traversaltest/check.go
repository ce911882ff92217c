// Package traversaltest provides assertions for indexed value iterators.
package traversaltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/traversal"
)

// CheckValue asserts that the next delivered element is (index, value).
func CheckValue[V any](t testing.TB, it traversal.IndexedValueIterator[V], index int, value V) {
	t.Helper()
	require.True(t, it.HasNext(), "expected element at %v", index)
	calls := 0
	err := it.Next(func(i int, v V) {
		calls++
		assert.Equal(t, index, i)
		assert.EqualValues(t, value, v)
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls, "consumer call count")
}

// CheckEnd asserts that it is exhausted and that Next fails without delivering.
func CheckEnd[V any](t testing.TB, it traversal.IndexedValueIterator[V]) {
	t.Helper()
	require.False(t, it.HasNext())
	err := it.Next(func(i int, v V) {
		t.Errorf("consumer called after exhaustion with (%v, %v)", i, v)
	})
	require.ErrorIs(t, err, traversal.ErrOutOfBounds)
	var bounds *traversal.OutOfBoundsError
	require.ErrorAs(t, err, &bounds)
	assert.Equal(t, it.Size(), bounds.Index)
	assert.Equal(t, it.Size(), bounds.Size)
	assert.False(t, it.HasNext())
}
