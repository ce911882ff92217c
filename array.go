package traversal

var _ IndexedValueIterator[any] = (*ArrayIterator[any])(nil)

// ArrayIterator is an array-based indexed value iterator.
type ArrayIterator[V any] struct {
	zeroValue V
	values    []V
	index     int
	size      int
}

// NewArrayIterator creates an iterator over a private copy of values.
func NewArrayIterator[V any](zeroValue V, values ...V) *ArrayIterator[V] {
	backing := make([]V, len(values))
	copy(backing, values)
	return &ArrayIterator[V]{
		zeroValue: zeroValue,
		values:    backing,
		size:      len(backing),
	}
}

// ArrayIteratorOf creates an iterator that captures values without copying.
// The caller must not mutate values until the traversal completes.
func ArrayIteratorOf[V any](zeroValue V, values []V) *ArrayIterator[V] {
	return &ArrayIterator[V]{
		zeroValue: zeroValue,
		values:    values,
		size:      len(values),
	}
}

// Size returns the element count.
func (it *ArrayIterator[V]) Size() int { return it.size }

// ZeroValue returns the construction sentinel.
func (it *ArrayIterator[V]) ZeroValue() V { return it.zeroValue }

// HasNext returns whether another element is available.
func (it *ArrayIterator[V]) HasNext() bool { return it.index < it.size }

// Next delivers (index, value) to consumer and advances. A nil consumer skips the element.
func (it *ArrayIterator[V]) Next(consumer Consumer[V]) error {
	if it.index >= it.size {
		return outOfBounds(it.index, it.size)
	}
	if consumer != nil {
		consumer(it.index, it.values[it.index])
	}
	it.index++
	return nil
}
