package traversal

// emptyIterator is an indexed value iterator over no elements.
type emptyIterator[V any] struct {
	zeroValue V
}

// NewEmptyIterator creates an iterator that starts exhausted.
func NewEmptyIterator[V any](zeroValue V) IndexedValueIterator[V] {
	return emptyIterator[V]{zeroValue: zeroValue}
}

func (it emptyIterator[V]) Size() int                { return 0 }
func (it emptyIterator[V]) ZeroValue() V             { return it.zeroValue }
func (it emptyIterator[V]) HasNext() bool            { return false }
func (it emptyIterator[V]) Next(_ Consumer[V]) error { return outOfBounds(0, 0) }
