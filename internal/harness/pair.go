package harness

// IndexedValue is a (position, value) pair returned by pull-style iteration.
type IndexedValue[T any] struct {
	Index int
	Value T
}

// PairIterator is a pull-style iterator returning a pair per step.
type PairIterator[T any] struct {
	values []T
	index  int
}

// NewPairIterator creates a pull-style iterator over values.
func NewPairIterator[T any](values ...T) *PairIterator[T] {
	return &PairIterator[T]{values: values}
}

// HasNext returns whether another element is available.
func (it *PairIterator[T]) HasNext() bool { return it.index < len(it.values) }

// Next returns the current pair by value and advances.
func (it *PairIterator[T]) Next() IndexedValue[T] {
	pair := IndexedValue[T]{Index: it.index, Value: it.values[it.index]}
	it.index++
	return pair
}

// NextPointer returns the current pair on the heap and advances.
//
//go:noinline
func (it *PairIterator[T]) NextPointer() *IndexedValue[T] {
	pair := &IndexedValue[T]{Index: it.index, Value: it.values[it.index]}
	it.index++
	return pair
}
