// Package traversal provides a single-pass, forward-only iterator that pushes
// each element's position and value to a consumer instead of returning a
// (position, value) pair, so no wrapper is allocated per step.
//
// Iterators are not safe for concurrent use. A consumer runs synchronously on
// the caller's goroutine before Next returns. ArrayIterator copies its values at
// construction and never mutates them, so consumers may retain delivered values;
// implementations over externally mutable storage do not give that guarantee.
package traversal

// Consumer receives a delivered element with its zero-based position.
type Consumer[V any] func(index int, value V)

// IndexedValueIterator traverses a fixed sequence once, delivering every
// element together with its index.
type IndexedValueIterator[V any] interface {
	// Size returns the total element count fixed at construction.
	Size() int

	// ZeroValue returns the sentinel supplied at construction; it is never delivered.
	ZeroValue() V

	// HasNext returns true if at least one element remains.
	HasNext() bool

	// Next delivers the element at the cursor to consumer and advances the cursor.
	// Once exhausted it returns an *OutOfBoundsError, leaving the iterator unchanged.
	Next(consumer Consumer[V]) error
}
