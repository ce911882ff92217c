package traversal

import "iter"

// ForEach drives it to exhaustion, delivering every remaining element to consumer.
func ForEach[V any](it IndexedValueIterator[V], consumer Consumer[V]) error {
	for it.HasNext() {
		if err := it.Next(consumer); err != nil {
			return err
		}
	}
	return nil
}

// All returns a range-over-func view of the remaining elements.
// Ranging consumes the iterator; breaking out leaves the rest undelivered.
func All[V any](it IndexedValueIterator[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		stop := false
		consumer := func(index int, value V) {
			stop = !yield(index, value)
		}
		for !stop && it.HasNext() {
			if err := it.Next(consumer); err != nil {
				return
			}
		}
	}
}

// Enumerate pushes every element of seq to consumer together with its position, counting from 0.
func Enumerate[T any](seq iter.Seq[T], consumer Consumer[T]) {
	index := 0
	for value := range seq {
		consumer(index, value)
		index++
	}
}
