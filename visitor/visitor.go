package visitor

import "github.com/viant/traversal"

// Visitor is an interface that Visits over pairs of (key, element).
// The Visit method calls the provided callback for each pair.
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// IteratorVisitorOf returns a visitor draining it; the visitor can be used once.
func IteratorVisitorOf[V any](it traversal.IndexedValueIterator[V]) Visitor[int, V] {
	return func(f func(key int, element V) (bool, error)) error {
		return visit(it, f)
	}
}

func visit[V any](it traversal.IndexedValueIterator[V], f func(key int, element V) (bool, error)) error {
	var err error
	continueVisit := true
	consumer := func(index int, value V) {
		continueVisit, err = f(index, value)
	}
	for continueVisit && it.HasNext() {
		if nextErr := it.Next(consumer); nextErr != nil {
			return nextErr
		}
		if err != nil {
			return err
		}
	}
	return nil
}
