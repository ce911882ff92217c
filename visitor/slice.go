package visitor

import (
	"fmt"
	"reflect"

	"github.com/viant/traversal"
)

// SliceVisitorOf creates a Visitor for []E; values are traversed in place.
func SliceVisitorOf[E any](values []E) Visitor[int, E] {
	return func(f func(key int, element E) (bool, error)) error {
		var zero E
		return visit[E](traversal.ArrayIteratorOf(zero, values), f)
	}
}

// AnySliceVisitorOf dynamically creates a slice visitor from any slice value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), nil
	case []bool:
		return AnyTypedSliceVisitorOf[bool](actual), nil
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), nil
	case []int64:
		return AnyTypedSliceVisitorOf[int64](actual), nil
	case []uint64:
		return AnyTypedSliceVisitorOf[uint64](actual), nil
	case []byte:
		return AnyTypedSliceVisitorOf[byte](actual), nil
	case []interface{}:
		return SliceVisitorOf[interface{}](actual), nil
	case []float64:
		return AnyTypedSliceVisitorOf[float64](actual), nil
	case []float32:
		return AnyTypedSliceVisitorOf[float32](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Slice {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	return func(f func(key int, element any) (bool, error)) error {
		return visit[any](&ReflectSliceIterator{data: val, size: val.Len()}, f)
	}, nil
}

// AnyTypedSliceVisitorOf return visitor
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		var zero E
		return visit[E](traversal.ArrayIteratorOf(zero, slice), func(key int, element E) (bool, error) {
			return f(key, element)
		})
	}
}

var _ traversal.IndexedValueIterator[any] = (*ReflectSliceIterator)(nil)

// ReflectSliceIterator is an indexed value iterator over a slice of any type, using reflection.
type ReflectSliceIterator struct {
	data  reflect.Value
	index int
	size  int
}

// ReflectSliceIteratorOf creates an iterator over any slice or array value.
func ReflectSliceIteratorOf(value interface{}) (*ReflectSliceIterator, error) {
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	return &ReflectSliceIterator{data: val, size: val.Len()}, nil
}

func (it *ReflectSliceIterator) Size() int      { return it.size }
func (it *ReflectSliceIterator) ZeroValue() any { return nil }
func (it *ReflectSliceIterator) HasNext() bool  { return it.index < it.size }

// Next delivers the element at the cursor as interface{}.
func (it *ReflectSliceIterator) Next(consumer traversal.Consumer[any]) error {
	if it.index >= it.size {
		return &traversal.OutOfBoundsError{Index: it.index, Size: it.size}
	}
	if consumer != nil {
		consumer(it.index, it.data.Index(it.index).Interface())
	}
	it.index++
	return nil
}
