// Package visitor bridges indexed value iterators and callback visitors.
// It offers slice visitors backed by traversal.ArrayIterator, a reflection
// slice iterator, and a struct field iterator built on xunsafe.
package visitor
