package harness

import (
	"slices"

	"github.com/viant/traversal"
)

// Workload sums values at positions divisible by modulus.
type Workload func(values []float64, modulus int) float64

// RangeLoop indexes the slice directly.
func RangeLoop(values []float64, modulus int) float64 {
	sum := 0.0
	for index := 0; index < len(values); index++ {
		if index%modulus == 0 {
			sum += values[index]
		}
	}
	return sum
}

// PairLoop pulls a pair per step.
func PairLoop(values []float64, modulus int) float64 {
	sum := 0.0
	it := NewPairIterator(values...)
	for it.HasNext() {
		pair := it.Next()
		if pair.Index%modulus == 0 {
			sum += pair.Value
		}
	}
	return sum
}

// PairPointerLoop pulls a heap allocated pair per step.
func PairPointerLoop(values []float64, modulus int) float64 {
	sum := 0.0
	it := NewPairIterator(values...)
	for it.HasNext() {
		pair := it.NextPointer()
		if pair.Index%modulus == 0 {
			sum += pair.Value
		}
	}
	return sum
}

// PushLoop drives a concrete traversal.ArrayIterator.
func PushLoop(values []float64, modulus int) float64 {
	sum := 0.0
	it := traversal.NewArrayIterator(0.0, values...)
	consumer := func(index int, value float64) {
		if index%modulus == 0 {
			sum += value
		}
	}
	for it.HasNext() {
		_ = it.Next(consumer) // nil: HasNext guards it
	}
	return sum
}

// PushInterfaceLoop drives the iterator through traversal.IndexedValueIterator.
func PushInterfaceLoop(values []float64, modulus int) float64 {
	sum := 0.0
	var it traversal.IndexedValueIterator[float64] = traversal.NewArrayIterator(0.0, values...)
	_ = traversal.ForEach(it, func(index int, value float64) {
		if index%modulus == 0 {
			sum += value
		}
	})
	return sum
}

// EnumerateLoop pushes positions over a plain sequence.
func EnumerateLoop(values []float64, modulus int) float64 {
	sum := 0.0
	traversal.Enumerate(slices.Values(values), func(index int, value float64) {
		if index%modulus == 0 {
			sum += value
		}
	})
	return sum
}

// Case is a named workload.
type Case struct {
	Name     string
	Workload Workload
}

// Cases returns every workload in reporting order.
func Cases() []Case {
	return []Case{
		{Name: "range", Workload: RangeLoop},
		{Name: "pair", Workload: PairLoop},
		{Name: "pair-pointer", Workload: PairPointerLoop},
		{Name: "push", Workload: PushLoop},
		{Name: "push-interface", Workload: PushInterfaceLoop},
		{Name: "enumerate", Workload: EnumerateLoop},
	}
}
