package visitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/traversal"
	"github.com/viant/traversal/traversaltest"
)

func TestSliceVisitorOf(t *testing.T) {
	mySlice := []interface{}{"a", 1, 3.14, true}

	visit := SliceVisitorOf[any](mySlice)
	for i := 0; i < 2; i++ {
		clone := []interface{}{}
		var indexes []int
		err := visit(func(index int, element interface{}) (bool, error) {
			indexes = append(indexes, index)
			clone = append(clone, element)
			return true, nil // continue iteration
		})
		assert.NoError(t, err)
		assert.EqualValues(t, mySlice, clone)
		assert.EqualValues(t, []int{0, 1, 2, 3}, indexes)
	}
}

func TestSliceVisitorOf_Stop(t *testing.T) {
	visit := SliceVisitorOf([]int{1, 2, 3, 4})
	var visited []int
	err := visit(func(index int, element int) (bool, error) {
		visited = append(visited, element)
		return index < 1, nil
	})
	assert.NoError(t, err)
	assert.EqualValues(t, []int{1, 2}, visited)

	failure := errors.New("failure")
	visited = nil
	err = visit(func(index int, element int) (bool, error) {
		visited = append(visited, element)
		if index == 2 {
			return true, failure
		}
		return true, nil
	})
	assert.ErrorIs(t, err, failure)
	assert.EqualValues(t, []int{1, 2, 3}, visited)
}

func TestAnySliceVisitorOf(t *testing.T) {
	type item struct{ Name string }
	var testCases = []struct {
		description string
		value       interface{}
		expect      []interface{}
		hasError    bool
	}{
		{description: "strings", value: []string{"a", "b"}, expect: []interface{}{"a", "b"}},
		{description: "floats", value: []float64{1.5, 2.5}, expect: []interface{}{1.5, 2.5}},
		{description: "bytes", value: []byte("ab"), expect: []interface{}{byte('a'), byte('b')}},
		{description: "interfaces", value: []interface{}{1, "x"}, expect: []interface{}{1, "x"}},
		{description: "reflection", value: []item{{Name: "a"}, {Name: "b"}}, expect: []interface{}{item{Name: "a"}, item{Name: "b"}}},
		{description: "empty reflection", value: []item{}, expect: nil},
		{description: "not a slice", value: map[string]int{}, hasError: true},
	}

	for _, testCase := range testCases {
		visit, err := AnySliceVisitorOf(testCase.value)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		var actual []interface{}
		err = visit(func(index int, element any) (bool, error) {
			assert.Equal(t, len(actual), index, testCase.description)
			actual = append(actual, element)
			return true, nil
		})
		assert.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestReflectSliceIterator(t *testing.T) {
	it, err := ReflectSliceIteratorOf([2]string{"a", "b"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 2, it.Size())
	assert.Nil(t, it.ZeroValue())
	traversaltest.CheckValue[any](t, it, 0, "a")
	traversaltest.CheckValue[any](t, it, 1, "b")
	traversaltest.CheckEnd[any](t, it)

	_, err = ReflectSliceIteratorOf(1)
	assert.Error(t, err)
}

func TestIteratorVisitorOf(t *testing.T) {
	it := traversal.NewArrayIterator("", "a", "b", "c")
	visit := IteratorVisitorOf[string](it)
	var visited []string
	err := visit(func(index int, element string) (bool, error) {
		visited = append(visited, element)
		return index == 0, nil
	})
	assert.NoError(t, err)
	assert.EqualValues(t, []string{"a", "b"}, visited)

	err = visit(func(index int, element string) (bool, error) {
		assert.Equal(t, 2, index)
		assert.Equal(t, "c", element)
		return true, nil
	})
	assert.NoError(t, err)
	traversaltest.CheckEnd[string](t, it)
}

func TestSliceVisitorOf_AllocationsIndependentOfLength(t *testing.T) {
	visitAllocs := func(size int) float64 {
		visit := SliceVisitorOf(make([]float64, size))
		sum := 0.0
		f := func(index int, element float64) (bool, error) {
			sum += element
			return true, nil
		}
		return testing.AllocsPerRun(20, func() {
			_ = visit(f)
		})
	}
	small := visitAllocs(8)
	assert.Equal(t, small, visitAllocs(4096))

	anyAllocs := func(size int) float64 {
		visit, err := AnySliceVisitorOf(make([]int, size))
		assert.NoError(t, err)
		f := func(index int, element any) (bool, error) { return true, nil }
		return testing.AllocsPerRun(20, func() {
			_ = visit(f)
		})
	}
	assert.Equal(t, anyAllocs(8), anyAllocs(4096))
}
