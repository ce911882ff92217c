package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	values := Random(100, 7)
	require.Len(t, values, 100)
	for _, value := range values {
		assert.True(t, value >= 0 && value < 1, "%v", value)
	}
	assert.Equal(t, values, Random(100, 7))
	assert.NotEqual(t, values, Random(100, 8))
	assert.Empty(t, Random(0, 7))
}

func TestDecodeFloats(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []float64
		hasError    bool
	}{
		{description: "numbers", input: `[10.0, 20, 30.5]`, expect: []float64{10, 20, 30.5}},
		{description: "empty", input: `[]`, expect: nil},
		{description: "not numbers", input: `["a"]`, hasError: true},
		{description: "padded", input: " [1, -2]\n", expect: []float64{1, -2}},
		{description: "not array", input: `{"a":1}`, hasError: true},
		{description: "unterminated", input: `[1,2`, hasError: true},
		{description: "null element", input: `[null]`, hasError: true},
		{description: "null between numbers", input: `[1,null,2]`, hasError: true},
		{description: "trailing data", input: `[1,2] x`, hasError: true},
		{description: "blank", input: "  ", hasError: true},
	}

	for _, testCase := range testCases {
		values, err := DecodeFloats(strings.NewReader(testCase.input))
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, values, testCase.description)
	}
}

func TestCycle(t *testing.T) {
	values, err := Cycle([]float64{1, 2}, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1, 2, 1}, values)

	_, err = Cycle(nil, 3)
	assert.Error(t, err)
}
