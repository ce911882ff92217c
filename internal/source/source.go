// Package source supplies backing values for measurement runs.
package source

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/francoispqt/gojay"
)

// Random returns size pseudo-random doubles in [0, 1), reproducible for a given seed.
func Random(size int, seed uint64) []float64 {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	values := make([]float64, size)
	for i := range values {
		values[i] = rnd.Float64()
	}
	return values
}

// Floats is a JSON array of numbers.
type Floats []float64

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray
func (f *Floats) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var value *float64
	if err := dec.Float64Null(&value); err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("null value at %v", len(*f))
	}
	*f = append(*f, *value)
	return nil
}

// DecodeFloats reads a JSON array of numbers.
// gojay does not terminate on an unclosed array, so the input must end with ']'.
func DecodeFloats(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) < 2 || data[0] != '[' || data[len(data)-1] != ']' {
		return nil, fmt.Errorf("failed to decode values: expected JSON array")
	}
	var values Floats
	if err := gojay.UnmarshalJSONArray(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode values: %w", err)
	}
	return values, nil
}

// Cycle returns size values taken from values in order, wrapping around as needed.
func Cycle(values []float64, size int) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to cycle")
	}
	result := make([]float64, size)
	for i := range result {
		result[i] = values[i%len(values)]
	}
	return result, nil
}
