// Package harness measures indexed traversal workloads with testing.Benchmark.
package harness

import (
	"fmt"
	"testing"
)

// Config represents a measurement run configuration.
// Values is called once per size; Cases defaults to Cases().
type Config struct {
	Sizes   []int
	Modulus int
	Values  func(size int) ([]float64, error)
	Cases   []Case
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes were empty")
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("invalid size: %v", size)
		}
	}
	if c.Modulus <= 0 {
		return fmt.Errorf("invalid modulus: %v", c.Modulus)
	}
	if c.Values == nil {
		return fmt.Errorf("values provider was empty")
	}
	return nil
}

// Result represents a single workload measurement
type Result struct {
	Case        string
	Size        int
	Iterations  int
	NsPerOp     int64
	AllocsPerOp int64
	BytesPerOp  int64
	Checksum    float64
}

// Run measures every case for every size
func Run(cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cases := cfg.Cases
	if len(cases) == 0 {
		cases = Cases()
	}
	var results []Result
	for _, size := range cfg.Sizes {
		values, err := cfg.Values(size)
		if err != nil {
			return nil, fmt.Errorf("failed to supply %v values: %w", size, err)
		}
		if len(values) != size {
			return nil, fmt.Errorf("expected %v values, got %v", size, len(values))
		}
		for _, c := range cases {
			results = append(results, Measure(c, values, cfg.Modulus))
		}
	}
	return results, nil
}

// Measure benchmarks a single case over values
func Measure(c Case, values []float64, modulus int) Result {
	checksum := c.Workload(values, modulus)
	benchmark := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			c.Workload(values, modulus)
		}
	})
	return Result{
		Case:        c.Name,
		Size:        len(values),
		Iterations:  benchmark.N,
		NsPerOp:     benchmark.NsPerOp(),
		AllocsPerOp: benchmark.AllocsPerOp(),
		BytesPerOp:  benchmark.AllocedBytesPerOp(),
		Checksum:    checksum,
	}
}

// Select returns cases matching names, in the given order.
func Select(names []string) ([]Case, error) {
	if len(names) == 0 {
		return Cases(), nil
	}
	index := make(map[string]Case)
	for _, c := range Cases() {
		index[c.Name] = c
	}
	var result []Case
	for _, name := range names {
		c, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("unknown case: %v", name)
		}
		result = append(result, c)
	}
	return result, nil
}
