package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/viant/traversal/internal/harness"
	"github.com/viant/traversal/internal/source"
	"go.uber.org/zap"
)

var (
	sizes       = flag.String("sizes", "100,200,300,500", "Comma separated backing sizes")
	modulus     = flag.Int("modulus", 3, "Accumulate values at positions divisible by modulus")
	seed        = flag.Uint64("seed", 1, "Random value seed")
	input       = flag.String("input", "", "JSON array of values to use instead of random values")
	cases       = flag.String("case", "", "Comma separated workloads to run (default all)")
	resultsFile = flag.String("results", "", "CSV file to write results to")
	debug       = flag.Bool("debug", false, "Use development logging")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(logger *zap.Logger) error {
	cfg, err := newConfig()
	if err != nil {
		return err
	}
	logger.Info("running workloads",
		zap.Ints("sizes", cfg.Sizes),
		zap.Int("modulus", cfg.Modulus),
		zap.Int("cases", len(cfg.Cases)),
		zap.String("input", *input))

	results, err := harness.Run(*cfg)
	if err != nil {
		return err
	}
	for _, result := range results {
		logger.Info("workload measured",
			zap.String("case", result.Case),
			zap.Int("size", result.Size),
			zap.Int("iterations", result.Iterations),
			zap.Int64("nsPerOp", result.NsPerOp),
			zap.Int64("allocsPerOp", result.AllocsPerOp),
			zap.Int64("bytesPerOp", result.BytesPerOp),
			zap.Float64("checksum", result.Checksum))
	}
	if *resultsFile != "" {
		if err := SaveResultCSV(results, *resultsFile); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
		logger.Info("results saved", zap.String("file", *resultsFile))
	}
	return nil
}

func newConfig() (*harness.Config, error) {
	parsedSizes, err := parseSizes(*sizes)
	if err != nil {
		return nil, err
	}
	selected, err := harness.Select(splitList(*cases))
	if err != nil {
		return nil, err
	}
	values, err := valuesProvider(*input, *seed)
	if err != nil {
		return nil, err
	}
	return &harness.Config{Sizes: parsedSizes, Modulus: *modulus, Values: values, Cases: selected}, nil
}

func valuesProvider(input string, seed uint64) (func(size int) ([]float64, error), error) {
	if input == "" {
		return func(size int) ([]float64, error) {
			return source.Random(size, seed), nil
		}, nil
	}
	file, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	decoded, err := source.DecodeFloats(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", input, err)
	}
	return func(size int) ([]float64, error) {
		return source.Cycle(decoded, size)
	}, nil
}

func parseSizes(text string) ([]int, error) {
	var result []int
	for _, item := range splitList(text) {
		size, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", item, err)
		}
		result = append(result, size)
	}
	return result, nil
}

func splitList(text string) []string {
	var result []string
	for _, item := range strings.Split(text, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
