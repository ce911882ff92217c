package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/viant/traversal/internal/harness"
)

// SaveResultCSV saves workload results to a CSV file
func SaveResultCSV(results []harness.Result, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{"Case", "Size", "Iterations", "NsPerOp", "AllocsPerOp", "BytesPerOp", "Checksum"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Case,
			strconv.Itoa(r.Size),
			strconv.Itoa(r.Iterations),
			strconv.FormatInt(r.NsPerOp, 10),
			strconv.FormatInt(r.AllocsPerOp, 10),
			strconv.FormatInt(r.BytesPerOp, 10),
			strconv.FormatFloat(r.Checksum, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}
