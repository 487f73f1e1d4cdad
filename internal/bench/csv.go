package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the persisted tabular record's column set. The time column is
// seconds with 3 decimal places.
var csvHeader = []string{"Combination", "Found", "Rejected", "New", "Time (s)"}

// WriteCSV writes the combination table to w, one row per triple, in the
// order given. Callers wanting the review ordering pass SortByNew output.
func WriteCSV(w io.Writer, results []CombinationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Label,
			strconv.Itoa(r.Found),
			strconv.Itoa(r.Rejected),
			strconv.Itoa(r.New),
			fmt.Sprintf("%.3f", r.Elapsed.Seconds()),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the combination table to a file at path, creating or
// truncating it.
func SaveCSV(path string, results []CombinationResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create stats file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, results); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}
