/*
PURPOSE:
  Writes benchmark comparisons to a CSV file for spreadsheets and CI artifacts.

REQUIREMENTS:
  Implementation-discovered:
  - One row per matched benchmark, in report order (largest swing first).
  - Status column mirrors the report partitions.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Comparison

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.

USAGE:
  w, err := output.NewCSVWriter("comparison.csv")
  w.Write(comparison)
  w.Close()
*/

package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/daryltucker/libkit/internal/model"
)

// CSVWriter handles writing comparisons to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// CSVHeader is the first row of every comparison export.
var CSVHeader = []string{
	"id", "name", "baseline_hz", "current_hz", "change", "change_pct", "status",
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single comparison row.
func (cw *CSVWriter) Write(c model.Comparison) error {
	record := []string{
		c.ID,
		c.Name,
		strconv.FormatFloat(c.BaselineHz, 'f', 4, 64),
		strconv.FormatFloat(c.CurrentHz, 'f', 4, 64),
		strconv.FormatFloat(c.Change, 'f', 4, 64),
		strconv.FormatFloat(c.ChangePercent, 'f', 2, 64),
		Status(c),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

// Status names the partition a comparison belongs to.
func Status(c model.Comparison) string {
	switch {
	case c.IsRegression:
		return "regression"
	case c.IsImprovement:
		return "improvement"
	default:
		return "stable"
	}
}
