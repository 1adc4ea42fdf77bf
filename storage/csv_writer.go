package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"land-acreage/models"
)

// CSVWriter writes a processed listings table to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path.
// Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	return &CSVWriter{file: f, writer: csv.NewWriter(f)}, nil
}

// Write writes the header and every row, in column order.
func (c *CSVWriter) Write(t *models.Table) error {
	return WriteTableTo(c.writer, t)
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		_ = c.file.Close()
		return fmt.Errorf("csv: flush: %w", err)
	}
	return c.file.Close()
}

// WriteTable writes t as CSV to w.
func WriteTable(w io.Writer, t *models.Table) error {
	return WriteTableTo(csv.NewWriter(w), t)
}

// WriteTableTo writes t through an existing csv.Writer and flushes it.
func WriteTableTo(w *csv.Writer, t *models.Table) error {
	if t == nil {
		return fmt.Errorf("csv: nil table")
	}
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	row := make([]string, len(t.Columns))
	for i, l := range t.Rows {
		for j, col := range t.Columns {
			row[j] = l.Field(col)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	return w.Error()
}
