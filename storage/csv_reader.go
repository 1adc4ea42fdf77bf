package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"land-acreage/models"
)

const utf8BOM = "\ufeff"

// CSVReader reads a listings table from a CSV file whose header row names
// the columns.
type CSVReader struct {
	path string
}

// NewCSVReader creates a reader for the file at path.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// Read loads the whole file.
func (r *CSVReader) Read() (*models.Table, error) {
	return ReadTable(r.path)
}

// ReadTable loads the CSV file at path.
func ReadTable(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	t, err := ReadTableFrom(f)
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}
	return t, nil
}

// ReadTableFrom parses CSV data from r. Every row must have as many fields
// as the header.
func ReadTableFrom(r io.Reader) (*models.Table, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("csv: empty input, no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows []*models.Listing
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row %d: %w", len(rows)+1, err)
		}

		fields := make(map[string]string, len(header))
		for i, col := range header {
			fields[col] = record[i]
		}
		rows = append(rows, models.NewListing(fields))
	}

	return models.NewTable(header, rows), nil
}
