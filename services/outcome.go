package services

import (
	"errors"
	"fmt"

	"land-acreage/models"
)

// Outcome is the per-row result of an extraction step: either a matched value
// or NotFound, which removes the row from the table.
type Outcome[T any] struct {
	Value T
	Found bool
}

// Matched wraps a value that was successfully extracted.
func Matched[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v, Found: true}
}

// NotFound marks a row that yielded no value.
func NotFound[T any]() Outcome[T] {
	return Outcome[T]{}
}

// ErrMissingColumn is returned when a stage needs a column the table lacks.
var ErrMissingColumn = errors.New("missing required column")

// StageError reports which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func requireColumns(t *models.Table, cols ...string) error {
	if t == nil {
		return errors.New("nil table")
	}
	for _, c := range cols {
		if !t.HasColumn(c) {
			return fmt.Errorf("%w %q", ErrMissingColumn, c)
		}
	}
	return nil
}

func errNilRow(i int) error {
	return fmt.Errorf("row %d: nil listing", i)
}

// filterRows runs extract over every row, keeps the rows whose outcome was
// found and hands each kept row its value. Relative order is preserved.
func filterRows[T any](
	rows []*models.Listing,
	extract func(*models.Listing) Outcome[T],
	keep func(*models.Listing, T),
) ([]*models.Listing, error) {
	kept := make([]*models.Listing, 0, len(rows))
	for i, r := range rows {
		if r == nil {
			return nil, errNilRow(i)
		}
		out := extract(r)
		if !out.Found {
			continue
		}
		keep(r, out.Value)
		kept = append(kept, r)
	}
	return kept, nil
}
