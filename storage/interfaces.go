package storage

import "land-acreage/models"

// TableWriter is the interface any output backend must satisfy.
type TableWriter interface {
	Write(t *models.Table) error
	Close() error
}

// TableReader loads a listings table from a source.
type TableReader interface {
	Read() (*models.Table, error)
}
