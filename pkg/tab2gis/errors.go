package tab2gis

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrConfiguration indicates invalid options or a table lacking a
// configured column. It aborts the run.
var ErrConfiguration = errors.New("configuration error")

// ErrEmptyResult indicates that no figure survived the run.
var ErrEmptyResult = errors.New("no valid geometries were generated")

// TableError represents a failure that stopped one table.
type TableError struct {
	Source string
	Table  string
	Err    error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table %q (%s): %v", e.Table, e.Source, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// NewTableError creates a new TableError.
func NewTableError(source, table string, err error) *TableError {
	return &TableError{
		Source: source,
		Table:  table,
		Err:    err,
	}
}

// FigureError represents a figure dropped during geometry construction.
type FigureError struct {
	Table  string
	Figure string
	Err    error
}

func (e *FigureError) Error() string {
	return fmt.Sprintf("failed to build figure %q in table %q: %v", e.Figure, e.Table, e.Err)
}

func (e *FigureError) Unwrap() error {
	return e.Err
}
