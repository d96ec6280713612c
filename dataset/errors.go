package dataset

import (
	"errors"
	"fmt"
)

// Common errors returned by the dataset package.
var (
	// ErrNotFound is returned when a data file is absent from the data
	// folder. Views surface it as a warning rather than a failure.
	ErrNotFound = errors.New("data file not found")

	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrRaggedColumns is returned when table columns disagree on row count.
	ErrRaggedColumns = errors.New("columns have differing row counts")

	// ErrEmptyData is returned when a workbook holds no usable rows.
	ErrEmptyData = errors.New("no usable rows in workbook")

	// ErrNoCategoryColumn is returned when no column label matches the
	// category vocabulary (province/level).
	ErrNoCategoryColumn = errors.New("no category column found")

	// ErrNoSeriesColumns is returned when neither the series vocabulary
	// nor the single-numeric-column fallback yields anything to plot.
	ErrNoSeriesColumns = errors.New("no series columns found")
)

// LoadError reports a data file that exists but could not be parsed into
// a table. It wraps the underlying cause.
type LoadError struct {
	File string
	Err  error
}

// Error returns the error message.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.File, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}
