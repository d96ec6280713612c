// Copyright 2026 Şahin Bingöl
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset provides the table model and spreadsheet access for the
// online appendix. Tables are loaded once from pre-computed workbooks and
// treated as read-only; every downstream operation (filtering, header
// flattening, label folding) returns a new table view instead of mutating
// its input.
package dataset

import (
	"strconv"
	"strings"
)

// HeaderShape states how the first sheet rows of a workbook are interpreted.
type HeaderShape int

const (
	// FlatHeader marks a sheet whose first row holds the column labels.
	FlatHeader HeaderShape = iota
	// TwoRowHeader marks a sheet whose first row holds group labels and
	// whose second row holds the leaf labels beneath them.
	TwoRowHeader
)

// String returns the string representation of a HeaderShape.
func (s HeaderShape) String() string {
	switch s {
	case FlatHeader:
		return "flat"
	case TwoRowHeader:
		return "two-row"
	default:
		return "unknown"
	}
}

// headerRows reports how many sheet rows the shape consumes as labels.
func (s HeaderShape) headerRows() int {
	if s == TwoRowHeader {
		return 2
	}
	return 1
}

// flatSeparator joins the two parts of a grouped label when a consumer
// needs a single flat string (CSV headers, column matching, display).
const flatSeparator = " - "

// Label is a column header. Flat tables fill only Name; hierarchical
// tables carry the group row in Group and the leaf row in Name.
type Label struct {
	Group string
	Name  string
}

// Flat returns the single-string form of the label. Grouped labels join
// both parts with a fixed separator so the same input always flattens to
// the same string. A label merged across both header rows keeps its single
// part.
func (l Label) Flat() string {
	switch {
	case l.Group == "":
		return l.Name
	case l.Name == "":
		return l.Group
	default:
		return l.Group + flatSeparator + l.Name
	}
}

// Column is one table column: a header label and the cell values beneath
// it, as formatted display strings taken from the workbook.
type Column struct {
	Label Label
	Cells []string
}

// Table is an immutable, column-ordered view of one loaded sheet.
// All columns hold the same number of cells.
type Table struct {
	Columns []Column
}

// NewTable builds a table from columns, verifying the row counts agree.
func NewTable(cols []Column) (*Table, error) {
	for i := 1; i < len(cols); i++ {
		if len(cols[i].Cells) != len(cols[0].Cells) {
			return nil, ErrRaggedColumns
		}
	}
	return &Table{Columns: cols}, nil
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// Label returns the header label of a column.
func (t *Table) Label(col int) (Label, error) {
	if col < 0 || col >= len(t.Columns) {
		return Label{}, ErrInvalidColumn
	}
	return t.Columns[col].Label, nil
}

// FlatLabels returns every column label in flattened single-string form,
// in column order.
func (t *Table) FlatLabels() []string {
	labels := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		labels[i] = c.Label.Flat()
	}
	return labels
}

// Cell returns the display value at (row, col).
func (t *Table) Cell(row, col int) (string, error) {
	if col < 0 || col >= len(t.Columns) {
		return "", ErrInvalidColumn
	}
	if row < 0 || row >= len(t.Columns[col].Cells) {
		return "", ErrInvalidRow
	}
	return t.Columns[col].Cells[row], nil
}

// Row returns all cell values of one row, in column order.
func (t *Table) Row(row int) ([]string, error) {
	if row < 0 || row >= t.RowCount() {
		return nil, ErrInvalidRow
	}
	cells := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cells[i] = c.Cells[row]
	}
	return cells, nil
}

// Grouped reports whether any column carries a group label, i.e. whether
// the table was loaded with a two-row header.
func (t *Table) Grouped() bool {
	for _, c := range t.Columns {
		if c.Label.Group != "" {
			return true
		}
	}
	return false
}

// NumericColumn reports whether a column holds numbers: at least one
// non-blank cell, and every non-blank cell parses as one.
func (t *Table) NumericColumn(col int) bool {
	if col < 0 || col >= len(t.Columns) {
		return false
	}
	seen := false
	for _, cell := range t.Columns[col].Cells {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if _, ok := ParseNumber(cell); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// ParseNumber parses a cell's display value as a number. Blank cells are
// not numbers.
func ParseNumber(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
