package dataset

import "strings"

// FilterByCategory returns a new table holding exactly the rows whose cell
// in col equals value. Equality is exact and case-sensitive: the candidate
// values come from the same table, so they already agree on form. An empty
// result is a valid zero-row table.
func FilterByCategory(t *Table, col int, value string) (*Table, error) {
	if col < 0 || col >= len(t.Columns) {
		return nil, ErrInvalidColumn
	}

	var keep []int
	for row, cell := range t.Columns[col].Cells {
		if cell == value {
			keep = append(keep, row)
		}
	}

	cols := make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		cells := make([]string, len(keep))
		for j, row := range keep {
			cells[j] = c.Cells[row]
		}
		cols[i] = Column{Label: c.Label, Cells: cells}
	}
	return &Table{Columns: cols}, nil
}

// FlattenHeaders replaces grouped labels with their flattened form, for
// consumers that expect flat labels. Flattening an already-flat table is
// the identity, so the operation is idempotent.
func FlattenHeaders(t *Table) *Table {
	if !t.Grouped() {
		return t
	}
	cols := make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = Column{
			Label: Label{Name: c.Label.Flat()},
			Cells: c.Cells,
		}
	}
	return &Table{Columns: cols}
}

// DistinctValues returns the unique cell values of a column in order of
// first appearance, for the category selector.
func DistinctValues(t *Table, col int) []string {
	if col < 0 || col >= len(t.Columns) {
		return nil
	}
	seen := make(map[string]bool)
	var values []string
	for _, cell := range t.Columns[col].Cells {
		if seen[cell] {
			continue
		}
		seen[cell] = true
		values = append(values, cell)
	}
	return values
}

// UppercaseHeaders returns a copy of the table with upper-cased, trimmed
// labels, sharing the cell data. This is the one sanctioned label fold,
// applied once before charting. Idempotent.
func UppercaseHeaders(t *Table) *Table {
	cols := make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = Column{
			Label: Label{
				Group: strings.ToUpper(strings.TrimSpace(c.Label.Group)),
				Name:  strings.ToUpper(strings.TrimSpace(c.Label.Name)),
			},
			Cells: c.Cells,
		}
	}
	return &Table{Columns: cols}
}
