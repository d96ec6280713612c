package dataset

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// ToDelimitedText serializes the table as CSV: one header row of flattened
// labels, then the data rows in table order. With preserveIndex a leading
// column carries the 0-based row index under an empty header cell, the
// form in which the hierarchical appendix is published. Equal tables
// produce byte-identical output.
func ToDelimitedText(t *Table, preserveIndex bool) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := t.FlatLabels()
	if preserveIndex {
		header = append([]string{""}, header...)
	}
	_ = w.Write(header)

	for row := 0; row < t.RowCount(); row++ {
		record := make([]string, 0, len(t.Columns)+1)
		if preserveIndex {
			record = append(record, strconv.Itoa(row))
		}
		for _, c := range t.Columns {
			record = append(record, c.Cells[row])
		}
		_ = w.Write(record)
	}

	w.Flush()
	return buf.Bytes()
}
