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

package windows

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/sahinbingol85/tez-online-appendix/dataset"
)

// ExportFormat represents the supported export formats
type ExportFormat int

const (
	FormatCSV ExportFormat = iota
	FormatJSON
	FormatParquet
)

// extensionFor returns the file extension for an export format.
func extensionFor(format ExportFormat) string {
	switch format {
	case FormatCSV:
		return ".csv"
	case FormatJSON:
		return ".json"
	case FormatParquet:
		return ".parquet"
	}
	return ""
}

// ExportToCSV writes the table as CSV. preserveIndex adds a leading 0-based
// row index column under an empty header cell, matching how the hierarchical
// appendix is published.
func ExportToCSV(t *dataset.Table, preserveIndex bool, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(dataset.ToDelimitedText(t, preserveIndex)); err != nil {
		return fmt.Errorf("failed to write CSV data: %w", err)
	}

	return nil
}

// ExportToJSON writes the table as an indented JSON array of row objects
// keyed by flattened column label. Cells that parse as numbers encode as
// numbers, blank cells as nulls.
func ExportToJSON(t *dataset.Table, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	labels := t.FlatLabels()
	records := make([]map[string]interface{}, 0, t.RowCount())
	for row := 0; row < t.RowCount(); row++ {
		record := make(map[string]interface{}, len(labels))
		for col, label := range labels {
			record[label] = typedCell(t.Columns[col].Cells[row])
		}
		records = append(records, record)
	}

	// Encode to JSON with indentation
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// typedCell maps a display cell onto its JSON value: numbers stay numbers,
// blanks become null, everything else stays a string.
func typedCell(cell string) interface{} {
	if v, ok := dataset.ParseNumber(cell); ok {
		return v
	}
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	return cell
}

// ExportToParquet converts the table to Arrow and writes it through the
// Parquet writer with Snappy compression.
func ExportToParquet(t *dataset.Table, filePath string) error {
	table := buildArrowTable(t)
	defer table.Release()

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	// Create Parquet writer properties
	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(table.Schema(), file, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	defer writer.Close()

	if err := writer.WriteTable(table, table.NumRows()); err != nil {
		return fmt.Errorf("failed to write table to parquet: %w", err)
	}

	return nil
}

// buildArrowTable converts a dataset table to an Arrow table. Numeric
// columns become nullable float64 with blanks as nulls, everything else
// becomes utf8.
func buildArrowTable(t *dataset.Table) arrow.Table {
	pool := memory.NewGoAllocator()
	labels := t.FlatLabels()

	fields := make([]arrow.Field, t.ColumnCount())
	columns := make([]arrow.Column, t.ColumnCount())

	for col := 0; col < t.ColumnCount(); col++ {
		numeric := t.NumericColumn(col)
		if numeric {
			fields[col] = arrow.Field{Name: labels[col], Type: arrow.PrimitiveTypes.Float64, Nullable: true}
		} else {
			fields[col] = arrow.Field{Name: labels[col], Type: arrow.BinaryTypes.String, Nullable: true}
		}

		builder := array.NewBuilder(pool, fields[col].Type)
		defer builder.Release()

		for _, cell := range t.Columns[col].Cells {
			if numeric {
				if v, ok := dataset.ParseNumber(cell); ok {
					builder.(*array.Float64Builder).Append(v)
				} else {
					builder.AppendNull()
				}
			} else {
				builder.(*array.StringBuilder).Append(cell)
			}
		}

		arr := builder.NewArray()
		defer arr.Release()

		chunked := arrow.NewChunked(fields[col].Type, []arrow.Array{arr})
		columns[col] = *arrow.NewColumn(fields[col], chunked)
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewTable(schema, columns, int64(t.RowCount()))
}
