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

package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FileLoader reads appendix workbooks from a data folder. The first sheet
// of each workbook is the dataset; the caller states the header shape.
type FileLoader struct {
	// Dir is the data folder. Empty means the working directory.
	Dir string
}

// NewFileLoader returns a loader rooted at dir.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{Dir: dir}
}

// Load reads the named workbook and interprets its first sheet under the
// given header shape. A missing file satisfies errors.Is(err, ErrNotFound);
// a file that exists but cannot be parsed comes back as a *LoadError
// wrapping the cause.
func (l *FileLoader) Load(name string, shape HeaderShape) (*Table, error) {
	path := filepath.Join(l.Dir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, &LoadError{File: name, Err: err}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{File: name, Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{File: name, Err: ErrEmptyData}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &LoadError{File: name, Err: fmt.Errorf("read sheet %q: %w", sheets[0], err)}
	}

	t, err := buildTable(rows, shape)
	if err != nil {
		return nil, &LoadError{File: name, Err: err}
	}
	return t, nil
}

// buildTable shapes raw sheet rows into a table. Rows can be ragged (the
// reader drops trailing empty cells), so everything is padded to the widest
// row. Fully empty data rows are skipped. Group labels emptied by header
// cell merges are forward-filled so each column sees the group a reader of
// the workbook sees.
func buildTable(rows [][]string, shape HeaderShape) (*Table, error) {
	headerRows := shape.headerRows()
	if len(rows) < headerRows {
		return nil, ErrEmptyData
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	if width == 0 {
		return nil, ErrEmptyData
	}

	labels := make([]Label, width)
	switch shape {
	case TwoRowHeader:
		groups := fillRight(padRow(rows[0], width))
		names := padRow(rows[1], width)
		for i := range labels {
			labels[i] = Label{
				Group: strings.TrimSpace(groups[i]),
				Name:  strings.TrimSpace(names[i]),
			}
		}
	default:
		names := padRow(rows[0], width)
		for i := range labels {
			labels[i] = Label{Name: strings.TrimSpace(names[i])}
		}
	}

	cols := make([]Column, width)
	for i := range cols {
		cols[i].Label = labels[i]
	}
	for _, r := range rows[headerRows:] {
		if emptyRow(r) {
			continue
		}
		r = padRow(r, width)
		for i := range cols {
			cols[i].Cells = append(cols[i].Cells, r[i])
		}
	}
	return NewTable(cols)
}

// padRow returns cells grown or cut to exactly width entries.
func padRow(cells []string, width int) []string {
	if len(cells) >= width {
		return cells[:width]
	}
	out := make([]string, width)
	copy(out, cells)
	return out
}

// fillRight carries each non-blank value across the blank cells that
// follow it, the way a merged header cell spans its columns.
func fillRight(cells []string) []string {
	out := make([]string, len(cells))
	last := ""
	for i, c := range cells {
		if v := strings.TrimSpace(c); v != "" {
			last = v
		}
		out[i] = last
	}
	return out
}

// emptyRow reports whether every cell is blank.
func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
