package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook writes an xlsx file with the given rows on Sheet1.
// Nil entries leave the cell unset.
func writeWorkbook(t *testing.T, dir, name string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, name)))
	require.NoError(t, f.Close())
}

// writeDerivationWorkbook writes a workbook in the published two-row
// header layout, group cells merged across their columns:
//
//	A1: METADATA (merged A1:C1)   D1: STEP 1 (merged D1:E1)   F1: STEP 3
//	A2: PROVINCE  B2: YEAR  C2: THRESHOLD  D2: CENSUS TOTAL  E2: URBAN POPULATION  F2: FINAL ESTIMATE
func writeDerivationWorkbook(t *testing.T, dir, name string) {
	t.Helper()
	f := excelize.NewFile()
	set := func(cell string, v any) {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}

	set("A1", "METADATA")
	set("D1", "STEP 1 (DENOMINATOR)")
	set("F1", "STEP 3 (ESTIMATION)")
	require.NoError(t, f.MergeCell("Sheet1", "A1", "C1"))
	require.NoError(t, f.MergeCell("Sheet1", "D1", "E1"))

	for i, label := range []string{"PROVINCE", "YEAR", "THRESHOLD", "CENSUS TOTAL", "URBAN POPULATION", "FINAL ESTIMATE"} {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		require.NoError(t, err)
		set(cell, label)
	}

	rows := [][]any{
		{"Istanbul", 1935, 0.6, 883599, 530159, 15904},
		{"Istanbul", 1940, 0.6, 991237, 594742, 17842},
		{"Ankara", 1935, 0.5, 398046, 199023, 5970},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+3)
			require.NoError(t, err)
			set(cell, v)
		}
	}

	require.NoError(t, f.SaveAs(filepath.Join(dir, name)))
	require.NoError(t, f.Close())
}

func TestFileLoader_FlatHeader(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "flat.xlsx", [][]any{
		{"Province", "Year", "Deaths"},
		{"Istanbul", 1931, 4321},
		{"Ankara", 1931, 1234},
	})

	table, err := NewFileLoader(dir).Load("flat.xlsx", FlatHeader)
	require.NoError(t, err)

	assert.Equal(t, 3, table.ColumnCount())
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, []string{"Province", "Year", "Deaths"}, table.FlatLabels())
	assert.False(t, table.Grouped())

	cell, err := table.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "Ankara", cell)
	cell, err = table.Cell(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "4321", cell)
}

func TestFileLoader_TwoRowHeaderForwardFillsGroups(t *testing.T) {
	dir := t.TempDir()
	writeDerivationWorkbook(t, dir, "derivation.xlsx")

	table, err := NewFileLoader(dir).Load("derivation.xlsx", TwoRowHeader)
	require.NoError(t, err)

	assert.Equal(t, 6, table.ColumnCount())
	assert.Equal(t, 3, table.RowCount())
	assert.True(t, table.Grouped())

	labels := table.FlatLabels()
	assert.Equal(t, "METADATA - PROVINCE", labels[0])
	assert.Equal(t, "METADATA - YEAR", labels[1])
	assert.Equal(t, "METADATA - THRESHOLD", labels[2])
	assert.Equal(t, "STEP 1 (DENOMINATOR) - CENSUS TOTAL", labels[3])
	assert.Equal(t, "STEP 1 (DENOMINATOR) - URBAN POPULATION", labels[4])
	assert.Equal(t, "STEP 3 (ESTIMATION) - FINAL ESTIMATE", labels[5])

	row, err := table.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ankara", "1935", "0.5", "398046", "199023", "5970"}, row)
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := NewFileLoader(t.TempDir()).Load("absent.xlsx", FlatHeader)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileLoader_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.xlsx"), []byte("not a workbook"), 0o644))

	_, err := NewFileLoader(dir).Load("broken.xlsx", FlatHeader)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "broken.xlsx", loadErr.File)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileLoader_EmptyWorkbook(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(filepath.Join(dir, "empty.xlsx")))
	require.NoError(t, f.Close())

	_, err := NewFileLoader(dir).Load("empty.xlsx", FlatHeader)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestFileLoader_LoadTwiceYieldsEqualTables(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "flat.xlsx", [][]any{
		{"Level", "Year", "Total"},
		{"National", 1950, 123456},
	})

	l := NewFileLoader(dir)
	first, err := l.Load("flat.xlsx", FlatHeader)
	require.NoError(t, err)
	second, err := l.Load("flat.xlsx", FlatHeader)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildTable_PadsRaggedRowsAndSkipsEmptyOnes(t *testing.T) {
	table, err := buildTable([][]string{
		{"A", "B", "C"},
		{"1", "2"},
		{"", "", ""},
		{"3", "4", "5"},
	}, FlatHeader)
	require.NoError(t, err)

	assert.Equal(t, 2, table.RowCount())
	cell, err := table.Cell(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "", cell)
	cell, err = table.Cell(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "5", cell)
}

func TestBuildTable_LabelMergedAcrossBothHeaderRows(t *testing.T) {
	table, err := buildTable([][]string{
		{"Province", "STEP 1", ""},
		{"", "Census", "Urban"},
		{"Bursa", "1", "2"},
	}, TwoRowHeader)
	require.NoError(t, err)

	assert.Equal(t, []string{"Province", "STEP 1 - Census", "STEP 1 - Urban"}, table.FlatLabels())
}

func TestBuildTable_EmptySheet(t *testing.T) {
	_, err := buildTable(nil, FlatHeader)
	assert.ErrorIs(t, err, ErrEmptyData)

	_, err = buildTable([][]string{{"only one header row"}}, TwoRowHeader)
	assert.ErrorIs(t, err, ErrEmptyData)
}
