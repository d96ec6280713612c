package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// col builds a flat-labeled column for in-memory tables.
func col(name string, cells ...string) Column {
	return Column{Label: Label{Name: name}, Cells: cells}
}

func TestFindCategoryColumn_ProvinceToken(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Year", "1931"),
		col("Province Name", "Istanbul"),
		col("Total", "42"),
	}}

	idx, err := FindCategoryColumn(table)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestFindCategoryColumn_LevelToken(t *testing.T) {
	table := &Table{Columns: []Column{
		col("level", "National"),
		col("Year", "1950"),
	}}

	idx, err := FindCategoryColumn(table)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestFindCategoryColumn_TurkishIL(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Yıl", "1931"),
		col("İl Adı", "Bursa"),
	}}

	idx, err := FindCategoryColumn(table)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestFindCategoryColumn_LatinILIsNotTheTurkishToken(t *testing.T) {
	// "Family" upper-cases to FAMILY, which must not reach the dotted İL.
	table := &Table{Columns: []Column{
		col("Family", "x"),
		col("Illustration", "y"),
	}}

	_, err := FindCategoryColumn(table)
	assert.ErrorIs(t, err, ErrNoCategoryColumn)
}

func TestFindCategoryColumn_MatchesFlattenedPairLabel(t *testing.T) {
	table := &Table{Columns: []Column{
		{Label: Label{Group: "METADATA", Name: "YEAR"}, Cells: []string{"1935"}},
		{Label: Label{Group: "METADATA", Name: "PROVINCE"}, Cells: []string{"Istanbul"}},
	}}

	idx, err := FindCategoryColumn(table)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestFindCategoryColumn_FirstMatchWins(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Level", "National"),
		col("Province", "Istanbul"),
	}}

	idx, err := FindCategoryColumn(table)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestFindSeriesColumns_VocabularyOrder(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Year", "1950"),
		col("Level", "National"),
		col("Female", "10"),
		col("Male", "12"),
		col("Total", "22"),
	}}

	// Column order is Female, Male, Total; the result keeps TOTAL, MALE,
	// FEMALE order regardless.
	assert.Equal(t, []int{4, 3, 2}, FindSeriesColumns(table))
}

func TestFindSeriesColumns_SubsetPresent(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Year", "1950"),
		col("Male", "12"),
	}}

	assert.Equal(t, []int{1}, FindSeriesColumns(table))
}

func TestFindSeriesColumns_ExactMatchOnly(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Total Deaths", "5"),
		col("Male Share", "0.5"),
	}}

	assert.Empty(t, FindSeriesColumns(table))
}

func TestFallbackSeriesColumn_SoleNumericColumn(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Level", "National", "National"),
		col("Year", "1950", "1951"),
		col("Estimate", "123", "456"),
	}}

	idx, ok := FallbackSeriesColumn(table, 0, 1)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestFallbackSeriesColumn_AmbiguousCandidates(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Level", "National"),
		col("Year", "1950"),
		col("Estimate", "123"),
		col("Adjusted", "456"),
	}}

	_, ok := FallbackSeriesColumn(table, 0, 1)
	assert.False(t, ok)
}

func TestFallbackSeriesColumn_NoCandidates(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Level", "National"),
		col("Note", "revised"),
	}}

	_, ok := FallbackSeriesColumn(table, 0)
	assert.False(t, ok)
}

func TestSeriesColumns_PrefersVocabularyThenFallsBack(t *testing.T) {
	withVocab := &Table{Columns: []Column{
		col("Year", "1950"),
		col("Total", "22"),
		col("Estimate", "123"),
	}}
	cols, err := SeriesColumns(withVocab, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, cols)

	fallbackOnly := &Table{Columns: []Column{
		col("Year", "1950"),
		col("Estimate", "123"),
	}}
	cols, err = SeriesColumns(fallbackOnly, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, cols)

	nothing := &Table{Columns: []Column{
		col("Year", "1950"),
		col("Note", "revised"),
	}}
	_, err = SeriesColumns(nothing, 0)
	assert.ErrorIs(t, err, ErrNoSeriesColumns)
}

func TestFindYearColumn(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Level", "National"),
		col(" year ", "1950"),
	}}

	idx, ok := FindYearColumn(table)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = FindYearColumn(&Table{Columns: []Column{col("Level", "x")}})
	assert.False(t, ok)
}

func TestNumericColumn(t *testing.T) {
	table := &Table{Columns: []Column{
		col("Estimate", "12", "", "34.5"),
		col("Note", "12", "n/a"),
		col("Blank", "", ""),
	}}

	assert.True(t, table.NumericColumn(0))
	assert.False(t, table.NumericColumn(1))
	assert.False(t, table.NumericColumn(2))
}
