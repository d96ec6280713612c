package dataset

import "strings"

// categoryTokens are matched case-insensitively as substrings of flattened
// labels to find the category (province / level) column. İL is the Turkish
// header form and is matched under the Turkish case mapping.
var categoryTokens = []string{"PROVINCE", "LEVEL", "İL"}

// seriesVocabulary names the chart series columns. Matching is exact on
// the upper-cased flattened label, and results keep this order no matter
// how the workbook orders its columns.
var seriesVocabulary = []string{"TOTAL", "MALE", "FEMALE"}

// yearLabel is the ordering column of the time-series chart.
const yearLabel = "YEAR"

// FindCategoryColumn returns the first column whose flattened label
// contains one of the category tokens, scanning columns left to right.
// Unicode upper-casing maps the dotted İ to itself, so "İl" and "İL"
// reach the Turkish token while Latin labels that merely contain "il"
// (Family, Available) never do. Ambiguity is not an error: the first
// match wins. No match returns ErrNoCategoryColumn.
func FindCategoryColumn(t *Table) (int, error) {
	for i, c := range t.Columns {
		label := strings.ToUpper(strings.TrimSpace(c.Label.Flat()))
		for _, token := range categoryTokens {
			if strings.Contains(label, token) {
				return i, nil
			}
		}
	}
	return 0, ErrNoCategoryColumn
}

// FindSeriesColumns returns the columns whose labels exactly match the
// series vocabulary, in vocabulary order. Missing members are absent, so
// the result may be empty.
func FindSeriesColumns(t *Table) []int {
	var cols []int
	for _, word := range seriesVocabulary {
		if i, ok := FindColumn(t, word); ok {
			cols = append(cols, i)
		}
	}
	return cols
}

// FallbackSeriesColumn returns the sole numeric column outside the
// excluded ones. Zero or several numeric candidates mean there is nothing
// unambiguous to plot, and ok is false.
func FallbackSeriesColumn(t *Table, exclude ...int) (int, bool) {
	skip := make(map[int]bool, len(exclude))
	for _, i := range exclude {
		skip[i] = true
	}
	candidate := -1
	for i := range t.Columns {
		if skip[i] || !t.NumericColumn(i) {
			continue
		}
		if candidate >= 0 {
			return 0, false
		}
		candidate = i
	}
	if candidate < 0 {
		return 0, false
	}
	return candidate, true
}

// SeriesColumns resolves what the chart draws: the vocabulary columns in
// vocabulary order when any exist, otherwise the single-numeric-column
// fallback. ErrNoSeriesColumns when neither applies.
func SeriesColumns(t *Table, exclude ...int) ([]int, error) {
	if cols := FindSeriesColumns(t); len(cols) > 0 {
		return cols, nil
	}
	if col, ok := FallbackSeriesColumn(t, exclude...); ok {
		return []int{col}, nil
	}
	return nil, ErrNoSeriesColumns
}

// FindYearColumn locates the chart's ordering column.
func FindYearColumn(t *Table) (int, bool) {
	return FindColumn(t, yearLabel)
}

// FindColumn locates the column whose flattened label, upper-cased and
// trimmed, equals label. The label argument is expected in upper case.
func FindColumn(t *Table, label string) (int, bool) {
	for i, c := range t.Columns {
		if strings.ToUpper(strings.TrimSpace(c.Label.Flat())) == label {
			return i, true
		}
	}
	return 0, false
}
