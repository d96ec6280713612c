package windows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"

	"github.com/sahinbingol85/tez-online-appendix/dataset"
)

func TestCollectSeries_SortsByYear(t *testing.T) {
	table := &dataset.Table{Columns: []dataset.Column{
		{Label: dataset.Label{Name: "YEAR"}, Cells: []string{"1940", "1931", "1935"}},
		{Label: dataset.Label{Name: "TOTAL"}, Cells: []string{"30", "10", "20"}},
	}}

	series := collectSeries(table, 0, []int{1})
	require.Len(t, series, 1)
	assert.Equal(t, "TOTAL", series[0].label)
	assert.Equal(t, plotter.XYs{{X: 1931, Y: 10}, {X: 1935, Y: 20}, {X: 1940, Y: 30}}, series[0].points)
}

func TestCollectSeries_OneSeriesPerColumn(t *testing.T) {
	table := &dataset.Table{Columns: []dataset.Column{
		{Label: dataset.Label{Name: "YEAR"}, Cells: []string{"1931"}},
		{Label: dataset.Label{Name: "TOTAL"}, Cells: []string{"30"}},
		{Label: dataset.Label{Name: "MALE"}, Cells: []string{"16"}},
		{Label: dataset.Label{Name: "FEMALE"}, Cells: []string{"14"}},
	}}

	series := collectSeries(table, 0, []int{1, 2, 3})
	require.Len(t, series, 3)
	assert.Equal(t, "TOTAL", series[0].label)
	assert.Equal(t, "MALE", series[1].label)
	assert.Equal(t, "FEMALE", series[2].label)
}

func TestCollectSeries_SkipsUnparsableCells(t *testing.T) {
	table := &dataset.Table{Columns: []dataset.Column{
		{Label: dataset.Label{Name: "YEAR"}, Cells: []string{"1931", "n/a", "1940"}},
		{Label: dataset.Label{Name: "TOTAL"}, Cells: []string{"10", "20", ""}},
	}}

	series := collectSeries(table, 0, []int{1})
	require.Len(t, series, 1)
	assert.Equal(t, plotter.XYs{{X: 1931, Y: 10}}, series[0].points)
}

func TestRenderSeriesChart_ProducesImage(t *testing.T) {
	series := []chartSeries{
		{label: "TOTAL", points: plotter.XYs{{X: 1931, Y: 120}, {X: 1935, Y: 180}, {X: 1940, Y: 150}}},
		{label: "MALE", points: plotter.XYs{{X: 1931, Y: 60}, {X: 1935, Y: 95}, {X: 1940, Y: 80}}},
	}

	img, err := renderSeriesChart("NATIONAL", series)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Greater(t, bounds.Dx(), 0)
	assert.Greater(t, bounds.Dy(), 0)
}

func TestRenderSeriesChart_EmptySeriesStillRenders(t *testing.T) {
	img, err := renderSeriesChart("KONYA", []chartSeries{{label: "TOTAL"}})
	require.NoError(t, err)
	assert.NotNil(t, img)
}
