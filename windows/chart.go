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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sahinbingol85/tez-online-appendix/dataset"
)

// chartSeries is one plotted line: a legend label and its year-ordered points.
type chartSeries struct {
	label  string
	points plotter.XYs
}

// collectSeries extracts one point series per value column, ordered by the
// year column. Rows whose year or value cell does not parse are skipped.
func collectSeries(t *dataset.Table, yearCol int, valueCols []int) []chartSeries {
	series := make([]chartSeries, 0, len(valueCols))
	for _, col := range valueCols {
		pts := make(plotter.XYs, 0, t.RowCount())
		for row := 0; row < t.RowCount(); row++ {
			year, ok := dataset.ParseNumber(t.Columns[yearCol].Cells[row])
			if !ok {
				continue
			}
			value, ok := dataset.ParseNumber(t.Columns[col].Cells[row])
			if !ok {
				continue
			}
			pts = append(pts, plotter.XY{X: year, Y: value})
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
		series = append(series, chartSeries{label: t.Columns[col].Label.Flat(), points: pts})
	}
	return series
}

// seriesPalette colors the Total/Male/Female lines apart.
var seriesPalette = []color.RGBA{
	{R: 63, G: 81, B: 181, A: 255}, // indigo
	{R: 216, G: 67, B: 21, A: 255}, // deep orange
	{R: 0, G: 137, B: 123, A: 255}, // teal
}

const (
	chartWidth  = 7 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// renderSeriesChart draws the population time series for one category value
// and returns the rendered image.
func renderSeriesChart(category string, series []chartSeries) (image.Image, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Zero-Age Population Estimates: %s", category)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Population"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for i, s := range series {
		if len(s.points) == 0 {
			continue
		}

		line, err := plotter.NewLine(s.points)
		if err != nil {
			return nil, fmt.Errorf("failed to build line for %s: %w", s.label, err)
		}
		line.Color = seriesPalette[i%len(seriesPalette)]
		line.Width = vg.Points(2)

		markers, err := plotter.NewScatter(s.points)
		if err != nil {
			return nil, fmt.Errorf("failed to build markers for %s: %w", s.label, err)
		}
		markers.GlyphStyle.Color = seriesPalette[i%len(seriesPalette)]
		markers.GlyphStyle.Radius = vg.Points(2.5)
		markers.GlyphStyle.Shape = draw.CircleGlyph{}

		p.Add(line, markers)
		p.Legend.Add(s.label, line, markers)
	}

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chart image: %w", err)
	}
	return img, nil
}
