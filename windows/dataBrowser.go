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
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/sahinbingol85/tez-online-appendix/dataset"
)

// legendMarkdown explains the column groups of the derivation table.
const legendMarkdown = `**Table Legend:**

* **METADATA:** Includes the applied threshold for the specific year/province.
* **STEP 1 (Denominator):** Shows the raw Census Total, the Excluded Rural Population, and the final Reconstructed Urban Population.
* **STEP 2 (Numerator):** Shows the Census Zero-Age count and the Reconstructed Urban Zero-Age count.
* **STEP 3 (Estimation):** Shows the derived Zero-Share Ratio and the Final Estimate.`

// tabData holds information about one open dataset tab.
type tabData struct {
	appendix dataset.Appendix
	table    *dataset.Table // nil while the tab shows a load failure
	tab      *container.TabItem
}

// DataBrowser manages the dataset tabs: opening and refocusing views,
// rebuilding them after a reload, and driving the export dialogs.
type DataBrowser struct {
	w              fyne.Window
	docTabs        *container.DocTabs
	cache          *dataset.Cache
	tabDataMap     map[*container.TabItem]*tabData
	statusCallback func(string)
}

// CreateBrowser wires the browser to the main window's tab container.
func (t *DataBrowser) CreateBrowser(w fyne.Window, docTabs *container.DocTabs, cache *dataset.Cache, statusCallback func(string)) {
	t.w = w
	t.docTabs = docTabs
	t.cache = cache
	t.tabDataMap = make(map[*container.TabItem]*tabData)
	t.statusCallback = statusCallback

	// Clean up the tab bookkeeping when tabs are closed
	t.docTabs.CloseIntercept = func(ti *container.TabItem) {
		delete(t.tabDataMap, ti)
		t.docTabs.Remove(ti)

		if t.docTabs.Selected() != nil {
			t.updateStatusForTab(t.docTabs.Selected())
		} else if t.statusCallback != nil {
			t.statusCallback("Ready")
		}
	}

	t.docTabs.OnSelected = func(ti *container.TabItem) {
		t.updateStatusForTab(ti)
	}
}

// SetCache swaps the dataset cache after the data folder changes.
func (t *DataBrowser) SetCache(cache *dataset.Cache) {
	t.cache = cache
}

// updateStatusForTab reports the dimensions of the selected dataset tab.
func (t *DataBrowser) updateStatusForTab(ti *container.TabItem) {
	if ti == nil || t.statusCallback == nil {
		return
	}

	data, exists := t.tabDataMap[ti]
	if !exists {
		t.statusCallback("Ready")
		return
	}
	if data.table == nil {
		t.statusCallback("Error loading " + data.appendix.File)
		return
	}

	t.statusCallback(fmt.Sprintf("%s (%d columns x %d rows)",
		data.appendix.Title, data.table.ColumnCount(), data.table.RowCount()))
}

// OpenHome shows the study summary tab, creating it on first use.
func (t *DataBrowser) OpenHome() {
	for _, item := range t.docTabs.Items {
		if item.Text == "Home" {
			t.docTabs.Select(item)
			return
		}
	}

	tab := container.NewTabItem("Home", newHomeView())
	t.docTabs.Append(tab)
	t.docTabs.Select(tab)
}

// OpenAppendix shows the tab for one dataset, creating it on first use.
func (t *DataBrowser) OpenAppendix(a dataset.Appendix) {
	for item, data := range t.tabDataMap {
		if data.appendix.File == a.File {
			t.docTabs.Select(item)
			return
		}
	}

	data := &tabData{appendix: a}
	tab := container.NewTabItem(a.Title, t.buildAppendixView(a, data))
	data.tab = tab
	t.tabDataMap[tab] = data

	t.docTabs.Append(tab)
	t.docTabs.Select(tab)
	t.updateStatusForTab(tab)
}

// ReloadOpenTabs rebuilds every dataset tab from the current cache, after a
// refresh or a data folder change.
func (t *DataBrowser) ReloadOpenTabs() {
	for item, data := range t.tabDataMap {
		item.Content = t.buildAppendixView(data.appendix, data)
	}
	t.docTabs.Refresh()
	t.updateStatusForTab(t.docTabs.Selected())
}

// buildAppendixView loads the dataset and assembles the tab body. Load
// failures become inline notices so the rest of the application stays
// usable.
func (t *DataBrowser) buildAppendixView(a dataset.Appendix, data *tabData) fyne.CanvasObject {
	tbl, err := t.cache.Load(a.File, a.Shape)
	if err != nil {
		data.table = nil
		return t.loadFailureView(a, err)
	}
	data.table = tbl

	switch {
	case a.Filterable:
		return t.filteredView(a, tbl)
	case a.Chartable:
		return t.chartableView(a, tbl)
	default:
		return t.plainView(a, tbl)
	}
}

// loadFailureView renders the tab body for a dataset that could not load.
// A missing workbook is an expected state and stays inline; a parse failure
// additionally raises an error dialog.
func (t *DataBrowser) loadFailureView(a dataset.Appendix, err error) fyne.CanvasObject {
	log.Printf("Failed to load %s: %v", a.File, err)

	var message string
	if errors.Is(err, dataset.ErrNotFound) {
		message = fmt.Sprintf("File '%s' not found. Please ensure it is in the data folder.", a.File)
	} else {
		message = fmt.Sprintf("Could not read '%s': %v", a.File, err)
		dialog.ShowError(err, t.w)
	}
	if t.statusCallback != nil {
		t.statusCallback("Error loading " + a.File)
	}

	warning := widget.NewLabel(message)
	warning.Wrapping = fyne.TextWrapWord
	warning.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewVBox(introText(a), widget.NewSeparator(), warning)
}

// plainView is the basic dataset tab: description, exports, table.
func (t *DataBrowser) plainView(a dataset.Appendix, tbl *dataset.Table) fyne.CanvasObject {
	top := container.NewVBox(introText(a), t.exportBar(a, tbl), widget.NewSeparator())
	return container.NewBorder(top, nil, nil, nil, newDatasetGrid(tbl))
}

// filteredView adds the category filter of the derivation appendix: a
// province selector over the distinct values of the resolved category
// column, with the table legend beneath the filtered rows. When no category
// column resolves the full table renders with a warning instead.
func (t *DataBrowser) filteredView(a dataset.Appendix, tbl *dataset.Table) fyne.CanvasObject {
	exports := t.exportBar(a, tbl)

	catCol, err := dataset.FindCategoryColumn(tbl)
	if err != nil {
		log.Printf("No category column in %s: %v", a.File, err)
		warning := widget.NewLabel("Could not automatically detect 'Province' column for filtering. Showing full table below:")
		warning.Wrapping = fyne.TextWrapWord
		top := container.NewVBox(introText(a), exports, widget.NewSeparator(), warning)
		return container.NewBorder(top, nil, nil, nil, newDatasetGrid(tbl))
	}

	showing := widget.NewLabel("")
	showing.TextStyle = fyne.TextStyle{Bold: true}

	gridHolder := container.NewStack()

	selector := widget.NewSelect(dataset.DistinctValues(tbl, catCol), func(value string) {
		filtered, err := dataset.FilterByCategory(tbl, catCol, value)
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		showing.SetText(fmt.Sprintf("Showing details for: %s", value))
		gridHolder.Objects = []fyne.CanvasObject{newDatasetGrid(filtered)}
		gridHolder.Refresh()
		if t.statusCallback != nil {
			t.statusCallback(fmt.Sprintf("Showing details for: %s (%d rows)", value, filtered.RowCount()))
		}
	})
	selector.PlaceHolder = "Select Province"
	if len(selector.Options) > 0 {
		selector.SetSelected(selector.Options[0])
	}

	legend := widget.NewRichTextFromMarkdown(legendMarkdown)
	legend.Wrapping = fyne.TextWrapWord

	top := container.NewVBox(
		introText(a),
		exports,
		widget.NewSeparator(),
		container.NewHBox(widget.NewLabel("Select Province:"), selector),
		showing,
	)
	return container.NewBorder(top, legend, nil, nil, gridHolder)
}

// chartableView adds the collapsed time-series panel of the estimates
// appendix beneath the table.
func (t *DataBrowser) chartableView(a dataset.Appendix, tbl *dataset.Table) fyne.CanvasObject {
	top := container.NewVBox(introText(a), t.exportBar(a, tbl), widget.NewSeparator())
	visualize := widget.NewAccordion(widget.NewAccordionItem("Visualize Data", t.buildChartPanel(tbl)))
	return container.NewBorder(top, visualize, nil, nil, newDatasetGrid(tbl))
}

// buildChartPanel assembles the interactive chart: a level/province selector
// and the rendered population time series for the selection. Column
// resolution runs on a flattened, upper-cased view of the table the way the
// published estimates sheet is normalized before plotting.
func (t *DataBrowser) buildChartPanel(tbl *dataset.Table) fyne.CanvasObject {
	folded := dataset.UppercaseHeaders(dataset.FlattenHeaders(tbl))

	hint := widget.NewLabel("Select a level (province or national) below to visualize the zero-age population estimates over time.")
	hint.Wrapping = fyne.TextWrapWord

	catCol, catErr := dataset.FindCategoryColumn(folded)
	yearCol, yearOK := dataset.FindYearColumn(folded)
	if catErr != nil || !yearOK {
		warning := widget.NewLabel(fmt.Sprintf("Column mismatch! Needed 'YEAR' and 'LEVEL/PROVINCE'. Found: %v", folded.FlatLabels()))
		warning.Wrapping = fyne.TextWrapWord
		return container.NewVBox(hint, warning)
	}

	seriesCols, err := dataset.SeriesColumns(folded, catCol, yearCol)
	if err != nil {
		warning := widget.NewLabel("Could not find data columns (TOTAL, MALE, FEMALE) to plot.")
		warning.Wrapping = fyne.TextWrapWord
		return container.NewVBox(hint, warning)
	}

	chartHolder := container.NewStack()

	selector := widget.NewSelect(dataset.DistinctValues(folded, catCol), func(value string) {
		filtered, err := dataset.FilterByCategory(folded, catCol, value)
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}

		img, err := renderSeriesChart(value, collectSeries(filtered, yearCol, seriesCols))
		if err != nil {
			log.Printf("Chart rendering failed for %s: %v", value, err)
			dialog.ShowError(err, t.w)
			return
		}

		pic := canvas.NewImageFromImage(img)
		pic.FillMode = canvas.ImageFillContain
		pic.SetMinSize(fyne.NewSize(700, 400))
		chartHolder.Objects = []fyne.CanvasObject{pic}
		chartHolder.Refresh()
	})
	selector.PlaceHolder = "Select Level / Province"
	if len(selector.Options) > 0 {
		selector.SetSelected(selector.Options[0])
	}

	return container.NewVBox(
		hint,
		container.NewHBox(widget.NewLabel("Select Level / Province:"), selector),
		chartHolder,
	)
}

// introText renders the short dataset description shown above each table.
func introText(a dataset.Appendix) fyne.CanvasObject {
	rich := widget.NewRichTextFromMarkdown(a.Intro)
	rich.Wrapping = fyne.TextWrapWord
	return rich
}

// exportBar offers the dataset in every export format.
func (t *DataBrowser) exportBar(a dataset.Appendix, tbl *dataset.Table) fyne.CanvasObject {
	return container.NewHBox(
		widget.NewButtonWithIcon("Download CSV", theme.DownloadIcon(), func() {
			t.exportData(a, tbl, FormatCSV)
		}),
		widget.NewButtonWithIcon("Download JSON", theme.DownloadIcon(), func() {
			t.exportData(a, tbl, FormatJSON)
		}),
		widget.NewButtonWithIcon("Download Parquet", theme.DownloadIcon(), func() {
			t.exportData(a, tbl, FormatParquet)
		}),
	)
}

// newDatasetGrid renders a table with one bold header row per header level.
// Grouped tables show the forward-filled group row above the leaf row, the
// way the workbook displays its merged header cells.
func newDatasetGrid(tbl *dataset.Table) fyne.CanvasObject {
	headerRows := 1
	if tbl.Grouped() {
		headerRows = 2
	}

	grid := widget.NewTable(
		func() (int, int) {
			return headerRows + tbl.RowCount(), tbl.ColumnCount()
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("template")
			label.Wrapping = fyne.TextTruncate
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)

			switch {
			case headerRows == 2 && id.Row == 0:
				label.Text = groupHeaderText(tbl, id.Col)
				label.TextStyle = fyne.TextStyle{Bold: true}
			case id.Row == headerRows-1:
				label.Text = tbl.Columns[id.Col].Label.Name
				label.TextStyle = fyne.TextStyle{Bold: true}
			default:
				label.Text = tbl.Columns[id.Col].Cells[id.Row-headerRows]
				label.TextStyle = fyne.TextStyle{}
			}
			label.Refresh()
		},
	)

	for col := 0; col < tbl.ColumnCount(); col++ {
		grid.SetColumnWidth(col, columnWidth(tbl.Columns[col].Label.Name, tbl.Columns[col].Cells))
	}

	return grid
}

// groupHeaderText blanks repeated group labels so each merged group reads
// once, like the workbook's merged cells.
func groupHeaderText(tbl *dataset.Table, col int) string {
	group := tbl.Columns[col].Label.Group
	if col > 0 && tbl.Columns[col-1].Label.Group == group {
		return ""
	}
	return group
}

// exportData drives the save dialog and writes the chosen format.
func (t *DataBrowser) exportData(a dataset.Appendix, tbl *dataset.Table, format ExportFormat) {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		if writer == nil {
			// User cancelled
			return
		}
		defer writer.Close()

		filePath := writer.URI().Path()

		// Show progress indicator in a goroutine while the export runs
		c := make(chan bool)
		go func(c chan bool) {
			pbi := widget.NewProgressBarInfinite()
			progressDialog := dialog.NewCustomWithoutButtons("Exporting...", pbi, t.w)
			progressDialog.Resize(fyne.NewSize(300, 100))
			progressDialog.Show()
			pbi.Start()
			for {
				select {
				case <-c:
					progressDialog.Hide()
					pbi.Stop()
					return
				default:
					time.Sleep(time.Millisecond * 500)
				}
			}
		}(c)

		var exportErr error
		switch format {
		case FormatCSV:
			exportErr = ExportToCSV(tbl, a.ExportIndex, filePath)
		case FormatJSON:
			exportErr = ExportToJSON(tbl, filePath)
		case FormatParquet:
			exportErr = ExportToParquet(tbl, filePath)
		}

		// Signal progress dialog to stop
		c <- true

		if exportErr != nil {
			log.Printf("Export of %s failed: %v", a.File, exportErr)
			dialog.ShowError(fmt.Errorf("export failed: %w", exportErr), t.w)
		} else {
			dialog.ShowInformation("Export Successful",
				fmt.Sprintf("Data exported successfully to:\n%s", filePath), t.w)
		}
	}, t.w)

	// Seed the deterministic export name for this dataset and format
	saveDialog.SetFileName(a.ExportStem + extensionFor(format))

	saveDialog.Show()
}
