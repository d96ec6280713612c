package windows

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/sahinbingol85/tez-online-appendix/dataset"
)

// MainWindow is the application shell: the navigation tree on the left, the
// dataset tabs in the center, and the status bar along the bottom.
type MainWindow struct {
	a      fyne.App
	w      fyne.Window
	top    fyne.CanvasObject
	left   fyne.CanvasObject
	right  fyne.CanvasObject
	bottom fyne.CanvasObject

	dataDir     string
	loader      *dataset.FileLoader
	cache       *dataset.Cache
	navTree     *NavigationTree
	docTabs     *container.DocTabs
	dataBrowser *DataBrowser
	statusBar   *widget.Label
}

// CreateMainWindow builds and runs the application window.
func CreateMainWindow() *MainWindow {
	var v MainWindow
	v.NewMainWindow()
	return &v
}

// SetStatus updates the status bar text.
func (t *MainWindow) SetStatus(status string) {
	if t.statusBar != nil {
		t.statusBar.SetText(status)
	}
}

// SetDataFolder points the application at a new workbook folder and rebuilds
// every open dataset tab from it.
func (t *MainWindow) SetDataFolder(dir string) {
	t.dataDir = dir
	t.loader = dataset.NewFileLoader(dir)
	t.cache = dataset.NewCache(t.loader)
	t.dataBrowser.SetCache(t.cache)
	t.dataBrowser.ReloadOpenTabs()
	t.SetStatus("Data folder: " + dir)
	log.Printf("Data folder set to %s", dir)
}

// OpenDataFolder lets the user pick the folder holding the workbooks.
func (t *MainWindow) OpenDataFolder() {
	NewDataFolderDialog(t.w, t.dataDir, func(dir string, err error) {
		if err != nil {
			t.SetStatus("Data folder selection failed")
			dialog.ShowError(err, t.w)
			return
		}
		if dir == "" {
			return
		}
		t.SetDataFolder(dir)
	}).Show()
}

// NewMainWindow assembles the window and blocks running the application.
func (t *MainWindow) NewMainWindow() {
	t.a = app.NewWithID("tez-online-appendix")
	t.a.Settings().SetTheme(&CustomTheme{})
	t.w = t.a.NewWindow("Online Appendix: Demographic Data Harmonization in Türkiye")

	t.dataDir = "."
	t.loader = dataset.NewFileLoader(t.dataDir)
	t.cache = dataset.NewCache(t.loader)

	t.statusBar = widget.NewLabel("Ready")
	t.statusBar.TextStyle = fyne.TextStyle{Italic: true}
	t.bottom = container.NewHBox(t.statusBar)

	t.navTree = NewNavigationTree()
	tree := widget.NewTree(
		t.navTree.GetChildren,
		t.navTree.IsBranch,
		func(branch bool) fyne.CanvasObject {
			return NewNodeTemplate()
		},
		t.navTree.UpdateNodeDisplay,
	)
	tree.OnSelected = func(uid widget.TreeNodeID) {
		node := t.navTree.GetNode(uid)
		if node == nil {
			return
		}
		switch node.NodeType {
		case NodeTypeHome:
			t.dataBrowser.OpenHome()
		case NodeTypeSection:
			tree.ToggleBranch(uid)
		case NodeTypeAppendix:
			t.SetStatus("Loading " + node.Appendix.File + "...")
			t.dataBrowser.OpenAppendix(node.Appendix)
		}
	}
	tree.OpenAllBranches()
	t.left = container.NewGridWrap(fyne.NewSize(260, 768), widget.NewCard("", "Navigation", tree))

	tabs := container.NewDocTabs(container.NewTabItem("Home", newHomeView()))
	t.docTabs = tabs

	var db DataBrowser
	db.CreateBrowser(t.w, tabs, t.cache, t.SetStatus)
	t.dataBrowser = &db

	t.top = widget.NewToolbar()
	t.top.(*widget.Toolbar).Append(widget.NewToolbarAction(theme.MenuIcon(), func() {
		if t.left.Visible() {
			t.left.Hide()
		} else {
			t.left.Show()
		}
	}))
	t.top.(*widget.Toolbar).Append(widget.NewToolbarSeparator())
	t.top.(*widget.Toolbar).Append(widget.NewToolbarAction(theme.HomeIcon(), func() {
		t.dataBrowser.OpenHome()
	}))
	t.top.(*widget.Toolbar).Append(widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
		t.OpenDataFolder()
	}))
	t.top.(*widget.Toolbar).Append(widget.NewToolbarAction(theme.ViewRefreshIcon(), func() {
		t.SetStatus("Reloading data...")
		t.cache.Invalidate()
		t.dataBrowser.ReloadOpenTabs()
	}))
	t.top.(*widget.Toolbar).Append(widget.NewToolbarSpacer())
	t.top.(*widget.Toolbar).Append(widget.NewToolbarAction(theme.InfoIcon(), func() {
		dialog.ShowInformation("About",
			"Online Appendix: Demographic Data Harmonization in Türkiye\n\n"+
				"Browse the harmonized mortality statistics, the estimation\n"+
				"derivation tables and the zero-age population estimates, and\n"+
				"export any dataset as CSV, JSON or Parquet.", t.w)
	}))

	t.right = container.NewVBox()

	c := container.NewBorder(t.top, t.bottom, t.left, t.right, widget.NewCard("", "", tabs))
	t.w.SetContent(c)
	t.w.Resize(fyne.NewSize(1200, 780))
	t.w.ShowAndRun()
}
