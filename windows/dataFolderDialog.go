package windows

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DataFolderDialog lets the user pick the directory the appendix workbooks
// are read from. Folders navigate; the listed .xlsx entries only preview
// what the current folder contains.
type DataFolderDialog struct {
	dialog      dialog.Dialog
	window      fyne.Window
	callback    func(string, error)
	fileList    *widget.List
	files       []string
	homeDir     string
	currentPath string
	pathLabel   *widget.Label
}

func NewDataFolderDialog(w fyne.Window, startPath string, callback func(string, error)) *DataFolderDialog {
	fd := &DataFolderDialog{
		window:   w,
		callback: callback,
		files:    make([]string, 0),
	}

	// Get home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	fd.homeDir = homeDir

	fd.currentPath = startPath
	if abs, err := filepath.Abs(startPath); err == nil {
		fd.currentPath = abs
	}

	return fd
}

func (fd *DataFolderDialog) Show() {
	// Create path label showing current directory
	fd.pathLabel = widget.NewLabel(fd.currentPath)
	fd.pathLabel.Wrapping = fyne.TextTruncate
	fd.pathLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Create entry list
	fd.fileList = widget.NewList(
		func() int {
			return len(fd.files)
		},
		func() fyne.CanvasObject {
			icon := widget.NewIcon(theme.FolderIcon())
			label := widget.NewLabel("template")
			return container.NewHBox(icon, label)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			cont := obj.(*fyne.Container)
			icon := cont.Objects[0].(*widget.Icon)
			label := cont.Objects[1].(*widget.Label)

			fileName := fd.files[id]
			label.SetText(fileName)

			fullPath := filepath.Join(fd.currentPath, fileName)
			fileInfo, err := os.Stat(fullPath)
			if err == nil && fileInfo.IsDir() {
				icon.SetResource(theme.FolderIcon())
			} else {
				icon.SetResource(theme.DocumentIcon())
			}
		},
	)

	// Folders navigate on selection; workbook entries are informational
	fd.fileList.OnSelected = func(id widget.ListItemID) {
		fileName := fd.files[id]
		fullPath := filepath.Join(fd.currentPath, fileName)

		fileInfo, err := os.Stat(fullPath)
		if err != nil {
			return
		}

		if fileInfo.IsDir() {
			fd.currentPath = fullPath
			fd.loadDirectory()
		}
		fd.fileList.UnselectAll()
	}

	// Create navigation buttons
	homeButton := widget.NewButtonWithIcon("Home", theme.HomeIcon(), func() {
		fd.currentPath = fd.homeDir
		fd.loadDirectory()
	})

	upButton := widget.NewButtonWithIcon("Up", theme.NavigateBackIcon(), func() {
		parent := filepath.Dir(fd.currentPath)
		if parent != fd.currentPath {
			fd.currentPath = parent
			fd.loadDirectory()
		}
	})

	refreshButton := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		fd.loadDirectory()
	})

	// Create filter info
	filterInfo := widget.NewLabel("Showing: .xlsx workbooks and directories")
	filterInfo.TextStyle = fyne.TextStyle{Italic: true}

	// Navigation toolbar
	navToolbar := container.NewBorder(
		nil, nil,
		container.NewHBox(homeButton, upButton, refreshButton),
		nil,
		fd.pathLabel,
	)

	// Instructions
	instructions := widget.NewRichTextFromMarkdown("**Choose the folder that holds the appendix workbooks (.xlsx)**\n\nClick a folder to open it; the workbooks listed below preview what the current folder contains.")
	instructions.Wrapping = fyne.TextWrapWord

	// Main content with better spacing
	content := container.NewBorder(
		container.NewVBox(
			instructions,
			widget.NewSeparator(),
			navToolbar,
			widget.NewSeparator(),
			filterInfo,
		),
		nil, nil, nil,
		fd.fileList,
	)

	// Create the custom dialog
	fd.dialog = dialog.NewCustomConfirm("Select Data Folder", "Use This Folder", "Cancel", content, func(confirmed bool) {
		if !confirmed {
			return
		}
		fd.callback(fd.currentPath, nil)
	}, fd.window)

	// Make it much larger
	fd.dialog.Resize(fyne.NewSize(800, 600))

	// Load initial directory
	fd.loadDirectory()

	fd.dialog.Show()
}

func (fd *DataFolderDialog) loadDirectory() {
	entries, err := os.ReadDir(fd.currentPath)
	if err != nil {
		dialog.ShowError(err, fd.window)
		return
	}

	fd.files = make([]string, 0)

	// Add directories first
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			fd.files = append(fd.files, entry.Name())
		}
	}

	// Add .xlsx workbook previews
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".xlsx") {
			fd.files = append(fd.files, entry.Name())
		}
	}

	fd.pathLabel.SetText(fd.currentPath)
	fd.fileList.Refresh()
}
