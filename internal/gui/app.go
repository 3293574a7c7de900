//go:build !nogui

// Package gui provides the desktop front end for browsd. It shows the
// same directory listing and file preview as the terminal interface,
// backed by the same lister and loader.
package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"browsd/internal/config"
	"browsd/internal/files"
	"browsd/internal/log"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config

	lister *files.Lister
	loader *files.Loader

	dir     string
	entries []files.Entry

	pathLabel    *widget.Label
	list         *widget.List
	previewTitle *widget.Label
	preview      *widget.Label
	status       *widget.Label
}

// NewApp creates the desktop browser pointed at the configured start
// directory.
func NewApp(cfg *config.Config) *App {
	return newApp(cfg, app.NewWithID("io.github.browsd"))
}

func newApp(cfg *config.Config, fyneApp fyne.App) *App {
	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		lister:  files.NewLister(cfg),
		loader:  files.NewLoader(cfg),
	}
	a.mainWindow = fyneApp.NewWindow("browsd")
	a.setupMainWindow()

	start, err := cfg.StartDir()
	if err != nil {
		log.LogError(err, "Cannot resolve start directory")
		start = "."
	}
	a.showDir(start)
	return a
}

func (a *App) setupMainWindow() {
	a.pathLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.MoveUpIcon(), a.goUp),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), a.refresh),
	)

	a.list = widget.NewList(
		func() int {
			return len(a.entries)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FileIcon()), widget.NewLabel("entry"))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(a.entries) {
				return
			}
			entry := a.entries[id]
			row := obj.(*fyne.Container)
			icon := row.Objects[0].(*widget.Icon)
			label := row.Objects[1].(*widget.Label)
			if entry.IsDir {
				icon.SetResource(theme.FolderIcon())
			} else {
				icon.SetResource(theme.FileIcon())
			}
			label.SetText(entry.Label())
		},
	)
	a.list.OnSelected = func(id widget.ListItemID) {
		a.list.Unselect(id)
		if id < 0 || id >= len(a.entries) {
			return
		}
		a.open(a.entries[id])
	}

	a.previewTitle = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.preview = widget.NewLabel("")
	a.preview.TextStyle = fyne.TextStyle{Monospace: true}
	a.preview.Wrapping = fyne.TextWrapOff

	previewPane := container.NewBorder(a.previewTitle, nil, nil, nil, container.NewScroll(a.preview))

	split := container.NewHSplit(a.list, previewPane)
	split.SetOffset(0.4)

	a.status = widget.NewLabel("")

	content := container.NewBorder(
		container.NewBorder(nil, nil, toolbar, nil, a.pathLabel),
		a.status,
		nil, nil,
		split,
	)

	a.mainWindow.SetContent(content)
	a.mainWindow.Resize(fyne.NewSize(900, 600))
}

// showDir lists path and replaces the visible entries. A failed listing
// leaves the previous one in place.
func (a *App) showDir(path string) {
	listing, err := a.lister.List(path)
	if err != nil {
		log.LogError(err, "Directory listing failed")
		return
	}
	a.dir = listing.Dir
	a.entries = listing.Entries
	a.pathLabel.SetText(listing.Dir)
	dirs := 0
	for _, e := range a.entries {
		if e.IsDir {
			dirs++
		}
	}
	a.status.SetText(fmt.Sprintf("%d dirs, %d files", dirs, len(a.entries)-dirs))
	a.list.UnselectAll()
	a.list.Refresh()
	a.list.ScrollToTop()
}

func (a *App) open(entry files.Entry) {
	if entry.IsDir {
		a.showDir(entry.Path)
		return
	}
	a.showFile(entry.Path)
}

// showFile loads path into the preview pane. A failed load leaves the
// previous contents in place.
func (a *App) showFile(path string) {
	content, err := a.loader.Load(path)
	if err != nil {
		log.LogError(err, "File load failed")
		return
	}
	a.previewTitle.SetText(content.Path)
	a.preview.SetText(content.Text)
}

func (a *App) goUp() {
	parent := filepath.Dir(a.dir)
	if parent == a.dir {
		return
	}
	a.showDir(parent)
}

func (a *App) refresh() {
	if a.dir == "" {
		return
	}
	a.showDir(a.dir)
}

// Run starts the GUI application
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

// GetMainWindow returns the main application window
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// ShowError displays an error dialog
func (a *App) ShowError(err error) {
	if err == nil {
		return
	}
	dialog.ShowError(err, a.mainWindow)
}

// ShowInfo displays an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}

// StartGUI launches the desktop browser and blocks until its window
// closes.
func StartGUI(cfg *config.Config) error {
	NewApp(cfg).Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
