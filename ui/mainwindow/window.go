// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"time"

	"pod-studio/internal/app"
	"pod-studio/internal/design"
	"pod-studio/internal/placement"
	"pod-studio/internal/product"
	"pod-studio/internal/version"
	"pod-studio/ui/canvas"
	"pod-studio/ui/panels"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyLastDir     = "lastDirectory"
	prefKeyLastProject = "lastProject"
	prefKeyDebounceMs  = "debounceMs"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	canvas    *canvas.DesignCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	win := fyneApp.NewWindow("POD Studio")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.applyPreferences()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewDesignCanvas(placement.DefaultSurface())
	mw.canvas.OnGeometryChange(func(g placement.OverlayGeometry) {
		mw.state.Session.SetGeometry(g)
		mw.state.SetModified(true)
	})

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.canvas)
	mw.sidePanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		mw.canvas,
	)
	split.SetOffset(0.3)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil, nil,
		split,
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(1100, 700))
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", mw.onNewProject),
		fyne.NewMenuItem("Open Project...", mw.onOpenProject),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open Artwork...", mw.onOpenArtwork),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Project", mw.onSaveProject),
		fyne.NewMenuItem("Save Project As...", mw.onSaveProjectAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Mockup...", mw.onExportMockup),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	var productItems []*fyne.MenuItem
	for _, name := range product.ListSpecs() {
		name := name
		productItems = append(productItems, fyne.NewMenuItem(
			product.GetSpec(name).DisplayName(),
			func() { mw.onSelectProduct(name) },
		))
	}
	productMenu := fyne.NewMenu("Product", productItems...)

	placementMenu := fyne.NewMenu("Placement",
		fyne.NewMenuItem("Reset Placement", mw.onResetPlacement),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Validate Now", mw.onValidateNow),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, productMenu, placementMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventProjectLoaded, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.SetTitle("POD Studio - " + filepath.Base(path))
			mw.updateStatus("Project loaded: " + path)
			mw.app.Preferences().SetString(prefKeyLastProject, path)
		}
		mw.canvas.SetGeometry(mw.state.Session.Geometry())
	})

	mw.state.On(app.EventProjectSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.SetTitle("POD Studio - " + filepath.Base(path))
			mw.updateStatus("Saved " + path)
			mw.app.Preferences().SetString(prefKeyLastProject, path)
		}
	})

	mw.state.On(app.EventPlacementChanged, func(data interface{}) {
		res, ok := data.(placement.Result)
		if !ok {
			return
		}
		mw.canvas.SetGeometry(mw.state.Session.Geometry())
		mw.canvas.SetResult(res)
		mw.updateStatus(res.Feedback)
	})

	mw.state.On(app.EventArtworkLoaded, func(data interface{}) {
		if art, ok := data.(*design.Artwork); ok {
			mw.updateStatus("Loaded artwork " + filepath.Base(art.Path))
		}
	})

	mw.state.On(app.EventMockupRendered, func(data interface{}) {
		mw.updateStatus("Mockup rendered")
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		if modified, ok := data.(bool); ok && modified {
			title := mw.Title()
			if len(title) > 0 && title[len(title)-1] != '*' {
				mw.SetTitle(title + " *")
			}
		}
	})
}

// applyPreferences applies saved preferences to the session.
func (mw *MainWindow) applyPreferences() {
	if ms := mw.app.Preferences().IntWithFallback(prefKeyDebounceMs, 0); ms > 0 {
		mw.state.Session.SetDebounce(time.Duration(ms) * time.Millisecond)
	}
}

// RestoreLastProject reopens the most recent project, if any.
func (mw *MainWindow) RestoreLastProject() {
	path := mw.app.Preferences().String(prefKeyLastProject)
	if path == "" {
		return
	}
	if err := mw.state.LoadProject(path); err != nil {
		mw.updateStatus(fmt.Sprintf("Could not reopen %s: %v", filepath.Base(path), err))
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.app.Preferences().SetString(prefKeyLastDir, filepath.Dir(filePath))
}

// Menu action handlers

func (mw *MainWindow) onNewProject() {
	mw.state.ProjectPath = ""
	mw.state.Artwork = nil
	mw.canvas.SetArtwork(nil)
	mw.state.Session.SetProduct(mw.state.Spec)
	mw.state.SetModified(false)
	mw.SetTitle("POD Studio - New Project")
}

func (mw *MainWindow) onOpenProject() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		mw.saveLastDir(path)
		if err := mw.state.LoadProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".podproj"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onOpenArtwork() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		mw.saveLastDir(path)
		if err := mw.state.LoadArtwork(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".tif", ".tiff"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSaveProject() {
	if mw.state.ProjectPath == "" {
		mw.onSaveProjectAs()
		return
	}
	if err := mw.state.SaveProject(mw.state.ProjectPath); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onSaveProjectAs() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if filepath.Ext(path) != ".podproj" {
			path += ".podproj"
		}
		mw.saveLastDir(path)
		if err := mw.state.SaveProject(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFileName("design.podproj")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onSelectProduct(productType string) {
	if err := mw.state.SetProduct(productType); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onExportMockup() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		tplPath := reader.URI().Path()
		reader.Close()
		mw.saveLastDir(tplPath)

		img, err := mw.state.RenderMockup(tplPath)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.promptSaveMockup(img)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) promptSaveMockup(img image.Image) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := png.Encode(writer, img); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Mockup saved to " + filepath.Base(writer.URI().Path()))
	}, mw.Window)
	fd.SetFileName("mockup.png")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onResetPlacement() {
	mw.state.Session.SetProduct(mw.state.Spec)
}

func (mw *MainWindow) onValidateNow() {
	mw.state.Session.Revalidate()
	mw.updateStatus(mw.state.Session.Result().Feedback)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About POD Studio",
		fmt.Sprintf("POD Studio v%s\n\n"+
			"Design placement studio for print-on-demand products.\n\n"+
			"Built: %s\nCommit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
