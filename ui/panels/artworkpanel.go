package panels

import (
	"fmt"

	"pod-studio/internal/app"
	"pod-studio/internal/design"
	"pod-studio/internal/placement"
	"pod-studio/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// ArtworkPanel handles artwork import and quality feedback.
type ArtworkPanel struct {
	state     *app.State
	canvas    *canvas.DesignCanvas
	window    fyne.Window
	container fyne.CanvasObject

	fileLabel    *widget.Label
	sizeLabel    *widget.Label
	qualityLabel *widget.Label
	statusLabel  *widget.Label
}

// NewArtworkPanel creates a new artwork panel.
func NewArtworkPanel(state *app.State, cvs *canvas.DesignCanvas) *ArtworkPanel {
	ap := &ArtworkPanel{
		state:  state,
		canvas: cvs,
	}

	ap.fileLabel = widget.NewLabel("No artwork loaded")
	ap.fileLabel.Wrapping = fyne.TextWrapBreak
	ap.sizeLabel = widget.NewLabel("")
	ap.qualityLabel = widget.NewLabel("")
	ap.statusLabel = widget.NewLabel("")
	ap.statusLabel.Wrapping = fyne.TextWrapWord

	openButton := widget.NewButton("Open Artwork...", func() {
		ap.showOpenDialog()
	})

	ap.container = container.NewVBox(
		widget.NewCard("Artwork", "", container.NewVBox(
			openButton,
			ap.fileLabel,
			ap.sizeLabel,
		)),
		widget.NewCard("Print Quality", "", container.NewVBox(
			ap.qualityLabel,
		)),
		ap.statusLabel,
	)

	state.On(app.EventArtworkLoaded, func(data interface{}) {
		ap.updateArtworkInfo()
		if art, ok := data.(*design.Artwork); ok {
			cvs.SetArtwork(art.Image)
		}
	})
	state.On(app.EventPlacementChanged, func(data interface{}) {
		ap.updateQuality()
	})

	return ap
}

// SetWindow sets the parent window for dialogs.
func (ap *ArtworkPanel) SetWindow(w fyne.Window) {
	ap.window = w
}

// Container returns the panel container.
func (ap *ArtworkPanel) Container() fyne.CanvasObject {
	return ap.container
}

func (ap *ArtworkPanel) showOpenDialog() {
	if ap.window == nil {
		return
	}
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := ap.state.LoadArtwork(path); err != nil {
			ap.statusLabel.SetText(fmt.Sprintf("Load failed: %v", err))
			return
		}
		ap.statusLabel.SetText("")
	}, ap.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".tif", ".tiff"}))
	fd.Show()
}

func (ap *ArtworkPanel) updateArtworkInfo() {
	art := ap.state.Artwork
	if art == nil {
		ap.fileLabel.SetText("No artwork loaded")
		ap.sizeLabel.SetText("")
		return
	}

	ap.fileLabel.SetText(art.Path)
	native := art.NativeSizeInches()
	ap.sizeLabel.SetText(fmt.Sprintf("%d × %d px, %.0f DPI (%.1f\" × %.1f\" native)",
		art.Width(), art.Height(), art.DPI, native.Width, native.Height))
	ap.updateQuality()
}

func (ap *ArtworkPanel) updateQuality() {
	art := ap.state.Artwork
	if art == nil {
		ap.qualityLabel.SetText("")
		return
	}

	size := placement.SizeInches(ap.state.Session.Geometry())
	dpi := art.EffectiveDPI(size.Width, size.Height)
	grade := design.GradeDPI(dpi)
	ap.qualityLabel.SetText(fmt.Sprintf("%.0f DPI at %.1f\" × %.1f\" (%s)",
		dpi, size.Width, size.Height, grade))
}
