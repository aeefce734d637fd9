package panels

import (
	"fmt"
	"strconv"

	"pod-studio/internal/app"
	"pod-studio/internal/placement"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PlacementPanel exposes the overlay position and size in inches and
// mirrors the live validation feedback.
type PlacementPanel struct {
	state     *app.State
	container fyne.CanvasObject

	xEntry *widget.Entry
	yEntry *widget.Entry
	wEntry *widget.Entry
	hEntry *widget.Entry

	areaLabel     *widget.Label
	feedbackLabel *widget.Label

	updating bool // suppress entry callbacks during programmatic refresh
}

// NewPlacementPanel creates a new placement panel.
func NewPlacementPanel(state *app.State) *PlacementPanel {
	pl := &PlacementPanel{state: state}

	pl.xEntry = pl.newNumberEntry()
	pl.yEntry = pl.newNumberEntry()
	pl.wEntry = pl.newNumberEntry()
	pl.hEntry = pl.newNumberEntry()

	pl.areaLabel = widget.NewLabel("")
	pl.feedbackLabel = widget.NewLabel("")
	pl.feedbackLabel.Wrapping = fyne.TextWrapWord

	resetButton := widget.NewButton("Reset Placement", func() {
		// Re-running product association restores auto-placement.
		state.Session.SetProduct(state.Spec)
	})

	form := widget.NewForm(
		widget.NewFormItem("Center X (in)", pl.xEntry),
		widget.NewFormItem("Center Y (in)", pl.yEntry),
		widget.NewFormItem("Width (in)", pl.wEntry),
		widget.NewFormItem("Height (in)", pl.hEntry),
	)

	pl.container = container.NewVBox(
		widget.NewCard("Position & Size", "", form),
		widget.NewCard("Validation", "", container.NewVBox(
			pl.areaLabel,
			pl.feedbackLabel,
		)),
		resetButton,
	)

	state.On(app.EventPlacementChanged, func(data interface{}) {
		if res, ok := data.(placement.Result); ok {
			pl.showResult(res)
		}
		pl.refreshEntries()
	})

	pl.refreshEntries()
	pl.showResult(state.Session.Result())
	return pl
}

// Container returns the panel container.
func (pl *PlacementPanel) Container() fyne.CanvasObject {
	return pl.container
}

func (pl *PlacementPanel) newNumberEntry() *widget.Entry {
	e := widget.NewEntry()
	e.OnSubmitted = func(string) { pl.applyEntries() }
	return e
}

// applyEntries pushes the entry values into the session as a user
// placement.
func (pl *PlacementPanel) applyEntries() {
	if pl.updating {
		return
	}

	cx, err1 := strconv.ParseFloat(pl.xEntry.Text, 64)
	cy, err2 := strconv.ParseFloat(pl.yEntry.Text, 64)
	w, err3 := strconv.ParseFloat(pl.wEntry.Text, 64)
	h, err4 := strconv.ParseFloat(pl.hEntry.Text, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		pl.feedbackLabel.SetText("enter numeric inch values")
		return
	}
	if w <= 0 || h <= 0 {
		pl.feedbackLabel.SetText("width and height must be positive")
		return
	}

	pl.state.Session.SetGeometry(geometryFromInches(cx, cy, w, h, placement.DefaultSurface()))
}

// geometryFromInches converts a center point and size in inches to the
// overlay pixel rectangle. Inch space is y-down, matching CenterInches.
func geometryFromInches(cx, cy, w, h float64, s placement.Surface) placement.OverlayGeometry {
	widthPx := placement.InchesToPixels(w)
	heightPx := placement.InchesToPixels(h)
	return placement.OverlayGeometry{
		X:      s.Width/2 + placement.InchesToPixels(cx) - widthPx/2,
		Y:      s.Height/2 + placement.InchesToPixels(cy) - heightPx/2,
		Width:  widthPx,
		Height: heightPx,
	}
}

func (pl *PlacementPanel) refreshEntries() {
	g := pl.state.Session.Geometry()
	surface := placement.DefaultSurface()
	center := placement.CenterInches(g, surface)
	size := placement.SizeInches(g)

	pl.updating = true
	pl.xEntry.SetText(fmt.Sprintf("%.2f", center.X))
	pl.yEntry.SetText(fmt.Sprintf("%.2f", center.Y))
	pl.wEntry.SetText(fmt.Sprintf("%.2f", size.Width))
	pl.hEntry.SetText(fmt.Sprintf("%.2f", size.Height))
	pl.updating = false
}

func (pl *PlacementPanel) showResult(res placement.Result) {
	if res.Area != nil {
		pl.areaLabel.SetText("Area: " + res.Area.DisplayName())
	} else {
		pl.areaLabel.SetText("Area: none")
	}
	pl.feedbackLabel.SetText(res.Feedback)
}
