package panels

import (
	"fmt"
	"strings"

	"pod-studio/internal/app"
	"pod-studio/internal/product"
	"pod-studio/ui/canvas"
	"pod-studio/ui/dialogs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ProductPanel handles product selection and spec display.
type ProductPanel struct {
	state     *app.State
	canvas    *canvas.DesignCanvas
	window    fyne.Window
	container fyne.CanvasObject

	productSelect *widget.Select
	specLabel     *widget.Label
	areasLabel    *widget.Label
	showAreas     *widget.Check
	statusLabel   *widget.Label
}

// NewProductPanel creates a new product panel.
func NewProductPanel(state *app.State, cvs *canvas.DesignCanvas) *ProductPanel {
	pp := &ProductPanel{
		state:  state,
		canvas: cvs,
	}

	pp.specLabel = widget.NewLabel("")
	pp.areasLabel = widget.NewLabel("")
	pp.areasLabel.Wrapping = fyne.TextWrapWord
	pp.statusLabel = widget.NewLabel("")

	pp.productSelect = widget.NewSelect(product.ListSpecs(), func(selected string) {
		if err := state.SetProduct(selected); err != nil {
			pp.statusLabel.SetText(err.Error())
			return
		}
		pp.statusLabel.SetText("")
	})
	if state.Spec != nil {
		pp.productSelect.SetSelected(state.Spec.Type())
	}

	pp.showAreas = widget.NewCheck("Show print areas", func(checked bool) {
		cvs.SetShowAreas(checked)
	})
	pp.showAreas.SetChecked(true)

	viewSpecButton := widget.NewButton("View Spec...", func() {
		pp.showSpecDialog()
	})

	pp.container = container.NewVBox(
		widget.NewCard("Product", "", container.NewVBox(
			pp.productSelect,
			pp.specLabel,
			viewSpecButton,
		)),
		widget.NewCard("Print Areas", "", container.NewVBox(
			pp.areasLabel,
			pp.showAreas,
		)),
		pp.statusLabel,
	)

	state.On(app.EventProductChanged, func(data interface{}) {
		pp.updateSpecInfo()
		if spec, ok := data.(product.Spec); ok {
			cvs.SetAreas(spec.PrintAreas())
		}
	})

	pp.updateSpecInfo()
	if state.Spec != nil {
		cvs.SetAreas(state.Spec.PrintAreas())
	}

	return pp
}

// SetWindow sets the parent window for dialogs.
func (pp *ProductPanel) SetWindow(w fyne.Window) {
	pp.window = w
}

// Container returns the panel container.
func (pp *ProductPanel) Container() fyne.CanvasObject {
	return pp.container
}

func (pp *ProductPanel) updateSpecInfo() {
	spec := pp.state.Spec
	if spec == nil {
		pp.specLabel.SetText("No product selected")
		pp.areasLabel.SetText("")
		return
	}

	w, h := spec.Dimensions()
	pp.specLabel.SetText(fmt.Sprintf("%s — %.1f\" × %.1f\"", spec.DisplayName(), w, h))

	var lines []string
	areas := spec.PrintAreas()
	for i := range areas {
		lines = append(lines, fmt.Sprintf("%s: up to %.1f\" × %.1f\"",
			areas[i].DisplayName(), areas[i].MaxWidth, areas[i].MaxHeight))
	}
	pp.areasLabel.SetText(strings.Join(lines, "\n"))
}

func (pp *ProductPanel) showSpecDialog() {
	if pp.window == nil || pp.state.Spec == nil {
		return
	}
	dialogs.NewProductSpecDialog(pp.state.Spec, pp.window).Show()
}
