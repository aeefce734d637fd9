// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"

	"pod-studio/internal/product"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ProductSpecDialog shows the full print-area sheet for a product.
type ProductSpecDialog struct {
	spec   product.Spec
	window fyne.Window
}

// NewProductSpecDialog creates a new product specification dialog.
func NewProductSpecDialog(spec product.Spec, window fyne.Window) *ProductSpecDialog {
	return &ProductSpecDialog{spec: spec, window: window}
}

// Show displays the dialog.
func (d *ProductSpecDialog) Show() {
	dlg := dialog.NewCustom(
		"Product Specification: "+d.spec.DisplayName(),
		"Close",
		d.createContent(),
		d.window,
	)
	dlg.Resize(fyne.NewSize(420, 500))
	dlg.Show()
}

func (d *ProductSpecDialog) createContent() fyne.CanvasObject {
	w, h := d.spec.Dimensions()
	header := widget.NewLabel(fmt.Sprintf("Surface: %.1f\" × %.1f\"", w, h))

	items := container.NewVBox(header)
	areas := d.spec.PrintAreas()
	for i := range areas {
		a := &areas[i]
		body := widget.NewLabel(fmt.Sprintf(
			"X: %.1f\" to %.1f\"\nY: %.1f\" to %.1f\"\nMax size: %.1f\" × %.1f\"\nOptimal: (%.1f\", %.1f\")\nPriority: %d",
			a.XMin, a.XMax, a.YMin, a.YMax,
			a.MaxWidth, a.MaxHeight,
			a.OptimalX, a.OptimalY, a.Priority,
		))
		items.Add(widget.NewCard(a.DisplayName(), "", body))
	}

	return container.NewVScroll(items)
}
