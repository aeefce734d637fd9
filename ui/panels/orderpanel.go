package panels

import (
	"fmt"
	"strconv"

	"pod-studio/internal/app"
	"pod-studio/internal/order"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// OrderPanel assembles and exports the fulfillment payload.
type OrderPanel struct {
	state     *app.State
	window    fyne.Window
	container fyne.CanvasObject

	quantityEntry *widget.Entry
	summaryLabel  *widget.Label
	statusLabel   *widget.Label
	exportButton  *widget.Button
}

// NewOrderPanel creates a new order panel.
func NewOrderPanel(state *app.State) *OrderPanel {
	op := &OrderPanel{state: state}

	op.quantityEntry = widget.NewEntry()
	op.quantityEntry.SetText(strconv.Itoa(state.Quantity))
	op.quantityEntry.OnSubmitted = func(text string) {
		q, err := strconv.Atoi(text)
		if err != nil {
			op.statusLabel.SetText("quantity must be a whole number")
			return
		}
		if err := state.SetQuantity(q); err != nil {
			op.statusLabel.SetText(err.Error())
			return
		}
		op.statusLabel.SetText("")
		op.updateSummary()
	}

	op.summaryLabel = widget.NewLabel("")
	op.summaryLabel.Wrapping = fyne.TextWrapWord
	op.statusLabel = widget.NewLabel("")
	op.statusLabel.Wrapping = fyne.TextWrapWord

	op.exportButton = widget.NewButton("Export Order...", func() {
		op.showExportDialog()
	})

	op.container = container.NewVBox(
		widget.NewCard("Order", "", container.NewVBox(
			widget.NewForm(widget.NewFormItem("Quantity", op.quantityEntry)),
			op.summaryLabel,
			op.exportButton,
		)),
		op.statusLabel,
	)

	state.On(app.EventPlacementChanged, func(interface{}) {
		op.updateSummary()
	})
	state.On(app.EventProductChanged, func(interface{}) {
		op.updateSummary()
	})

	op.updateSummary()
	return op
}

// SetWindow sets the parent window for dialogs.
func (op *OrderPanel) SetWindow(w fyne.Window) {
	op.window = w
}

// Container returns the panel container.
func (op *OrderPanel) Container() fyne.CanvasObject {
	return op.container
}

func (op *OrderPanel) updateSummary() {
	res := op.state.Session.Result()
	if !res.Valid {
		op.summaryLabel.SetText("Placement is not valid; fix it before exporting.")
		op.exportButton.Disable()
		return
	}
	if op.state.Artwork == nil {
		op.summaryLabel.SetText("Load artwork before exporting.")
		op.exportButton.Disable()
		return
	}

	op.summaryLabel.SetText(fmt.Sprintf("%d × %s, %s area, %.1f\" × %.1f\"",
		op.state.Quantity, op.state.Spec.DisplayName(),
		res.Area.DisplayName(), res.Rect.Width, res.Rect.Height))
	op.exportButton.Enable()
}

func (op *OrderPanel) showExportDialog() {
	if op.window == nil {
		return
	}

	item, err := order.NewLineItem(op.state.Spec.Type(), op.state.Artwork.Path,
		op.state.Session.Result(), op.state.Quantity)
	if err != nil {
		op.statusLabel.SetText(err.Error())
		return
	}
	o, err := order.New(item)
	if err != nil {
		op.statusLabel.SetText(err.Error())
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := o.SaveToFile(path); err != nil {
			op.statusLabel.SetText(fmt.Sprintf("Export failed: %v", err))
			return
		}
		op.statusLabel.SetText("Exported " + path)
	}, op.window)
	fd.SetFileName("order.json")
	fd.Show()
}
