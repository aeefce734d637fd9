// Package panels provides UI panels for the application.
package panels

import (
	"pod-studio/internal/app"
	"pod-studio/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	canvas    *canvas.DesignCanvas
	container *container.AppTabs

	productPanel   *ProductPanel
	artworkPanel   *ArtworkPanel
	placementPanel *PlacementPanel
	orderPanel     *OrderPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State, cvs *canvas.DesignCanvas) *SidePanel {
	sp := &SidePanel{
		state:  state,
		canvas: cvs,
	}

	sp.productPanel = NewProductPanel(state, cvs)
	sp.artworkPanel = NewArtworkPanel(state, cvs)
	sp.placementPanel = NewPlacementPanel(state)
	sp.orderPanel = NewOrderPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Product", sp.productPanel.Container()),
		container.NewTabItem("Artwork", sp.artworkPanel.Container()),
		container.NewTabItem("Placement", sp.placementPanel.Container()),
		container.NewTabItem("Order", sp.orderPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.productPanel.SetWindow(w)
	sp.artworkPanel.SetWindow(w)
	sp.orderPanel.SetWindow(w)
}
