package placement

import (
	"pod-studio/internal/product"
)

// AutoPlace computes the overlay position for a freshly selected product:
// the pixel rectangle whose center sits at the preferred print area's
// optimal offset. The overlay size is preserved.
//
// Returns false when the spec is nil or declares no print areas.
func AutoPlace(spec product.Spec, overlayWidth, overlayHeight float64, s Surface) (OverlayGeometry, bool) {
	if spec == nil {
		return OverlayGeometry{}, false
	}
	area := PreferredArea(spec.PrintAreas())
	if area == nil {
		return OverlayGeometry{}, false
	}

	return OverlayGeometry{
		X:      s.Width/2 + InchesToPixels(area.OptimalX) - overlayWidth/2,
		Y:      s.Height/2 + InchesToPixels(area.OptimalY) - overlayHeight/2,
		Width:  overlayWidth,
		Height: overlayHeight,
	}, true
}
