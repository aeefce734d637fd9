// Package placement maps the on-screen design overlay into physical print
// coordinates, resolves which print area contains it, and validates the
// design size against that area's limits.
//
// All pixel/inch conversion in the application goes through the single
// PixelsPerInch constant below. The product's visual center is the origin
// of inch space, X growing right and Y growing down.
package placement

import (
	"pod-studio/pkg/geometry"
)

// PixelsPerInch is the fixed scale of the design surface.
const PixelsPerInch = 20.0

// Design surface dimensions in pixels.
const (
	SurfaceWidth  = 600.0
	SurfaceHeight = 400.0
)

// InchesToPixels converts a length in inches to design-surface pixels.
func InchesToPixels(inches float64) float64 {
	return inches * PixelsPerInch
}

// PixelsToInches converts a length in design-surface pixels to inches.
func PixelsToInches(pixels float64) float64 {
	return pixels / PixelsPerInch
}

// OverlayGeometry is the pixel-space rectangle of the draggable design
// overlay within the design surface.
type OverlayGeometry struct {
	X      float64 `json:"x"` // top-left, pixels
	Y      float64 `json:"y"`
	Width  float64 `json:"width"` // pixels
	Height float64 `json:"height"`
}

// Surface describes the fixed-size pixel container the overlay lives in.
// Its center corresponds to the product's visual center.
type Surface struct {
	Width  float64
	Height float64
}

// DefaultSurface returns the editor's design surface.
func DefaultSurface() Surface {
	return Surface{Width: SurfaceWidth, Height: SurfaceHeight}
}

// CenterInches returns the overlay's center point in inches relative to
// the surface center.
func CenterInches(g OverlayGeometry, s Surface) geometry.Point2D {
	cx := g.X + g.Width/2 - s.Width/2
	cy := g.Y + g.Height/2 - s.Height/2
	return geometry.Point2D{
		X: PixelsToInches(cx),
		Y: PixelsToInches(cy),
	}
}

// SizeInches returns the overlay's dimensions in inches.
func SizeInches(g OverlayGeometry) geometry.Size {
	return geometry.Size{
		Width:  PixelsToInches(g.Width),
		Height: PixelsToInches(g.Height),
	}
}

// RectInches returns the full placement rectangle (top-left plus size) in
// inches relative to the product center. This is the value collaborators
// attach to mockup requests and order payloads.
func RectInches(g OverlayGeometry, s Surface) geometry.Rect {
	center := CenterInches(g, s)
	size := SizeInches(g)
	return geometry.Rect{
		X:      center.X - size.Width/2,
		Y:      center.Y - size.Height/2,
		Width:  size.Width,
		Height: size.Height,
	}
}
