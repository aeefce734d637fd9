package mockup

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"pod-studio/pkg/geometry"

	xdraw "golang.org/x/image/draw"
)

// PlacementTransform maps artwork pixel coordinates to print-surface
// inches for a placement rectangle (inches, relative to the surface
// center, as produced by the placement validator).
func PlacementTransform(rect geometry.Rect, artWidthPx, artHeightPx int) geometry.AffineTransform {
	sx, sy := 0.0, 0.0
	if artWidthPx > 0 {
		sx = rect.Width / float64(artWidthPx)
	}
	if artHeightPx > 0 {
		sy = rect.Height / float64(artHeightPx)
	}
	return geometry.Translation(rect.X, rect.Y).Compose(geometry.Scaling(sx, sy))
}

// Render composites the artwork onto the product photo. The placement
// rectangle is in inches; the calibration supplies the inch-to-photo
// mapping. Axis-aligned transforms take a pure-Go scaling path; anything
// with rotation or shear goes through the OpenCV warp.
func Render(photo image.Image, artwork image.Image, calib Calibration, rect geometry.Rect) (*image.RGBA, error) {
	if photo == nil || artwork == nil {
		return nil, fmt.Errorf("photo and artwork are required")
	}

	bounds := photo.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), photo, bounds.Min, draw.Src)

	artBounds := artwork.Bounds()
	full := calib.Transform.Compose(PlacementTransform(rect, artBounds.Dx(), artBounds.Dy()))

	if full.IsAxisAligned() {
		renderAxisAligned(out, artwork, full)
		return out, nil
	}

	warped, err := warpArtwork(artwork, full, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	alphaComposite(out, warped)
	return out, nil
}

// renderAxisAligned scales the artwork into the transformed rectangle.
func renderAxisAligned(dst *image.RGBA, artwork image.Image, full geometry.AffineTransform) {
	artBounds := artwork.Bounds()
	p0 := full.Apply(geometry.Point2D{X: 0, Y: 0})
	p1 := full.Apply(geometry.Point2D{X: float64(artBounds.Dx()), Y: float64(artBounds.Dy())})

	target := image.Rect(
		int(math.Round(math.Min(p0.X, p1.X))),
		int(math.Round(math.Min(p0.Y, p1.Y))),
		int(math.Round(math.Max(p0.X, p1.X))),
		int(math.Round(math.Max(p0.Y, p1.Y))),
	)
	if target.Empty() {
		return
	}

	xdraw.ApproxBiLinear.Scale(dst, target, artwork, artBounds, xdraw.Over, nil)
}

// alphaComposite blends src over dst where the two overlap.
func alphaComposite(dst *image.RGBA, src image.Image) {
	bounds := dst.Bounds().Intersect(src.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sr, sg, sb, sa := src.At(x, y).RGBA()
			if sa == 0 {
				continue
			}
			if sa >= 0xffff {
				dst.Set(x, y, color.RGBA{uint8(sr >> 8), uint8(sg >> 8), uint8(sb >> 8), 255})
				continue
			}

			// RGBA() is alpha-premultiplied, so src-over is src + dst*(1-a).
			dr, dg, db, _ := dst.At(x, y).RGBA()
			inv := 1 - float64(sa)/0xffff
			dst.Set(x, y, color.RGBA{
				R: clamp8(float64(sr>>8) + float64(dr>>8)*inv),
				G: clamp8(float64(sg>>8) + float64(dg>>8)*inv),
				B: clamp8(float64(sb>>8) + float64(db>>8)*inv),
				A: 255,
			})
		}
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
