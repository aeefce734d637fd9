package mockup

import (
	"fmt"
	"image"
	"image/color"

	"pod-studio/pkg/geometry"

	"gocv.io/x/gocv"
)

// warpArtwork applies a full artwork-pixel-to-photo-pixel transform via
// OpenCV, returning an image the size of the photo with transparent
// pixels outside the warped artwork.
func warpArtwork(artwork image.Image, transform geometry.AffineTransform, width, height int) (image.Image, error) {
	src, err := gocv.ImageToMatRGBA(toRGBA(artwork))
	if err != nil {
		return nil, fmt.Errorf("artwork to mat: %w", err)
	}
	defer src.Close()

	transformMat := gocv.NewMatWithSize(2, 3, gocv.MatTypeCV64F)
	transformMat.SetDoubleAt(0, 0, transform.A)
	transformMat.SetDoubleAt(0, 1, transform.B)
	transformMat.SetDoubleAt(0, 2, transform.TX)
	transformMat.SetDoubleAt(1, 0, transform.C)
	transformMat.SetDoubleAt(1, 1, transform.D)
	transformMat.SetDoubleAt(1, 2, transform.TY)
	defer transformMat.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.WarpAffineWithParams(src, &dst, transformMat, image.Point{X: width, Y: height},
		gocv.InterpolationLinear, gocv.BorderConstant, color.RGBA{R: 0, G: 0, B: 0, A: 0})

	out, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("warped mat to image: %w", err)
	}
	return out, nil
}

// toRGBA converts any image to RGBA, which is what the mat conversion expects.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return rgba
}
