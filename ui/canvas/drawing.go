// Drawing primitives for the design canvas raster.
package canvas

import (
	"image"
	"image/color"
)

// fillRect fills a rectangle, clipped to the output bounds.
func fillRect(output *image.RGBA, rect image.Rectangle, col color.RGBA) {
	rect = rect.Intersect(output.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			output.SetRGBA(x, y, col)
		}
	}
}

// drawHLine draws a horizontal line of the given thickness.
func drawHLine(output *image.RGBA, x1, x2, y int, col color.RGBA, thickness int) {
	fillRect(output, image.Rect(x1, y, x2, y+thickness), col)
}

// drawVLine draws a vertical line of the given thickness.
func drawVLine(output *image.RGBA, x, y1, y2 int, col color.RGBA, thickness int) {
	fillRect(output, image.Rect(x, y1, x+thickness, y2), col)
}

// drawRectOutline draws a rectangle outline with the given thickness.
func drawRectOutline(output *image.RGBA, rect image.Rectangle, col color.RGBA, thickness int) {
	drawHLine(output, rect.Min.X, rect.Max.X, rect.Min.Y, col, thickness)
	drawHLine(output, rect.Min.X, rect.Max.X, rect.Max.Y-thickness, col, thickness)
	drawVLine(output, rect.Min.X, rect.Min.Y, rect.Max.Y, col, thickness)
	drawVLine(output, rect.Max.X-thickness, rect.Min.Y, rect.Max.Y, col, thickness)
}

// drawDashedRect draws a rectangle outline with dashLen-pixel dashes.
func drawDashedRect(output *image.RGBA, rect image.Rectangle, col color.RGBA, dashLen int) {
	if dashLen < 2 {
		dashLen = 2
	}
	period := dashLen * 2

	for x := rect.Min.X; x < rect.Max.X; x++ {
		if (x-rect.Min.X)%period < dashLen {
			setPixel(output, x, rect.Min.Y, col)
			setPixel(output, x, rect.Max.Y-1, col)
		}
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		if (y-rect.Min.Y)%period < dashLen {
			setPixel(output, rect.Min.X, y, col)
			setPixel(output, rect.Max.X-1, y, col)
		}
	}
}

// drawCross draws a + marker centered at (cx, cy) with the given arm
// length.
func drawCross(output *image.RGBA, cx, cy, arm int, col color.RGBA) {
	drawHLine(output, cx-arm, cx+arm+1, cy, col, 1)
	drawVLine(output, cx, cy-arm, cy+arm+1, col, 1)
}

func setPixel(output *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(output.Bounds()) {
		output.SetRGBA(x, y, col)
	}
}
